package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/pkg/textnorm"
)

// ChartPoint un día de la semana para gráficos de utilidad.
type ChartPoint struct {
	Day      string // "Mon"
	Sales    decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
}

// WeeklyProfitSeries los 7 puntos lunes..domingo de un WeeklyAnalysis.
func WeeklyProfitSeries(w WeeklyAnalysis) []ChartPoint {
	out := make([]ChartPoint, 0, len(w.Days))
	for _, d := range w.Days {
		label := d.DayOfWeek
		if len(label) > 3 {
			label = label[:3]
		}
		out = append(out, ChartPoint{Day: label, Sales: d.TotalSales, Expenses: d.TotalExpenses, Profit: d.NetProfit})
	}
	return out
}

// InsightSet observaciones calculadas y recomendaciones fijas del tablero de análisis.
type InsightSet struct {
	Observations    []string
	Recommendations []string
}

var recommendations = []string{
	"Consider special promotions on slower days",
	"Stock up on ingredients for your best-selling items",
	"Monitor expense categories to optimize costs",
	"Track daily patterns to optimize staffing",
}

// Insights genera las frases del tablero a partir del análisis semanal y la distribución de pagos.
func Insights(w WeeklyAnalysis, b PaymentBreakdown, currency string) InsightSet {
	best := "N/A"
	if len(w.BestPerformingItems) > 0 {
		best = w.BestPerformingItems[0].Name
	}
	obs := []string{
		fmt.Sprintf("%s is your most profitable day of the week", w.MostProductiveDay),
		fmt.Sprintf("M-Pesa accounts for %d%% of your transactions", b.MobileMoneyShare()),
		fmt.Sprintf("Your best-selling item is %s", best),
		fmt.Sprintf("Average daily profit is %s", textnorm.Money(currency, w.AverageDailyProfit)),
	}
	recs := make([]string, len(recommendations))
	copy(recs, recommendations)
	return InsightSet{Observations: obs, Recommendations: recs}
}
