package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

const topItemsLimit = 3

var daysInWeek = decimal.NewFromInt(7)

// ItemPerformance desempeño de un plato (agrupado por nombre) dentro de la semana.
type ItemPerformance struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// WeeklyAnalysis resumen de la semana lunes..domingo que contiene la fecha de referencia.
type WeeklyAnalysis struct {
	WeekStart           string // lunes YYYY-MM-DD
	WeekEnd             string // domingo YYYY-MM-DD
	Days                []DailySummary
	TotalWeeklyProfit   decimal.Decimal
	AverageDailyProfit  decimal.Decimal // siempre TotalWeeklyProfit / 7
	MostProductiveDay   string
	BestPerformingItems []ItemPerformance // a lo sumo 3, ingreso descendente
}

// ComputeWeeklyAnalysis arma el análisis de la semana de date. El promedio divide siempre
// entre 7, incluso si la semana está en curso. El día más productivo se busca de lunes a
// domingo partiendo del lunes, con comparación estricta: en empate gana el primero, también
// cuando todos los días dan pérdida.
func ComputeWeeklyAnalysis(sales []entity.Sale, expenses []entity.Expense, date time.Time) WeeklyAnalysis {
	start := WeekStart(date)
	end := start.AddDate(0, 0, 7)

	w := WeeklyAnalysis{
		WeekStart:         start.Format(dateLayout),
		WeekEnd:           end.AddDate(0, 0, -1).Format(dateLayout),
		Days:              make([]DailySummary, 0, 7),
		TotalWeeklyProfit: decimal.Zero,
	}

	for i := 0; i < 7; i++ {
		day := ComputeDailySummary(sales, expenses, start.AddDate(0, 0, i))
		w.Days = append(w.Days, day)
		w.TotalWeeklyProfit = w.TotalWeeklyProfit.Add(day.NetProfit)
	}
	best := w.Days[0]
	for _, day := range w.Days[1:] {
		if day.NetProfit.GreaterThan(best.NetProfit) {
			best = day
		}
	}
	w.MostProductiveDay = best.DayOfWeek
	w.AverageDailyProfit = w.TotalWeeklyProfit.Div(daysInWeek)
	w.BestPerformingItems = topItems(SalesBetween(sales, start, end), topItemsLimit)
	return w
}

// topItems agrega líneas por nombre y devuelve las limit de mayor ingreso.
// Las ventas se recorren en orden cronológico (luego por ID) y el ordenamiento es estable,
// así en empate de ingreso queda primero el plato vendido antes.
func topItems(sales []entity.Sale, limit int) []ItemPerformance {
	ordered := Chronological(sales)

	index := make(map[string]int)
	items := make([]ItemPerformance, 0)
	for _, sale := range ordered {
		for _, line := range sale.Items {
			pos, ok := index[line.Name]
			if !ok {
				pos = len(items)
				index[line.Name] = pos
				items = append(items, ItemPerformance{Name: line.Name, Revenue: decimal.Zero})
			}
			items[pos].Quantity += line.Quantity
			items[pos].Revenue = items[pos].Revenue.Add(line.Revenue())
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue.GreaterThan(items[j].Revenue)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Chronological copia de sales ordenada por RecordedAt y luego por ID. No modifica la entrada.
func Chronological(sales []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, len(sales))
	copy(out, sales)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.Before(out[j].RecordedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
