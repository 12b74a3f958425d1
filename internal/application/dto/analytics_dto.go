package dto

import "github.com/shopspring/decimal"

// DailySummaryDTO respuesta de GET /api/analytics/daily.
type DailySummaryDTO struct {
	Date             string          `json:"date"`
	DayOfWeek        string          `json:"day_of_week"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	SalesCount       int             `json:"sales_count"`
	MobileMoneySales decimal.Decimal `json:"mpesa_sales"`
	CashSales        decimal.Decimal `json:"cash_sales"`
}

// ItemPerformanceDTO plato destacado de la semana.
type ItemPerformanceDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// WeeklyAnalysisDTO respuesta de GET /api/analytics/weekly.
type WeeklyAnalysisDTO struct {
	WeekStart           string               `json:"week_start"`
	WeekEnd             string               `json:"week_end"`
	Days                []DailySummaryDTO    `json:"days"`
	TotalWeeklyProfit   decimal.Decimal      `json:"total_weekly_profit"`
	AverageDailyProfit  decimal.Decimal      `json:"average_daily_profit"` // total / 7
	MostProductiveDay   string               `json:"most_productive_day"`
	BestPerformingItems []ItemPerformanceDTO `json:"best_performing_items"`
}

// TotalProfitDTO respuesta de GET /api/analytics/profit.
type TotalProfitDTO struct {
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// WeekdayProfitDTO utilidad por plato acumulada para un día de la semana.
type WeekdayProfitDTO struct {
	Day    string          `json:"day"`
	Profit decimal.Decimal `json:"profit"`
}

// MostProductiveWeekdayDTO respuesta de GET /api/analytics/most-productive-day.
// found=false cuando ningún día acumuló utilidad positiva (day queda en "Monday").
type MostProductiveWeekdayDTO struct {
	Day    string             `json:"day"`
	Profit decimal.Decimal    `json:"profit"`
	Found  bool               `json:"found"`
	Totals []WeekdayProfitDTO `json:"totals"`
}

// MethodTotalsDTO conteo e ingreso de un método de pago.
type MethodTotalsDTO struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PaymentBreakdownDTO distribución de ventas por método de pago.
type PaymentBreakdownDTO struct {
	Cash          MethodTotalsDTO `json:"cash"`
	Mpesa         MethodTotalsDTO `json:"mpesa"`
	Total         MethodTotalsDTO `json:"total"`
	MpesaSharePct int64           `json:"mpesa_share_pct"`
}

// DailyPointDTO punto de la serie diaria de ventas.
type DailyPointDTO struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// MenuItemStatDTO ventas acumuladas de un plato.
type MenuItemStatDTO struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ChartPointDTO punto diario para el gráfico semanal.
type ChartPointDTO struct {
	Day      string          `json:"day"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// InsightsDTO observaciones y recomendaciones.
type InsightsDTO struct {
	Observations    []string `json:"observations"`
	Recommendations []string `json:"recommendations"`
}

// AnalyticsOverviewDTO respuesta de GET /api/analytics/overview: todo lo de la página de análisis.
// Incluye las dos definiciones de "día más productivo" lado a lado.
type AnalyticsOverviewDTO struct {
	Weekly                WeeklyAnalysisDTO        `json:"weekly"`
	ProfitSeries          []ChartPointDTO          `json:"profit_series"`
	PaymentBreakdown      PaymentBreakdownDTO      `json:"payment_breakdown"`
	ExpensesByCategory    []CategoryTotalDTO       `json:"expenses_by_category"`
	MostProductiveWeekday MostProductiveWeekdayDTO `json:"most_productive_weekday"`
	TotalProfit           decimal.Decimal          `json:"total_profit"`
	Insights              InsightsDTO              `json:"insights"`
}
