package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
// KPIs del día, utilidad histórica, últimas ventas y distribución de pagos.
type DashboardDTO struct {
	Today            DailySummaryDTO     `json:"today"`
	TotalProfit      decimal.Decimal     `json:"total_profit"`
	TotalRevenue     decimal.Decimal     `json:"total_revenue"`
	TotalSalesCount  int                 `json:"total_sales_count"`
	RecentSales      []SaleResponse      `json:"recent_sales"` // las 5 más recientes
	PaymentBreakdown PaymentBreakdownDTO `json:"payment_breakdown"`
}

// SalesReportDTO respuesta de GET /api/reports/sales (página de ventas).
type SalesReportDTO struct {
	TotalRevenue     decimal.Decimal     `json:"total_revenue"`
	PaymentBreakdown PaymentBreakdownDTO `json:"payment_breakdown"`
	DailySeries      []DailyPointDTO     `json:"daily_series"`
	BestSellingItems []MenuItemStatDTO   `json:"best_selling_items"`
}

// ExpenseReportDTO respuesta de GET /api/reports/expenses.
type ExpenseReportDTO struct {
	TotalExpenses  decimal.Decimal            `json:"total_expenses"`
	ExpenseCount   int                        `json:"expense_count"`
	ByCategory     []CategoryTotalDTO         `json:"by_category"`
	ByMethod       map[string]decimal.Decimal `json:"by_method"`
	RecentExpenses []ExpenseResponse          `json:"recent_expenses"`
}
