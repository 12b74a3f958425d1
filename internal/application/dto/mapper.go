package dto

import (
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// FromSale convierte una venta del dominio a su respuesta.
func FromSale(s entity.Sale) SaleResponse {
	method, code, phone := entity.PaymentFields(s.Payment)
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.UnitPrice,
			Cost:       it.UnitCost,
		})
	}
	return SaleResponse{
		ID:            s.ID,
		RecordedAt:    s.RecordedAt,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: string(method),
		MpesaCode:     code,
		CustomerPhone: phone,
	}
}

// FromSales convierte una lista de ventas; nunca devuelve nil.
func FromSales(sales []entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}

// ToEntity reconstruye la venta desde su representación JSON (cliente remoto).
// Un método de pago desconocido se trata como efectivo.
func (r SaleResponse) ToEntity() entity.Sale {
	method, ok := entity.ParsePaymentMethod(r.PaymentMethod)
	if !ok {
		method = entity.PaymentMethodCash
	}
	items := make([]entity.SaleItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.SaleItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.Price,
			UnitCost:   it.Cost,
		})
	}
	return entity.Sale{
		ID:         r.ID,
		RecordedAt: r.RecordedAt,
		Items:      items,
		Total:      r.Total,
		Payment:    entity.NewPayment(method, r.MpesaCode, r.CustomerPhone),
	}
}

// FromExpense convierte un gasto del dominio a su respuesta.
func FromExpense(e entity.Expense) ExpenseResponse {
	method, code, _ := entity.PaymentFields(e.Payment)
	return ExpenseResponse{
		ID:            e.ID,
		RecordedAt:    e.RecordedAt,
		Description:   e.Description,
		Amount:        e.Amount,
		Category:      string(e.Category),
		PaymentMethod: string(method),
		MpesaCode:     code,
	}
}

// FromExpenses convierte una lista de gastos; nunca devuelve nil.
func FromExpenses(expenses []entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

// ToEntity reconstruye el gasto desde su representación JSON.
func (r ExpenseResponse) ToEntity() entity.Expense {
	method, ok := entity.ParsePaymentMethod(r.PaymentMethod)
	if !ok {
		method = entity.PaymentMethodCash
	}
	return entity.Expense{
		ID:          r.ID,
		RecordedAt:  r.RecordedAt,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    entity.ExpenseCategory(r.Category),
		Payment:     entity.NewPayment(method, r.MpesaCode, ""),
	}
}

// FromMenuItem convierte un plato del menú.
func FromMenuItem(m entity.MenuItem) MenuItemResponse {
	ings := make([]IngredientDTO, 0, len(m.Ingredients))
	for _, i := range m.Ingredients {
		ings = append(ings, IngredientDTO{Name: i.Name, Quantity: i.Quantity, Unit: i.Unit})
	}
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Category:    m.Category,
		Cost:        m.Cost,
		Margin:      m.Price.Sub(m.Cost),
		Ingredients: ings,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromInventoryItem convierte un insumo.
func FromInventoryItem(i entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:                i.ID,
		Name:              i.Name,
		CurrentStock:      i.CurrentStock,
		Unit:              i.Unit,
		LowStockThreshold: i.LowStockThreshold,
		CostPerUnit:       i.CostPerUnit,
		Supplier:          i.Supplier,
		LastRestocked:     i.LastRestocked,
		ExpiryDate:        i.ExpiryDate,
		IsLow:             i.IsLow(),
	}
}

// FromAlert convierte una alerta.
func FromAlert(a entity.Alert) AlertResponse {
	return AlertResponse{
		ID:              a.ID,
		Type:            string(a.Type),
		Title:           a.Title,
		Message:         a.Message,
		InventoryItemID: a.InventoryItemID,
		CreatedAt:       a.CreatedAt,
		Acknowledged:    a.Acknowledged,
	}
}

// FromAlerts convierte una lista de alertas; nunca devuelve nil.
func FromAlerts(alerts []entity.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, FromAlert(a))
	}
	return out
}

// ── Motor de analítica ─────────────────────────────────────────────────────

// FromDailySummary convierte el resumen diario.
func FromDailySummary(s analytics.DailySummary) DailySummaryDTO {
	return DailySummaryDTO{
		Date:             s.Date,
		DayOfWeek:        s.DayOfWeek,
		TotalSales:       s.TotalSales,
		TotalExpenses:    s.TotalExpenses,
		NetProfit:        s.NetProfit,
		SalesCount:       s.SalesCount,
		MobileMoneySales: s.MobileMoneySales,
		CashSales:        s.CashSales,
	}
}

// FromWeeklyAnalysis convierte el análisis semanal.
func FromWeeklyAnalysis(w analytics.WeeklyAnalysis) WeeklyAnalysisDTO {
	days := make([]DailySummaryDTO, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, FromDailySummary(d))
	}
	items := make([]ItemPerformanceDTO, 0, len(w.BestPerformingItems))
	for _, it := range w.BestPerformingItems {
		items = append(items, ItemPerformanceDTO{Name: it.Name, Quantity: it.Quantity, Revenue: it.Revenue})
	}
	return WeeklyAnalysisDTO{
		WeekStart:           w.WeekStart,
		WeekEnd:             w.WeekEnd,
		Days:                days,
		TotalWeeklyProfit:   w.TotalWeeklyProfit,
		AverageDailyProfit:  w.AverageDailyProfit,
		MostProductiveDay:   w.MostProductiveDay,
		BestPerformingItems: items,
	}
}

// FromWeekdayProfit convierte el día de la semana más productivo y los totales por día.
func FromWeekdayProfit(best analytics.WeekdayProfit, totals []analytics.WeekdayProfit) MostProductiveWeekdayDTO {
	out := MostProductiveWeekdayDTO{Day: best.Day, Profit: best.Profit, Found: best.Found, Totals: make([]WeekdayProfitDTO, 0, len(totals))}
	for _, t := range totals {
		out.Totals = append(out.Totals, WeekdayProfitDTO{Day: t.Day, Profit: t.Profit})
	}
	return out
}

// FromPaymentBreakdown convierte la distribución de pagos.
func FromPaymentBreakdown(b analytics.PaymentBreakdown) PaymentBreakdownDTO {
	return PaymentBreakdownDTO{
		Cash:          MethodTotalsDTO{Count: b.Cash.Count, Revenue: b.Cash.Revenue},
		Mpesa:         MethodTotalsDTO{Count: b.MobileMoney.Count, Revenue: b.MobileMoney.Revenue},
		Total:         MethodTotalsDTO{Count: b.Total.Count, Revenue: b.Total.Revenue},
		MpesaSharePct: b.MobileMoneyShare(),
	}
}

// FromCategoryTotals convierte los totales por categoría.
func FromCategoryTotals(totals []analytics.CategoryTotal) []CategoryTotalDTO {
	out := make([]CategoryTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, CategoryTotalDTO{Category: string(t.Category), Label: t.Label, Amount: t.Amount, Count: t.Count})
	}
	return out
}

// FromDailySeries convierte la serie diaria de ventas.
func FromDailySeries(points []analytics.DailyPoint) []DailyPointDTO {
	out := make([]DailyPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, DailyPointDTO{Date: p.Date, Revenue: p.Revenue, Orders: p.Orders})
	}
	return out
}

// FromMenuItemStats convierte las estadísticas por plato.
func FromMenuItemStats(stats []analytics.MenuItemStat) []MenuItemStatDTO {
	out := make([]MenuItemStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, MenuItemStatDTO{MenuItemID: s.MenuItemID, Name: s.Name, Category: s.Category, Quantity: s.Quantity, Revenue: s.Revenue})
	}
	return out
}

// FromChartPoints convierte la serie semanal de utilidad.
func FromChartPoints(points []analytics.ChartPoint) []ChartPointDTO {
	out := make([]ChartPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPointDTO{Day: p.Day, Sales: p.Sales, Expenses: p.Expenses, Profit: p.Profit})
	}
	return out
}
