package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// Semana de referencia: lunes 2024-01-15 .. domingo 2024-01-21, hora de Nairobi (UTC+3).
var eat = time.FixedZone("EAT", 3*60*60)

func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, eat)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sale(id string, when time.Time, total int64, p entity.Payment, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{ID: id, RecordedAt: when, Total: dec(total), Payment: p, Items: items}
}

func line(id, name string, qty int, price, cost int64) entity.SaleItem {
	return entity.SaleItem{MenuItemID: id, Name: name, Quantity: qty, UnitPrice: dec(price), UnitCost: dec(cost)}
}

func expense(id string, when time.Time, amount int64, cat entity.ExpenseCategory) entity.Expense {
	return entity.Expense{ID: id, RecordedAt: when, Amount: dec(amount), Category: cat, Payment: entity.CashPayment{}}
}

var mpesa = entity.MobileMoneyPayment{Code: "QA12B3C4D5", Phone: "0712345678"}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen diario
// ──────────────────────────────────────────────────────────────────────────────

func TestDailySummary_SinRegistrosDevuelveCeros(t *testing.T) {
	s := analytics.ComputeDailySummary(nil, nil, at(17, 12))

	assert.Equal(t, "2024-01-17", s.Date)
	assert.Equal(t, "Wednesday", s.DayOfWeek)
	assert.Equal(t, 0, s.SalesCount)
	assert.True(t, s.TotalSales.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.NetProfit.IsZero())
	assert.True(t, s.CashSales.IsZero())
	assert.True(t, s.MobileMoneySales.IsZero())
}

func TestDailySummary_AgregaPorDiaCalendarioYMetodo(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(17, 0), 400, entity.CashPayment{}),
		sale("s2", at(17, 23), 600, mpesa),
		sale("s3", at(16, 23), 999, entity.CashPayment{}), // día anterior
		sale("s4", at(18, 0), 999, mpesa),                 // día siguiente
	}
	expenses := []entity.Expense{
		expense("e1", at(17, 9), 1500, entity.ExpenseIngredients),
		expense("e2", at(18, 9), 100, entity.ExpenseOther),
	}

	s := analytics.ComputeDailySummary(sales, expenses, at(17, 15))

	assert.Equal(t, 2, s.SalesCount)
	assert.True(t, dec(1000).Equal(s.TotalSales))
	assert.True(t, dec(400).Equal(s.CashSales))
	assert.True(t, dec(600).Equal(s.MobileMoneySales))
	assert.True(t, dec(1500).Equal(s.TotalExpenses))
	assert.True(t, dec(-500).Equal(s.NetProfit), "la utilidad neta puede ser negativa")
}

func TestDailySummary_UsaZonaHorariaDeLaFechaDeReferencia(t *testing.T) {
	// 2024-01-16 22:00 UTC = 2024-01-17 01:00 EAT
	s := sale("s1", time.Date(2024, 1, 16, 22, 0, 0, 0, time.UTC), 250, entity.CashPayment{})

	inEAT := analytics.ComputeDailySummary([]entity.Sale{s}, nil, at(17, 12))
	inUTC := analytics.ComputeDailySummary([]entity.Sale{s}, nil, time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, inEAT.SalesCount)
	assert.Equal(t, 0, inUTC.SalesCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Análisis semanal
// ──────────────────────────────────────────────────────────────────────────────

func TestWeeklyAnalysis_SinRegistros(t *testing.T) {
	w := analytics.ComputeWeeklyAnalysis(nil, nil, at(17, 12))

	require.Len(t, w.Days, 7)
	assert.Equal(t, "2024-01-15", w.WeekStart)
	assert.Equal(t, "2024-01-21", w.WeekEnd)
	assert.Equal(t, "Monday", w.Days[0].DayOfWeek)
	assert.Equal(t, "Sunday", w.Days[6].DayOfWeek)
	assert.True(t, w.TotalWeeklyProfit.IsZero())
	assert.True(t, w.AverageDailyProfit.IsZero())
	assert.Equal(t, "Monday", w.MostProductiveDay)
	assert.Empty(t, w.BestPerformingItems)
}

func TestWeeklyAnalysis_DomingoPerteneceALaSemanaQueEmpiezaElLunesAnterior(t *testing.T) {
	w := analytics.ComputeWeeklyAnalysis(nil, nil, at(21, 20))
	assert.Equal(t, "2024-01-15", w.WeekStart)
}

func TestWeeklyAnalysis_DiaMasProductivo(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(17, 12), 500, entity.CashPayment{}), // miércoles
		sale("s2", at(19, 12), 300, mpesa),                // viernes
	}

	w := analytics.ComputeWeeklyAnalysis(sales, nil, at(18, 12))

	assert.Equal(t, "Wednesday", w.MostProductiveDay)
	assert.True(t, dec(800).Equal(w.TotalWeeklyProfit))
}

func TestWeeklyAnalysis_EmpateGanaElPrimerDia(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(20, 12), 300, entity.CashPayment{}), // sábado
		sale("s2", at(16, 12), 300, entity.CashPayment{}), // martes
	}

	w := analytics.ComputeWeeklyAnalysis(sales, nil, at(17, 12))
	assert.Equal(t, "Tuesday", w.MostProductiveDay)
}

func TestWeeklyAnalysis_SemanaEnPerdidaEligeLaMenorPerdida(t *testing.T) {
	expenses := []entity.Expense{
		expense("e1", at(15, 9), 1000, entity.ExpenseIngredients),
		expense("e2", at(16, 9), 10, entity.ExpenseIngredients),
		expense("e3", at(17, 9), 500, entity.ExpenseSupplies),
		expense("e4", at(18, 9), 500, entity.ExpenseSupplies),
		expense("e5", at(19, 9), 500, entity.ExpenseSupplies),
		expense("e6", at(20, 9), 500, entity.ExpenseSupplies),
		expense("e7", at(21, 9), 500, entity.ExpenseSupplies),
	}

	w := analytics.ComputeWeeklyAnalysis(nil, expenses, at(18, 12))

	assert.Equal(t, "Tuesday", w.MostProductiveDay)
	assert.True(t, dec(-3510).Equal(w.TotalWeeklyProfit))
}

func TestWeeklyAnalysis_LunesConPerdidaNoGanaPorDefecto(t *testing.T) {
	// Lunes pierde y el resto queda en cero: gana el martes, primer día con cero.
	expenses := []entity.Expense{expense("e1", at(15, 9), 200, entity.ExpenseUtilities)}

	w := analytics.ComputeWeeklyAnalysis(nil, expenses, at(15, 12))
	assert.Equal(t, "Tuesday", w.MostProductiveDay)
}

func TestWeeklyAnalysis_PromedioSiempreDivideEntreSiete(t *testing.T) {
	// Solo lunes y martes tienen datos; el promedio sigue dividiendo entre 7.
	sales := []entity.Sale{
		sale("s1", at(15, 12), 700, entity.CashPayment{}),
		sale("s2", at(16, 12), 300, entity.CashPayment{}),
	}
	expenses := []entity.Expense{expense("e1", at(16, 8), 100, entity.ExpenseSupplies)}

	w := analytics.ComputeWeeklyAnalysis(sales, expenses, at(16, 18))

	assert.True(t, dec(900).Equal(w.TotalWeeklyProfit))
	assert.True(t, w.TotalWeeklyProfit.Div(dec(7)).Equal(w.AverageDailyProfit))

	sum := decimal.Zero
	for _, d := range w.Days {
		sum = sum.Add(d.NetProfit)
	}
	assert.True(t, sum.Equal(w.TotalWeeklyProfit))
}

func TestWeeklyAnalysis_MejoresPlatosTopTresPorIngreso(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(15, 12), 0, entity.CashPayment{},
			line("m1", "Beef Taco", 2, 250, 120),
			line("m2", "Chicken Taco", 1, 200, 90)),
		sale("s2", at(16, 12), 0, mpesa,
			line("m3", "Nachos", 1, 350, 150),
			line("m4", "Horchata", 1, 100, 30)),
		sale("s3", at(17, 12), 0, entity.CashPayment{},
			line("m2", "Chicken Taco", 3, 200, 90)),
		// fuera de la semana: no cuenta
		sale("s4", at(22, 12), 0, entity.CashPayment{}, line("m4", "Horchata", 50, 100, 30)),
	}

	w := analytics.ComputeWeeklyAnalysis(sales, nil, at(17, 12))

	require.Len(t, w.BestPerformingItems, 3)
	assert.Equal(t, "Chicken Taco", w.BestPerformingItems[0].Name)
	assert.Equal(t, 4, w.BestPerformingItems[0].Quantity)
	assert.True(t, dec(800).Equal(w.BestPerformingItems[0].Revenue))
	assert.Equal(t, "Beef Taco", w.BestPerformingItems[1].Name)
	assert.Equal(t, "Nachos", w.BestPerformingItems[2].Name)
	for i := 1; i < len(w.BestPerformingItems); i++ {
		assert.True(t, w.BestPerformingItems[i-1].Revenue.GreaterThanOrEqual(w.BestPerformingItems[i].Revenue))
	}
}

func TestWeeklyAnalysis_EmpateDeIngresoRespetaOrdenCronologico(t *testing.T) {
	// Insertados fuera de orden: "Quesadilla" se vendió primero.
	sales := []entity.Sale{
		sale("s2", at(16, 12), 0, entity.CashPayment{}, line("m1", "Burrito", 1, 300, 100)),
		sale("s1", at(15, 12), 0, entity.CashPayment{}, line("m2", "Quesadilla", 1, 300, 100)),
	}

	w := analytics.ComputeWeeklyAnalysis(sales, nil, at(17, 12))

	require.Len(t, w.BestPerformingItems, 2)
	assert.Equal(t, "Quesadilla", w.BestPerformingItems[0].Name)
	assert.Equal(t, "Burrito", w.BestPerformingItems[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilidad total y día de la semana más productivo
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalProfit_TodoElHistorial(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(1, 12), 1000, entity.CashPayment{}),
		sale("s2", at(30, 12), 500, mpesa),
	}
	expenses := []entity.Expense{expense("e1", at(10, 12), 2000, entity.ExpenseEquipment)}

	assert.True(t, dec(-500).Equal(analytics.TotalProfit(sales, expenses)))
	assert.True(t, analytics.TotalProfit(nil, nil).IsZero())
}

func TestMostProductiveWeekday_AcumulaTodosLosLunes(t *testing.T) {
	sales := []entity.Sale{
		// lunes 8: utilidad 200; lunes 15: utilidad 150 → 350
		sale("s1", at(8, 12), 0, entity.CashPayment{}, line("m1", "Beef Taco", 2, 250, 150)),
		sale("s2", at(15, 12), 0, entity.CashPayment{}, line("m1", "Beef Taco", 1, 250, 100)),
		// miércoles 17: utilidad 300
		sale("s3", at(17, 12), 0, entity.CashPayment{}, line("m3", "Nachos", 2, 350, 200)),
	}

	res := analytics.MostProductiveWeekday(sales, eat)

	assert.True(t, res.Found)
	assert.Equal(t, "Monday", res.Day)
	assert.True(t, dec(350).Equal(res.Profit))
}

func TestMostProductiveWeekday_DifiereDeLaVarianteSemanal(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(8, 12), 400, entity.CashPayment{}, line("m1", "Beef Taco", 2, 250, 150)),
		sale("s2", at(15, 12), 250, entity.CashPayment{}, line("m1", "Beef Taco", 1, 250, 100)),
		sale("s3", at(17, 12), 700, entity.CashPayment{}, line("m3", "Nachos", 2, 350, 200)),
	}

	weekday := analytics.MostProductiveWeekday(sales, eat)
	weekly := analytics.ComputeWeeklyAnalysis(sales, nil, at(17, 12))

	assert.Equal(t, "Monday", weekday.Day)
	assert.Equal(t, "Wednesday", weekly.MostProductiveDay)
}

func TestMostProductiveWeekday_SinUtilidadPositivaDevuelveLunesNoEncontrado(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(17, 12), 100, entity.CashPayment{}, line("m1", "Promo", 1, 100, 150)),
	}

	res := analytics.MostProductiveWeekday(sales, eat)
	assert.False(t, res.Found)
	assert.Equal(t, "Monday", res.Day)
	assert.True(t, res.Profit.IsZero())

	empty := analytics.MostProductiveWeekday(nil, nil)
	assert.False(t, empty.Found)
	assert.Equal(t, "Monday", empty.Day)
}

func TestWeekdayTotals_SieteDiasEnOrden(t *testing.T) {
	sales := []entity.Sale{sale("s1", at(21, 12), 0, mpesa, line("m1", "Beef Taco", 1, 250, 100))}

	totals := analytics.WeekdayTotals(sales, eat)

	require.Len(t, totals, 7)
	assert.Equal(t, "Monday", totals[0].Day)
	assert.Equal(t, "Sunday", totals[6].Day)
	assert.True(t, dec(150).Equal(totals[6].Profit))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros y series
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterSales_BusquedaYMetodo(t *testing.T) {
	sales := []entity.Sale{
		sale("sale-001", at(15, 12), 100, entity.CashPayment{}),
		sale("sale-002", at(15, 13), 200, mpesa),
		sale("sale-003", at(15, 14), 300, entity.MobileMoneyPayment{Code: "ZZ99", Phone: "0799000111"}),
	}

	assert.Len(t, analytics.FilterSales(sales, analytics.SalesFilter{}), 3)
	assert.Len(t, analytics.FilterSales(sales, analytics.SalesFilter{Method: "all"}), 3)

	byCode := analytics.FilterSales(sales, analytics.SalesFilter{Search: "qa12"})
	require.Len(t, byCode, 1)
	assert.Equal(t, "sale-002", byCode[0].ID)

	byPhone := analytics.FilterSales(sales, analytics.SalesFilter{Search: "0799"})
	require.Len(t, byPhone, 1)
	assert.Equal(t, "sale-003", byPhone[0].ID)

	byID := analytics.FilterSales(sales, analytics.SalesFilter{Search: "sale-001"})
	require.Len(t, byID, 1)
	assert.Equal(t, "sale-001", byID[0].ID)

	assert.Len(t, analytics.FilterSales(sales, analytics.SalesFilter{Method: "mpesa"}), 2)
	assert.Len(t, analytics.FilterSales(sales, analytics.SalesFilter{Method: "cash"}), 1)
	assert.Len(t, analytics.FilterSales(sales, analytics.SalesFilter{Method: "mpesa", Search: "sale-001"}), 0)
	assert.Empty(t, analytics.FilterSales(sales, analytics.SalesFilter{Method: "cheque"}))
}

func TestSalesBetween_IntervaloSemiabierto(t *testing.T) {
	sales := []entity.Sale{
		sale("a", at(15, 0), 1, entity.CashPayment{}),
		sale("b", at(16, 0), 1, entity.CashPayment{}),
	}
	got := analytics.SalesBetween(sales, at(15, 0), at(16, 0))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	exp := analytics.ExpensesBetween([]entity.Expense{expense("e", at(16, 0), 1, entity.ExpenseOther)}, at(15, 0), at(16, 0))
	assert.Empty(t, exp)
}

func TestPaymentBreakdown_ConteoIngresoYPorcentaje(t *testing.T) {
	sales := []entity.Sale{
		sale("a", at(15, 10), 100, entity.CashPayment{}),
		sale("b", at(15, 11), 200, mpesa),
		sale("c", at(15, 12), 300, mpesa),
		sale("d", at(15, 13), 400, nil), // sin pago → efectivo
	}

	b := analytics.ComputePaymentBreakdown(sales)

	assert.Equal(t, 2, b.Cash.Count)
	assert.True(t, dec(500).Equal(b.Cash.Revenue))
	assert.Equal(t, 2, b.MobileMoney.Count)
	assert.True(t, dec(500).Equal(b.MobileMoney.Revenue))
	assert.Equal(t, 4, b.Total.Count)
	assert.Equal(t, int64(50), b.MobileMoneyShare())
	assert.Equal(t, int64(0), analytics.ComputePaymentBreakdown(nil).MobileMoneyShare())
}

func TestDailySalesSeries_OrdenAscendente(t *testing.T) {
	sales := []entity.Sale{
		sale("a", at(17, 10), 100, entity.CashPayment{}),
		sale("b", at(15, 10), 200, mpesa),
		sale("c", at(17, 20), 50, mpesa),
	}

	series := analytics.DailySalesSeries(sales, eat)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-15", series[0].Date)
	assert.Equal(t, "2024-01-17", series[1].Date)
	assert.Equal(t, 2, series[1].Orders)
	assert.True(t, dec(150).Equal(series[1].Revenue))
}

func TestMenuItemStats_IncluyePlatosSinVentas(t *testing.T) {
	menu := []entity.MenuItem{
		{ID: "m1", Name: "Beef Taco"},
		{ID: "m2", Name: "Chicken Taco"},
		{ID: "m3", Name: "Horchata"},
	}
	sales := []entity.Sale{
		sale("a", at(15, 10), 0, entity.CashPayment{}, line("m2", "Chicken Taco", 3, 200, 90)),
		sale("b", at(15, 11), 0, entity.CashPayment{}, line("m1", "Beef Taco", 1, 250, 120), line("x", "Borrado", 9, 999, 1)),
	}

	stats := analytics.MenuItemStats(sales, menu)

	require.Len(t, stats, 3)
	assert.Equal(t, "m2", stats[0].MenuItemID)
	assert.Equal(t, 3, stats[0].Quantity)
	assert.Equal(t, "m1", stats[1].MenuItemID)
	assert.Equal(t, "m3", stats[2].MenuItemID)
	assert.True(t, stats[2].Revenue.IsZero())
}

func TestExpensesByCategory_OrdenCanonico(t *testing.T) {
	expenses := []entity.Expense{
		expense("a", at(15, 9), 300, entity.ExpenseUtilities),
		expense("b", at(15, 9), 1000, entity.ExpenseIngredients),
		expense("c", at(16, 9), 500, entity.ExpenseIngredients),
	}

	totals := analytics.ExpensesByCategory(expenses)

	require.Len(t, totals, 2)
	assert.Equal(t, entity.ExpenseIngredients, totals[0].Category)
	assert.Equal(t, "Ingredients", totals[0].Label)
	assert.True(t, dec(1500).Equal(totals[0].Amount))
	assert.Equal(t, 2, totals[0].Count)
	assert.Equal(t, entity.ExpenseUtilities, totals[1].Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Series e insights
// ──────────────────────────────────────────────────────────────────────────────

func TestWeeklyProfitSeries_EtiquetasCortas(t *testing.T) {
	w := analytics.ComputeWeeklyAnalysis(nil, nil, at(17, 12))
	series := analytics.WeeklyProfitSeries(w)

	require.Len(t, series, 7)
	assert.Equal(t, "Mon", series[0].Day)
	assert.Equal(t, "Sun", series[6].Day)
}

func TestInsights_Observaciones(t *testing.T) {
	sales := []entity.Sale{
		sale("a", at(17, 12), 14000, mpesa, line("m1", "Beef Taco", 56, 250, 120)),
	}
	w := analytics.ComputeWeeklyAnalysis(sales, nil, at(17, 12))
	b := analytics.ComputePaymentBreakdown(sales)

	ins := analytics.Insights(w, b, "KES")

	require.Len(t, ins.Observations, 4)
	assert.Equal(t, "Wednesday is your most profitable day of the week", ins.Observations[0])
	assert.Equal(t, "M-Pesa accounts for 100% of your transactions", ins.Observations[1])
	assert.Equal(t, "Your best-selling item is Beef Taco", ins.Observations[2])
	assert.Equal(t, "Average daily profit is KES 2,000", ins.Observations[3])
	assert.Len(t, ins.Recommendations, 4)
}

func TestInsights_SinPlatosMuestraNA(t *testing.T) {
	w := analytics.ComputeWeeklyAnalysis(nil, nil, at(17, 12))
	ins := analytics.Insights(w, analytics.ComputePaymentBreakdown(nil), "KES")
	assert.Equal(t, "Your best-selling item is N/A", ins.Observations[2])
}

func TestWeekdayTotals_CoincideConMostProductiveWeekday(t *testing.T) {
	sales := []entity.Sale{
		sale("s1", at(15, 12), 0, mpesa, line("m1", "Beef Taco", 2, 250, 100)),       // lunes 300
		sale("s2", at(17, 23), 0, mpesa, line("m2", "Chicken Burrito", 3, 400, 150)), // miércoles 750
		sale("s3", at(22, 1), 0, mpesa, line("m1", "Beef Taco", 1, 250, 100)),        // lunes 150
	}

	best := analytics.MostProductiveWeekday(sales, eat)
	totals := analytics.WeekdayTotals(sales, eat)

	require.True(t, best.Found)
	assert.Equal(t, "Wednesday", best.Day)
	assert.True(t, totals[2].Profit.Equal(best.Profit))
	assert.True(t, dec(450).Equal(totals[0].Profit))
	for _, day := range totals {
		assert.False(t, day.Profit.GreaterThan(best.Profit), day.Day)
	}
}
