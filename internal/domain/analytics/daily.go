package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// DailySummary agregado de ventas y gastos de un día calendario.
type DailySummary struct {
	Date             string          // YYYY-MM-DD
	DayOfWeek        string          // "Monday"...
	TotalSales       decimal.Decimal // Σ sale.Total
	TotalExpenses    decimal.Decimal // Σ expense.Amount
	NetProfit        decimal.Decimal // TotalSales − TotalExpenses (puede ser negativo)
	SalesCount       int
	MobileMoneySales decimal.Decimal
	CashSales        decimal.Decimal
}

// ComputeDailySummary agrega los registros cuyo timestamp cae en el mismo día calendario que date,
// usando la zona horaria de date. Sin registros devuelve un resumen en cero, nunca un error.
func ComputeDailySummary(sales []entity.Sale, expenses []entity.Expense, date time.Time) DailySummary {
	day := DayStart(date, date.Location())
	s := DailySummary{
		Date:             day.Format(dateLayout),
		DayOfWeek:        day.Weekday().String(),
		TotalSales:       decimal.Zero,
		TotalExpenses:    decimal.Zero,
		NetProfit:        decimal.Zero,
		MobileMoneySales: decimal.Zero,
		CashSales:        decimal.Zero,
	}

	for _, sale := range sales {
		if !sameDay(sale.RecordedAt, day) {
			continue
		}
		s.TotalSales = s.TotalSales.Add(sale.Total)
		s.SalesCount++
		switch sale.Method() {
		case entity.PaymentMethodMobileMoney:
			s.MobileMoneySales = s.MobileMoneySales.Add(sale.Total)
		case entity.PaymentMethodCash:
			s.CashSales = s.CashSales.Add(sale.Total)
		}
	}
	for _, exp := range expenses {
		if sameDay(exp.RecordedAt, day) {
			s.TotalExpenses = s.TotalExpenses.Add(exp.Amount)
		}
	}

	s.NetProfit = s.TotalSales.Sub(s.TotalExpenses)
	return s
}
