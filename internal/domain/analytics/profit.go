package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// TotalProfit Σ ventas − Σ gastos sobre todo el log, sin límite de fechas.
func TotalProfit(sales []entity.Sale, expenses []entity.Expense) decimal.Decimal {
	return SalesRevenue(sales).Sub(ExpensesTotal(expenses))
}

// SalesRevenue Σ Total de las ventas.
func SalesRevenue(sales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}

// ExpensesTotal Σ Amount de los gastos.
func ExpensesTotal(expenses []entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// WeekdayProfit resultado de MostProductiveWeekday.
// Found=false cuando ningún día acumuló utilidad positiva; Day queda en "Monday".
type WeekdayProfit struct {
	Day    string
	Profit decimal.Decimal
	Found  bool
}

// MostProductiveWeekday acumula la utilidad por plato ((precio − costo) × cantidad) de todas
// las ventas del historial por día de la semana (todos los lunes juntos, etc.) y devuelve el
// de mayor utilidad. Difiere de WeeklyAnalysis.MostProductiveDay, que usa la utilidad neta
// de una semana concreta.
func MostProductiveWeekday(sales []entity.Sale, loc *time.Location) WeekdayProfit {
	buckets, seen := weekdayBuckets(sales, loc)

	res := WeekdayProfit{Day: time.Monday.String(), Profit: decimal.Zero}
	for _, wd := range weekOrder {
		if seen[wd] && buckets[wd].GreaterThan(res.Profit) {
			res = WeekdayProfit{Day: wd.String(), Profit: buckets[wd], Found: true}
		}
	}
	return res
}

// WeekdayTotals utilidad por plato acumulada por día de la semana, lunes..domingo.
// Útil para gráficos junto a MostProductiveWeekday.
func WeekdayTotals(sales []entity.Sale, loc *time.Location) []WeekdayProfit {
	sums, _ := weekdayBuckets(sales, loc)
	out := make([]WeekdayProfit, 0, 7)
	for _, wd := range weekOrder {
		p := sums[wd]
		out = append(out, WeekdayProfit{Day: wd.String(), Profit: p, Found: p.IsPositive()})
	}
	return out
}

// weekdayBuckets suma ItemsProfit por día de la semana en loc (UTC si es nil). Los días sin
// ventas quedan en cero y seen indica cuáles tuvieron al menos una.
func weekdayBuckets(sales []entity.Sale, loc *time.Location) (sums [7]decimal.Decimal, seen [7]bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, s := range sales {
		wd := s.RecordedAt.In(loc).Weekday()
		sums[wd] = sums[wd].Add(s.ItemsProfit())
		seen[wd] = true
	}
	return sums, seen
}
