package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/pkg/textnorm"
)

// SalesFilter criterios de búsqueda del listado de ventas.
type SalesFilter struct {
	Search string // código M-Pesa (sin mayúsculas), subcadena del teléfono o del ID
	Method string // "" | "all" | "cash" | "mpesa" (acepta alias de ParsePaymentMethod)
}

// FilterSales aplica búsqueda y filtro de método. Búsqueda vacía coincide con todo.
func FilterSales(sales []entity.Sale, f SalesFilter) []entity.Sale {
	var method entity.PaymentMethod
	if m := strings.TrimSpace(f.Method); m != "" && !strings.EqualFold(m, "all") {
		parsed, ok := entity.ParsePaymentMethod(m)
		if !ok {
			return []entity.Sale{}
		}
		method = parsed
	}
	term := strings.TrimSpace(f.Search)

	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if method != "" && s.Method() != method {
			continue
		}
		if term != "" && !matchesSearch(s, term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s entity.Sale, term string) bool {
	_, code, phone := entity.PaymentFields(s.Payment)
	if code != "" && strings.Contains(textnorm.Fold(code), textnorm.Fold(term)) {
		return true
	}
	if phone != "" && strings.Contains(phone, term) {
		return true
	}
	return strings.Contains(s.ID, term)
}

// SalesBetween ventas con RecordedAt ∈ [from, to).
func SalesBetween(sales []entity.Sale, from, to time.Time) []entity.Sale {
	out := make([]entity.Sale, 0)
	for _, s := range sales {
		if within(s.RecordedAt, from, to) {
			out = append(out, s)
		}
	}
	return out
}

// ExpensesBetween gastos con RecordedAt ∈ [from, to).
func ExpensesBetween(expenses []entity.Expense, from, to time.Time) []entity.Expense {
	out := make([]entity.Expense, 0)
	for _, e := range expenses {
		if within(e.RecordedAt, from, to) {
			out = append(out, e)
		}
	}
	return out
}

// MethodTotals conteo e ingreso de un método de pago.
type MethodTotals struct {
	Count   int
	Revenue decimal.Decimal
}

// PaymentBreakdown distribución de ventas por método.
type PaymentBreakdown struct {
	Cash        MethodTotals
	MobileMoney MethodTotals
	Total       MethodTotals
}

// MobileMoneyShare porcentaje (0..100, entero) de transacciones M-Pesa. 0 si no hay ventas.
func (b PaymentBreakdown) MobileMoneyShare() int64 {
	if b.Total.Count == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(b.MobileMoney.Count * 100)).
		Div(decimal.NewFromInt(int64(b.Total.Count))).Round(0).IntPart()
}

// ComputePaymentBreakdown cuenta ventas e ingreso por método.
func ComputePaymentBreakdown(sales []entity.Sale) PaymentBreakdown {
	b := PaymentBreakdown{
		Cash:        MethodTotals{Revenue: decimal.Zero},
		MobileMoney: MethodTotals{Revenue: decimal.Zero},
		Total:       MethodTotals{Revenue: decimal.Zero},
	}
	for _, s := range sales {
		t := &b.Cash
		if s.Method() == entity.PaymentMethodMobileMoney {
			t = &b.MobileMoney
		}
		t.Count++
		t.Revenue = t.Revenue.Add(s.Total)
		b.Total.Count++
		b.Total.Revenue = b.Total.Revenue.Add(s.Total)
	}
	return b
}

// DailyPoint punto de la serie diaria de ventas.
type DailyPoint struct {
	Date    string
	Revenue decimal.Decimal
	Orders  int
}

// DailySalesSeries ingreso y número de órdenes por día calendario (en loc), fecha ascendente.
func DailySalesSeries(sales []entity.Sale, loc *time.Location) []DailyPoint {
	if loc == nil {
		loc = time.UTC
	}
	byDate := make(map[string]*DailyPoint)
	for _, s := range sales {
		key := DateKey(s.RecordedAt, loc)
		p, ok := byDate[key]
		if !ok {
			p = &DailyPoint{Date: key, Revenue: decimal.Zero}
			byDate[key] = p
		}
		p.Revenue = p.Revenue.Add(s.Total)
		p.Orders++
	}
	out := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// MenuItemStat ventas acumuladas de un plato del menú.
type MenuItemStat struct {
	MenuItemID string
	Name       string
	Category   string
	Quantity   int
	Revenue    decimal.Decimal
}

// MenuItemStats cantidad e ingreso por plato (por MenuItemID), incluyendo los que no se han
// vendido. Orden: ingreso descendente, estable respecto al orden del menú.
func MenuItemStats(sales []entity.Sale, menu []entity.MenuItem) []MenuItemStat {
	pos := make(map[string]int, len(menu))
	out := make([]MenuItemStat, 0, len(menu))
	for i, m := range menu {
		pos[m.ID] = i
		out = append(out, MenuItemStat{MenuItemID: m.ID, Name: m.Name, Category: m.Category, Revenue: decimal.Zero})
	}
	for _, s := range sales {
		for _, line := range s.Items {
			i, ok := pos[line.MenuItemID]
			if !ok {
				continue
			}
			out[i].Quantity += line.Quantity
			out[i].Revenue = out[i].Revenue.Add(line.Revenue())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}

// CategoryTotal total de gastos de una categoría.
type CategoryTotal struct {
	Category entity.ExpenseCategory
	Label    string // "Ingredients"
	Amount   decimal.Decimal
	Count    int
}

// ExpensesByCategory totales por categoría en orden canónico. Solo incluye categorías con gastos;
// las categorías desconocidas se suman al final bajo su propio nombre.
func ExpensesByCategory(expenses []entity.Expense) []CategoryTotal {
	sums := make(map[entity.ExpenseCategory]*CategoryTotal)
	var extra []entity.ExpenseCategory
	for _, e := range expenses {
		t, ok := sums[e.Category]
		if !ok {
			t = &CategoryTotal{Category: e.Category, Label: textnorm.Title(string(e.Category)), Amount: decimal.Zero}
			sums[e.Category] = t
			if !e.Category.Valid() {
				extra = append(extra, e.Category)
			}
		}
		t.Amount = t.Amount.Add(e.Amount)
		t.Count++
	}

	out := make([]CategoryTotal, 0, len(sums))
	for _, c := range append(append([]entity.ExpenseCategory{}, entity.ExpenseCategories...), extra...) {
		if t, ok := sums[c]; ok {
			out = append(out, *t)
		}
	}
	return out
}
