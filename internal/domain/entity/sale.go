package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta. Name, UnitPrice y UnitCost se copian del menú al momento de vender.
type SaleItem struct {
	MenuItemID string
	Name       string
	Quantity   int             // siempre positivo
	UnitPrice  decimal.Decimal // precio de venta unitario
	UnitCost   decimal.Decimal // costo de producción unitario
}

// Revenue ingreso de la línea: cantidad × precio.
func (i SaleItem) Revenue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Profit utilidad de la línea: (precio − costo) × cantidad.
func (i SaleItem) Profit() decimal.Decimal {
	return i.UnitPrice.Sub(i.UnitCost).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa una transacción completa de un cliente.
// Total debería ser Σ Revenue() de sus líneas, pero no se fuerza: puede desviarse.
// Una venta no se modifica después de creada; solo se elimina.
type Sale struct {
	ID         string
	RecordedAt time.Time
	Items      []SaleItem
	Total      decimal.Decimal
	Payment    Payment
}

// ItemsRevenue suma el ingreso de todas las líneas.
func (s Sale) ItemsRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Revenue())
	}
	return total
}

// ItemsProfit suma la utilidad de todas las líneas.
func (s Sale) ItemsProfit() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Profit())
	}
	return total
}

// Method atajo al método de pago.
func (s Sale) Method() PaymentMethod { return MethodOf(s.Payment) }
