package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem insumo en bodega (carne, tortillas, aguacate...).
// CurrentStock nunca es negativo: el descuento por ventas se trunca en cero.
type InventoryItem struct {
	ID                string
	Name              string
	CurrentStock      decimal.Decimal
	Unit              string
	LowStockThreshold decimal.Decimal
	CostPerUnit       decimal.Decimal
	Supplier          string
	LastRestocked     time.Time
	ExpiryDate        *time.Time
	UpdatedAt         time.Time
}

// IsLow indica si el stock está en o por debajo del umbral.
func (i InventoryItem) IsLow() bool {
	return i.CurrentStock.LessThanOrEqual(i.LowStockThreshold)
}
