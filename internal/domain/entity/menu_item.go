package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient componente de la receta de un plato. Quantity puede ser fraccionaria (ej. 0.25 limón).
type Ingredient struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string // g, piece, ml...
}

// MenuItem plato del menú. Ingredients solo se usa para descontar inventario al vender.
type MenuItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	Cost        decimal.Decimal // costo de producción por unidad
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
