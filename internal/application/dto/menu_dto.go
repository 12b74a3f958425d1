package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientDTO ingrediente de una receta.
type IngredientDTO struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// MenuItemRequest body para POST y PUT /api/menu.
type MenuItemRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	Ingredients []IngredientDTO `json:"ingredients"`
}

// MenuItemResponse plato del menú.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	Margin      decimal.Decimal `json:"margin"` // precio − costo
	Ingredients []IngredientDTO `json:"ingredients"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
