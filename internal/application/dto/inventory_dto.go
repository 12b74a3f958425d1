package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventory.
type CreateInventoryItemRequest struct {
	Name              string          `json:"name"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	Supplier          string          `json:"supplier"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
}

// RestockRequest body para PUT /api/inventory/:id/stock.
// current_stock fija el valor absoluto; quantity suma una entrada (con unit_cost opcional
// para recalcular el costo promedio ponderado). Debe venir exactamente uno de los dos.
type RestockRequest struct {
	CurrentStock *decimal.Decimal `json:"current_stock,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
}

// InventoryItemResponse insumo en bodega.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	Supplier          string          `json:"supplier"`
	LastRestocked     time.Time       `json:"last_restocked"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	IsLow             bool            `json:"is_low"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un insumo en o bajo su umbral.
type ReplenishmentSuggestionDTO struct {
	InventoryItemID    string          `json:"inventory_item_id"`
	Name               string          `json:"name"`
	Unit               string          `json:"unit"`
	Supplier           string          `json:"supplier"`
	CurrentStock       decimal.Decimal `json:"current_stock"`
	LowStockThreshold  decimal.Decimal `json:"low_stock_threshold"`
	Deficit            decimal.Decimal `json:"deficit"`
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`  // umbral × 1.5 − stock
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // cantidad × costo unitario
	Priority           int             `json:"priority"`             // 1 = más urgente
}

// ExpiringItemDTO insumo próximo a vencer.
type ExpiringItemDTO struct {
	InventoryItemID string    `json:"inventory_item_id"`
	Name            string    `json:"name"`
	ExpiryDate      time.Time `json:"expiry_date"`
	DaysLeft        int       `json:"days_left"`
	Message         string    `json:"message"`
}

// AlertResponse alerta operativa.
type AlertResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	InventoryItemID string    `json:"inventory_item_id,omitempty"`
	CreatedAt       time.Time `json:"timestamp"`
	Acknowledged    bool      `json:"acknowledged"`
}
