package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// Claves de enrutamiento del exchange directo.
const (
	RoutingSaleRecorded = "sale.recorded"
	RoutingLowStock     = "inventory.low_stock"
)

// SaleRecordedEvent cuerpo JSON de sale.recorded.
type SaleRecordedEvent struct {
	Event      string           `json:"event"`
	OccurredAt time.Time        `json:"occurred_at"`
	Sale       dto.SaleResponse `json:"sale"`
}

// LowStockEvent cuerpo JSON de inventory.low_stock.
type LowStockEvent struct {
	Event        string          `json:"event"`
	OccurredAt   time.Time       `json:"occurred_at"`
	AlertID      string          `json:"alert_id"`
	AlertType    string          `json:"alert_type"`
	Message      string          `json:"message"`
	ItemID       string          `json:"inventory_item_id"`
	ItemName     string          `json:"item_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Threshold    decimal.Decimal `json:"low_stock_threshold"`
	Unit         string          `json:"unit"`
}

// NewSaleRecorded arma el evento de una venta confirmada.
func NewSaleRecorded(sale entity.Sale, at time.Time) SaleRecordedEvent {
	return SaleRecordedEvent{Event: RoutingSaleRecorded, OccurredAt: at.UTC(), Sale: dto.FromSale(sale)}
}

// NewLowStock arma el evento de una alerta de stock bajo.
func NewLowStock(alert entity.Alert, item entity.InventoryItem, at time.Time) LowStockEvent {
	return LowStockEvent{
		Event:        RoutingLowStock,
		OccurredAt:   at.UTC(),
		AlertID:      alert.ID,
		AlertType:    string(alert.Type),
		Message:      alert.Message,
		ItemID:       item.ID,
		ItemName:     item.Name,
		CurrentStock: item.CurrentStock,
		Threshold:    item.LowStockThreshold,
		Unit:         item.Unit,
	}
}
