package ports

import (
	"context"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// EventPublisher define el puerto de salida para eventos de negocio (ventas, stock bajo).
// Cualquier adaptador (AMQP, nulo, mock) debe implementar esta interfaz.
// Un error de publicación nunca debe revertir la operación que lo originó.
type EventPublisher interface {
	// SaleRecorded se emite después de confirmar una venta.
	SaleRecorded(ctx context.Context, sale entity.Sale) error
	// LowStock se emite una vez por cada alerta de stock bajo generada por una venta.
	LowStock(ctx context.Context, alert entity.Alert, item entity.InventoryItem) error
}
