package repository

import (
	"context"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia de insumos en bodega.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// List ordena por nombre.
	List(ctx context.Context) ([]entity.InventoryItem, error)
	// ListForUpdate igual que List pero bloquea las filas dentro de una transacción
	// (SELECT ... FOR UPDATE). Fuera de tx o en backends sin bloqueo equivale a List.
	ListForUpdate(ctx context.Context) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
}

// AlertRepository define el puerto de persistencia de alertas operativas.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	// List devuelve las alertas más recientes primero; onlyPending filtra las no confirmadas.
	List(ctx context.Context, onlyPending bool) ([]entity.Alert, error)
	// Acknowledge marca la alerta como confirmada. domain.ErrNotFound si no existe.
	Acknowledge(ctx context.Context, id string) error
}
