package repository

import (
	"context"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas no se actualizan: solo se crean o eliminan.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve todas las ventas, más recientes primero.
	List(ctx context.Context) ([]entity.Sale, error)
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	List(ctx context.Context) ([]entity.Expense, error)
	Delete(ctx context.Context, id string) error
}
