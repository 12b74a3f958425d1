package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
)

var (
	_ sales.TxRunner               = (*TxRunner)(nil)
	_ repository.TransactionSource = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL y expone el log de
// transacciones para la analítica.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	menu repository.MenuRepository,
	inventory repository.InventoryRepository,
	alerts repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewSaleRepository(tx),
		NewMenuRepository(tx),
		NewInventoryRepository(tx),
		NewAlertRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListSales implementa repository.TransactionSource.
func (r *TxRunner) ListSales(ctx context.Context) ([]entity.Sale, error) {
	return NewSaleRepository(r.pool).List(ctx)
}

// ListExpenses implementa repository.TransactionSource.
func (r *TxRunner) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return NewExpenseRepository(r.pool).List(ctx)
}
