package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

// LoadDataset inserta el dataset registro por registro. Los que ya existen (mismo ID) se
// omiten, así que se puede correr más de una vez. Sin transacción: un duplicado abortaría la tx.
func LoadDataset(ctx context.Context, pool *pgxpool.Pool, ds seed.Dataset) error {
	skipDup := func(err error) error {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return err
	}
	menu, inv, sales, exp, alerts := NewMenuRepository(pool), NewInventoryRepository(pool),
		NewSaleRepository(pool), NewExpenseRepository(pool), NewAlertRepository(pool)

	for i := range ds.Menu {
		if err := skipDup(menu.Create(ctx, &ds.Menu[i])); err != nil {
			return err
		}
	}
	for i := range ds.Inventory {
		if err := skipDup(inv.Create(ctx, &ds.Inventory[i])); err != nil {
			return err
		}
	}
	for i := range ds.Sales {
		if err := skipDup(sales.Create(ctx, &ds.Sales[i])); err != nil {
			return err
		}
	}
	for i := range ds.Expenses {
		if err := skipDup(exp.Create(ctx, &ds.Expenses[i])); err != nil {
			return err
		}
	}
	for i := range ds.Alerts {
		if err := skipDup(alerts.Create(ctx, &ds.Alerts[i])); err != nil {
			return err
		}
	}
	return nil
}
