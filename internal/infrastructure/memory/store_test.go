package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/memory"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

func TestNewSeeded_CargaDatosDeDemostracion(t *testing.T) {
	s := memory.NewSeeded()
	ctx := context.Background()

	sales, err := s.ListSales(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 5)
	assert.Equal(t, seed.ID("sale", "5"), sales[0].ID, "más recientes primero")

	menu, err := s.Menu().List(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, 5)

	pending, err := s.Alerts().List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestSaleRepository_CrudYNoEncontrado(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	repo := s.Sales()

	sale := entity.Sale{ID: "s1", RecordedAt: time.Now(), Total: decimal.NewFromInt(100), Payment: entity.CashPayment{},
		Items: []entity.SaleItem{{MenuItemID: "m1", Name: "Taco", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}}}
	require.NoError(t, repo.Create(ctx, &sale))
	assert.ErrorIs(t, repo.Create(ctx, &sale), domain.ErrDuplicate)

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	got.Items[0].Quantity = 99 // la copia no debe afectar al almacén

	again, _ := repo.GetByID(ctx, "s1")
	assert.Equal(t, 1, again.Items[0].Quantity)

	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), domain.ErrNotFound)
	_, err = repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunSale_RevierteSiFalla(t *testing.T) {
	s := memory.NewSeeded()
	ctx := context.Background()
	beefID := seed.ID("inventory", "1")

	err := s.RunSale(ctx, func(sr repository.SaleRepository, _ repository.MenuRepository, ir repository.InventoryRepository, ar repository.AlertRepository) error {
		item, err := ir.GetByID(ctx, beefID)
		require.NoError(t, err)
		item.CurrentStock = decimal.Zero
		require.NoError(t, ir.Update(ctx, item))
		require.NoError(t, ar.Create(ctx, &entity.Alert{ID: "a-tx"}))
		return errors.New("falla simulada")
	})
	require.Error(t, err)

	item, err := s.Inventory().GetByID(ctx, beefID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2500).Equal(item.CurrentStock))
	alerts, _ := s.Alerts().List(ctx, false)
	assert.Len(t, alerts, 2)
}

func TestAlertRepository_Acknowledge(t *testing.T) {
	s := memory.NewSeeded()
	ctx := context.Background()

	require.NoError(t, s.Alerts().Acknowledge(ctx, seed.ID("alert", "1")))
	pending, _ := s.Alerts().List(ctx, true)
	assert.Len(t, pending, 1)
	assert.ErrorIs(t, s.Alerts().Acknowledge(ctx, "nope"), domain.ErrNotFound)
}
