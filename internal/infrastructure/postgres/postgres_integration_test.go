package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
	"github.com/jhoicas/tacohut-api/pkg/config"
)

// setup conecta a TEST_DATABASE_URL, migra, vacía las tablas y carga la demo.
func setup(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	require.NoError(t, postgres.RunMigrations(dsn))

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE sale_items, sales, expenses, menu_items, inventory_items, alerts`)
	require.NoError(t, err)
	require.NoError(t, postgres.LoadDataset(ctx, pool, seed.Demo()))
	return pool
}

func TestPostgres_RepositoriosConDatosDeDemo(t *testing.T) {
	pool := setup(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)

	sl, err := runner.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sl, 5)
	assert.Equal(t, seed.ID("sale", "5"), sl[0].ID)
	assert.Len(t, sl[0].Items, 2)
	assert.Equal(t, "mpesa", string(sl[0].Method()))

	ex, err := runner.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, ex, 4)

	menu := postgres.NewMenuRepository(pool)
	taco, err := menu.GetByID(ctx, seed.ID("menu", "1"))
	require.NoError(t, err)
	assert.NotEmpty(t, taco.Ingredients)

	_, err = menu.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	alerts := postgres.NewAlertRepository(pool)
	require.NoError(t, alerts.Acknowledge(ctx, seed.ID("alert", "1")))
	pending, err := alerts.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestPostgres_RecordSaleDescuentaEnTransaccion(t *testing.T) {
	pool := setup(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	uc := sales.NewUseCase(runner, postgres.NewSaleRepository(pool), postgres.NewMenuRepository(pool), nil, nil).
		WithClock(func() time.Time { return time.Date(2024, time.January, 19, 12, 0, 0, 0, time.UTC) })

	out, err := uc.RecordSale(ctx, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{MenuItemID: seed.ID("menu", "3"), Quantity: 30}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)

	tomatoes, err := postgres.NewInventoryRepository(pool).GetByID(ctx, seed.ID("inventory", "5"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(tomatoes.CurrentStock))

	got, err := postgres.NewSaleRepository(pool).GetByID(ctx, out.Sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Items[0].Quantity)
}
