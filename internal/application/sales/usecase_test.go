package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/ports"
	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/memory"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

// recordingPublisher guarda los eventos publicados.
type recordingPublisher struct {
	mu       sync.Mutex
	sales    []entity.Sale
	lowStock []entity.Alert
	fail     bool
}

func (p *recordingPublisher) SaleRecorded(_ context.Context, s entity.Sale) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sales = append(p.sales, s)
	if p.fail {
		return errors.New("broker caído")
	}
	return nil
}

func (p *recordingPublisher) LowStock(_ context.Context, a entity.Alert, _ entity.InventoryItem) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lowStock = append(p.lowStock, a)
	return nil
}

var fixedNow = time.Date(2024, time.January, 19, 12, 0, 0, 0, time.UTC)

func newUseCase(store *memory.Store, pub *recordingPublisher) *sales.UseCase {
	var p ports.EventPublisher
	if pub != nil {
		p = pub
	}
	return sales.NewUseCase(store, store.Sales(), store.Menu(), p, logger.Nop()).
		WithClock(func() time.Time { return fixedNow })
}

func ptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_CompletaDesdeMenuYDescuentaInsumos(t *testing.T) {
	store := memory.NewSeeded()
	pub := &recordingPublisher{}
	uc := newUseCase(store, pub)
	ctx := context.Background()

	out, err := uc.RecordSale(ctx, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{MenuItemID: seed.ID("menu", "1"), Quantity: 2}},
		PaymentMethod: "mpesa",
		MpesaCode:     "QX1",
		CustomerPhone: "0712000000",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Sale.ID)
	assert.Equal(t, fixedNow, out.Sale.RecordedAt)
	assert.Equal(t, "Carne Asada Taco", out.Sale.Items[0].Name)
	assert.True(t, decimal.NewFromInt(500).Equal(out.Sale.Total))
	assert.Equal(t, "mpesa", out.Sale.PaymentMethod)
	assert.Equal(t, "QX1", out.Sale.MpesaCode)
	assert.Empty(t, out.Alerts)

	beef, err := store.Inventory().GetByID(ctx, seed.ID("inventory", "1"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2340).Equal(beef.CurrentStock), "2500 − 80×2")

	tortilla, _ := store.Inventory().GetByID(ctx, seed.ID("inventory", "3"))
	assert.True(t, decimal.NewFromInt(43).Equal(tortilla.CurrentStock))

	require.Len(t, pub.sales, 1)
	assert.Equal(t, out.Sale.ID, pub.sales[0].ID)
}

func TestRecordSale_CruceDeUmbralCreaAlertaYEvento(t *testing.T) {
	store := memory.NewSeeded()
	pub := &recordingPublisher{}
	uc := newUseCase(store, pub)
	ctx := context.Background()

	// Tomatoes: 800 g, umbral 200. 30 guacamoles × 20 g → 200. Avocado ya estaba bajo: sin alerta.
	out, err := uc.RecordSale(ctx, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{MenuItemID: seed.ID("menu", "3"), Quantity: 30}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "critical", out.Alerts[0].Type)
	assert.Equal(t, seed.ID("inventory", "5"), out.Alerts[0].InventoryItemID)
	assert.Contains(t, out.Alerts[0].Message, "Only 200 g remaining")
	assert.NotEmpty(t, out.Alerts[0].ID)

	pending, _ := store.Alerts().List(ctx, true)
	assert.Len(t, pending, 3)
	assert.Len(t, pub.lowStock, 1)
}

func TestRecordSale_TotalExplicitoDistintoSeAcepta(t *testing.T) {
	store := memory.NewSeeded()
	uc := newUseCase(store, &recordingPublisher{})

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{MenuItemID: seed.ID("menu", "3"), Quantity: 1}},
		Total:         ptr(150),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(out.Sale.Total))
}

func TestRecordSale_ErrorDePublicacionNoRevierteLaVenta(t *testing.T) {
	store := memory.NewSeeded()
	uc := newUseCase(store, &recordingPublisher{fail: true})

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{MenuItemID: seed.ID("menu", "1"), Quantity: 1}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	_, err = store.Sales().GetByID(context.Background(), out.Sale.ID)
	assert.NoError(t, err)
}

func TestRecordSale_PlatoFueraDelMenuConPrecio(t *testing.T) {
	store := memory.NewSeeded()
	uc := newUseCase(store, nil)

	out, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{MenuItemID: "especial", Name: "Taco del día", Quantity: 2, Price: ptr(300)}},
		PaymentMethod: "mobile-money",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(600).Equal(out.Sale.Total))
	assert.Equal(t, "mpesa", out.Sale.PaymentMethod)
	assert.Empty(t, out.Alerts)
}

func TestRecordSale_Validaciones(t *testing.T) {
	store := memory.NewSeeded()
	uc := newUseCase(store, nil)
	ctx := context.Background()
	taco := seed.ID("menu", "1")

	cases := []struct {
		name  string
		in    dto.CreateSaleRequest
		field string
	}{
		{"sin líneas", dto.CreateSaleRequest{PaymentMethod: "cash"}, "items"},
		{"método desconocido", dto.CreateSaleRequest{PaymentMethod: "cheque", Items: []dto.SaleItemRequest{{MenuItemID: taco, Quantity: 1}}}, "payment_method"},
		{"cantidad cero", dto.CreateSaleRequest{PaymentMethod: "cash", Items: []dto.SaleItemRequest{{MenuItemID: taco, Quantity: 0}}}, "items[0].quantity"},
		{"precio negativo", dto.CreateSaleRequest{PaymentMethod: "cash", Items: []dto.SaleItemRequest{{MenuItemID: taco, Quantity: 1, Price: ptr(-1)}}}, "items[0].price"},
		{"plato desconocido sin precio", dto.CreateSaleRequest{PaymentMethod: "cash", Items: []dto.SaleItemRequest{{MenuItemID: "x", Name: "X", Quantity: 1}}}, "items[0].price"},
		{"total negativo", dto.CreateSaleRequest{PaymentMethod: "cash", Total: ptr(-5), Items: []dto.SaleItemRequest{{MenuItemID: taco, Quantity: 1}}}, "total"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordSale(ctx, tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	all, _ := store.Sales().List(ctx)
	assert.Len(t, all, 5, "ninguna venta inválida se persiste")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListSales_FiltraPorMetodoYBusqueda(t *testing.T) {
	store := memory.NewSeeded()
	uc := newUseCase(store, nil)
	ctx := context.Background()

	mpesa, err := uc.ListSales(ctx, dto.SaleListQuery{Payment: "mpesa"})
	require.NoError(t, err)
	assert.Len(t, mpesa, 3)

	byCode, err := uc.ListSales(ctx, dto.SaleListQuery{Search: "qb34"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, seed.ID("sale", "3"), byCode[0].ID)

	_, err = uc.ListSales(ctx, dto.SaleListQuery{Payment: "cheque"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetYDeleteSale(t *testing.T) {
	store := memory.NewSeeded()
	uc := newUseCase(store, nil)
	ctx := context.Background()
	id := seed.ID("sale", "2")

	got, err := uc.GetSale(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cash", got.PaymentMethod)

	require.NoError(t, uc.DeleteSale(ctx, id))
	_, err = uc.GetSale(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteSale(ctx, id), domain.ErrNotFound)
}
