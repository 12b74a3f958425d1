// Package sales contiene el caso de uso de registro de ventas: validación, descuento de
// insumos por receta, alertas de stock bajo y publicación de eventos.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/ports"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/inventory"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

// UseCase registra, consulta y elimina ventas.
//
// No hay clave de idempotencia: si el cliente reintenta un POST se registra una venta
// duplicada y el stock se descuenta dos veces.
type UseCase struct {
	txRunner  TxRunner
	saleRepo  repository.SaleRepository
	menuRepo  repository.MenuRepository
	publisher ports.EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	menuRepo repository.MenuRepository,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		txRunner:  txRunner,
		saleRepo:  saleRepo,
		menuRepo:  menuRepo,
		publisher: publisher,
		log:       log.Component("sales"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// RecordSale valida la venta, la persiste y descuenta los insumos de cada receta en una
// sola transacción. Devuelve la venta y las alertas de stock bajo que generó.
//
// Reglas:
//   - al menos una línea; cantidad > 0; precio y costo >= 0; método cash|mpesa.
//   - nombre, precio y costo omitidos se toman del menú; plato desconocido sin precio es inválido.
//   - Total omitido = Σ precio×cantidad. Un total explícito distinto se acepta y se registra como warning.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.RecordSaleResponse, error) {
	method, ok := entity.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, domain.Invalid("payment_method", "debe ser cash o mpesa")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items", "la venta debe tener al menos un plato")
	}

	menuItems, err := uc.menuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales: leer menú: %w", err)
	}
	byID := make(map[string]entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	lines := make([]entity.SaleItem, 0, len(in.Items))
	for i, it := range in.Items {
		line, err := buildLine(i, it, byID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	now := uc.now()
	sale := entity.Sale{
		ID:         uuid.New().String(),
		RecordedAt: now,
		Items:      lines,
		Payment:    entity.NewPayment(method, in.MpesaCode, in.CustomerPhone),
	}
	if in.RecordedAt != nil && !in.RecordedAt.IsZero() {
		sale.RecordedAt = *in.RecordedAt
	}
	sale.Total = sale.ItemsRevenue()
	if in.Total != nil {
		if in.Total.IsNegative() {
			return nil, domain.Invalid("total", "no puede ser negativo")
		}
		if !in.Total.Equal(sale.Total) {
			uc.log.Warn().
				Str("sale_id", sale.ID).
				Str("total", in.Total.String()).
				Str("items_revenue", sale.Total.String()).
				Msg("total de la venta distinto a la suma de las líneas")
		}
		sale.Total = *in.Total
	}

	var (
		alerts  []entity.Alert
		touched = make(map[string]entity.InventoryItem)
	)
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		menuRepo repository.MenuRepository,
		invRepo repository.InventoryRepository,
		alertRepo repository.AlertRepository,
	) error {
		menu, err := menuRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("leer menú: %w", err)
		}
		stock, err := invRepo.ListForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("leer inventario: %w", err)
		}

		res := inventory.ApplySale(sale, menu, stock, now)
		for i := range res.Updated {
			item := res.Updated[i]
			if err := invRepo.Update(ctx, &item); err != nil {
				return fmt.Errorf("actualizar insumo %s: %w", item.ID, err)
			}
			touched[item.ID] = item
		}
		for i := range res.Alerts {
			a := res.Alerts[i]
			a.ID = uuid.New().String()
			if err := alertRepo.Create(ctx, &a); err != nil {
				return fmt.Errorf("crear alerta: %w", err)
			}
			alerts = append(alerts, a)
		}
		return saleRepo.Create(ctx, &sale)
	})
	if err != nil {
		return nil, fmt.Errorf("sales: registrar venta: %w", err)
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("total", sale.Total.String()).
		Str("method", string(method)).
		Int("alerts", len(alerts)).
		Msg("venta registrada")
	uc.publish(ctx, sale, alerts, touched)

	return &dto.RecordSaleResponse{Sale: dto.FromSale(sale), Alerts: dto.FromAlerts(alerts)}, nil
}

func buildLine(i int, it dto.SaleItemRequest, menu map[string]entity.MenuItem) (entity.SaleItem, error) {
	field := fmt.Sprintf("items[%d]", i)
	if it.Quantity <= 0 {
		return entity.SaleItem{}, domain.Invalid(field+".quantity", "debe ser mayor que cero")
	}
	line := entity.SaleItem{MenuItemID: strings.TrimSpace(it.MenuItemID), Name: strings.TrimSpace(it.Name), Quantity: it.Quantity}

	m, known := menu[line.MenuItemID]
	switch {
	case it.Price != nil:
		line.UnitPrice = *it.Price
	case known:
		line.UnitPrice = m.Price
	default:
		return entity.SaleItem{}, domain.Invalid(field+".price", "plato desconocido: el precio es obligatorio")
	}
	switch {
	case it.Cost != nil:
		line.UnitCost = *it.Cost
	case known:
		line.UnitCost = m.Cost
	default:
		line.UnitCost = decimal.Zero
	}
	if line.Name == "" && known {
		line.Name = m.Name
	}
	if line.Name == "" {
		return entity.SaleItem{}, domain.Invalid(field+".name", "obligatorio para platos fuera del menú")
	}
	if line.UnitPrice.IsNegative() {
		return entity.SaleItem{}, domain.Invalid(field+".price", "no puede ser negativo")
	}
	if line.UnitCost.IsNegative() {
		return entity.SaleItem{}, domain.Invalid(field+".cost", "no puede ser negativo")
	}
	return line, nil
}

// publish emite los eventos de la venta. Los errores solo se registran.
func (uc *UseCase) publish(ctx context.Context, sale entity.Sale, alerts []entity.Alert, items map[string]entity.InventoryItem) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.SaleRecorded(ctx, sale); err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("no se pudo publicar sale.recorded")
	}
	for _, a := range alerts {
		if err := uc.publisher.LowStock(ctx, a, items[a.InventoryItemID]); err != nil {
			uc.log.Warn().Err(err).Str("alert_id", a.ID).Msg("no se pudo publicar inventory.low_stock")
		}
	}
}

// ListSales devuelve las ventas filtradas por búsqueda y método de pago, más recientes primero.
func (uc *UseCase) ListSales(ctx context.Context, q dto.SaleListQuery) ([]dto.SaleResponse, error) {
	if p := strings.TrimSpace(q.Payment); p != "" && !strings.EqualFold(p, "all") {
		if _, ok := entity.ParsePaymentMethod(p); !ok {
			return nil, domain.Invalid("payment", "debe ser all, cash o mpesa")
		}
	}
	all, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales: listar: %w", err)
	}
	filtered := analytics.FilterSales(all, analytics.SalesFilter{Search: q.Search, Method: q.Payment})
	return dto.FromSales(filtered), nil
}

// GetSale obtiene una venta por ID.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromSale(*s)
	return &out, nil
}

// DeleteSale elimina una venta. El stock descontado no se restituye.
func (uc *UseCase) DeleteSale(ctx context.Context, id string) error {
	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("sales: eliminar: %w", err)
	}
	uc.log.Info().Str("sale_id", id).Msg("venta eliminada")
	return nil
}
