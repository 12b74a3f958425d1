package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/inventory"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

// UseCase administra la bodega: altas, reabastecimiento, alertas, reposición y vencimientos.
// El descuento por ventas lo hace sales.UseCase dentro de su transacción.
type UseCase struct {
	repo   repository.InventoryRepository
	alerts repository.AlertRepository
	log    *logger.Logger
	now    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository, alerts repository.AlertRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, alerts: alerts, log: log.Component("inventory"), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Create da de alta un insumo.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "obligatorio")
	}
	if in.CurrentStock.IsNegative() {
		return nil, domain.Invalid("current_stock", "no puede ser negativo")
	}
	if in.LowStockThreshold.IsNegative() {
		return nil, domain.Invalid("low_stock_threshold", "no puede ser negativo")
	}
	if in.CostPerUnit.IsNegative() {
		return nil, domain.Invalid("cost_per_unit", "no puede ser negativo")
	}
	now := uc.now()
	item := entity.InventoryItem{
		ID:                uuid.New().String(),
		Name:              name,
		CurrentStock:      in.CurrentStock,
		Unit:              strings.TrimSpace(in.Unit),
		LowStockThreshold: in.LowStockThreshold,
		CostPerUnit:       in.CostPerUnit,
		Supplier:          strings.TrimSpace(in.Supplier),
		LastRestocked:     now,
		ExpiryDate:        in.ExpiryDate,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("inventory: crear: %w", err)
	}
	out := dto.FromInventoryItem(item)
	return &out, nil
}

// List devuelve todos los insumos; lowOnly filtra los que están en o bajo su umbral.
func (uc *UseCase) List(ctx context.Context, lowOnly bool) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: listar: %w", err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		if lowOnly && !it.IsLow() {
			continue
		}
		out = append(out, dto.FromInventoryItem(it))
	}
	return out, nil
}

// Restock actualiza el stock de un insumo y marca LastRestocked.
//   - current_stock: fija el valor absoluto (conteo físico).
//   - quantity: suma una entrada; con unit_cost recalcula el costo promedio ponderado.
func (uc *UseCase) Restock(ctx context.Context, id string, in dto.RestockRequest) (*dto.InventoryItemResponse, error) {
	if (in.CurrentStock == nil) == (in.Quantity == nil) {
		return nil, domain.Invalid("current_stock", "enviar current_stock o quantity, no ambos")
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case in.CurrentStock != nil:
		if in.CurrentStock.IsNegative() {
			return nil, domain.Invalid("current_stock", "no puede ser negativo")
		}
		item.CurrentStock = *in.CurrentStock
	default:
		if !in.Quantity.IsPositive() {
			return nil, domain.Invalid("quantity", "debe ser mayor que cero")
		}
		if in.UnitCost != nil {
			if in.UnitCost.IsNegative() {
				return nil, domain.Invalid("unit_cost", "no puede ser negativo")
			}
			item.CostPerUnit = inventory.WeightedCost(item.CurrentStock, item.CostPerUnit, *in.Quantity, *in.UnitCost)
		}
		item.CurrentStock = decimal.Max(item.CurrentStock, decimal.Zero).Add(*in.Quantity)
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	now := uc.now()
	item.LastRestocked = now
	item.UpdatedAt = now

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("inventory: reabastecer: %w", err)
	}
	uc.log.Info().Str("item_id", item.ID).Str("stock", item.CurrentStock.String()).Msg("insumo reabastecido")
	out := dto.FromInventoryItem(*item)
	return &out, nil
}

// ListAlerts devuelve las alertas, más recientes primero.
func (uc *UseCase) ListAlerts(ctx context.Context, onlyPending bool) ([]dto.AlertResponse, error) {
	alerts, err := uc.alerts.List(ctx, onlyPending)
	if err != nil {
		return nil, fmt.Errorf("inventory: alertas: %w", err)
	}
	return dto.FromAlerts(alerts), nil
}

// AcknowledgeAlert marca una alerta como vista.
func (uc *UseCase) AcknowledgeAlert(ctx context.Context, id string) error {
	return uc.alerts.Acknowledge(ctx, id)
}
