package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/inventory"
)

const maxExpiryWindowDays = 60

// GenerateReplenishmentList devuelve los insumos en o bajo su umbral con la cantidad sugerida
// de pedido (umbral × 1.5 − stock) y su costo estimado. Prioridad 1 = mayor déficit.
func (uc *UseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: reposición: %w", err)
	}
	lines := inventory.ReplenishmentList(items)
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(lines))
	for i, l := range lines {
		out = append(out, dto.ReplenishmentSuggestionDTO{
			InventoryItemID:    l.Item.ID,
			Name:               l.Item.Name,
			Unit:               l.Item.Unit,
			Supplier:           l.Item.Supplier,
			CurrentStock:       l.Item.CurrentStock,
			LowStockThreshold:  l.Item.LowStockThreshold,
			Deficit:            l.Deficit,
			SuggestedOrderQty:  l.SuggestedQty.Round(2),
			EstimatedOrderCost: l.EstimatedCost.Round(2),
			Priority:           i + 1,
		})
	}
	return out, nil
}

// ExpiringSoon insumos que vencen en los próximos days días (incluye vencidos).
func (uc *UseCase) ExpiringSoon(ctx context.Context, days int) ([]dto.ExpiringItemDTO, error) {
	if days < 0 || days > maxExpiryWindowDays {
		return nil, domain.Invalid("days", fmt.Sprintf("debe estar entre 0 y %d", maxExpiryWindowDays))
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: vencimientos: %w", err)
	}
	now := uc.now()
	expiring := inventory.ExpiringSoon(items, now, time.Duration(days)*24*time.Hour)
	out := make([]dto.ExpiringItemDTO, 0, len(expiring))
	for _, e := range expiring {
		alert := inventory.ExpiryAlert(e, now)
		out = append(out, dto.ExpiringItemDTO{
			InventoryItemID: e.Item.ID,
			Name:            e.Item.Name,
			ExpiryDate:      *e.Item.ExpiryDate,
			DaysLeft:        e.DaysLeft,
			Message:         alert.Message,
		})
	}
	return out, nil
}
