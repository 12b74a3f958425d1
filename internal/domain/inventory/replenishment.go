package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// ExpiryTitle título de las alertas de vencimiento.
const ExpiryTitle = "Expiry Warning"

var idealFactor = decimal.NewFromFloat(1.5)

// ReplenishmentLine sugerencia de compra para un insumo en o bajo su umbral.
type ReplenishmentLine struct {
	Item          entity.InventoryItem
	Deficit       decimal.Decimal // umbral − stock (>= 0)
	SuggestedQty  decimal.Decimal // umbral × 1.5 − stock
	EstimatedCost decimal.Decimal // SuggestedQty × CostPerUnit
}

// ReplenishmentList insumos con stock <= umbral, de mayor a menor déficit.
// Stock ideal = umbral × 1.5, igual que el punto de reorden del reporte de reabastecimiento.
func ReplenishmentList(items []entity.InventoryItem) []ReplenishmentLine {
	out := make([]ReplenishmentLine, 0)
	for _, it := range items {
		if !it.IsLow() {
			continue
		}
		ideal := it.LowStockThreshold.Mul(idealFactor)
		qty := ideal.Sub(it.CurrentStock)
		if qty.IsNegative() {
			qty = decimal.Zero
		}
		out = append(out, ReplenishmentLine{
			Item:          it,
			Deficit:       it.LowStockThreshold.Sub(it.CurrentStock),
			SuggestedQty:  qty,
			EstimatedCost: qty.Mul(it.CostPerUnit),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deficit.GreaterThan(out[j].Deficit) })
	return out
}

// Expiring insumo que vence dentro de la ventana consultada.
type Expiring struct {
	Item     entity.InventoryItem
	DaysLeft int // 0 = vence hoy; negativo = ya vencido
}

// ExpiringSoon insumos con fecha de vencimiento antes de now+within (incluye vencidos),
// ordenados por fecha. Los días se cuentan por día calendario en la zona de now.
func ExpiringSoon(items []entity.InventoryItem, now time.Time, within time.Duration) []Expiring {
	limit := now.Add(within)
	today := dayStart(now)
	out := make([]Expiring, 0)
	for _, it := range items {
		if it.ExpiryDate == nil || it.ExpiryDate.After(limit) {
			continue
		}
		days := int(dayStart(it.ExpiryDate.In(now.Location())).Sub(today).Hours() / 24)
		out = append(out, Expiring{Item: it, DaysLeft: days})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Item.ExpiryDate.Before(*out[j].Item.ExpiryDate) })
	return out
}

// ExpiryAlert arma la alerta de advertencia para un insumo por vencer.
func ExpiryAlert(e Expiring, now time.Time) entity.Alert {
	var when string
	switch {
	case e.DaysLeft < 0:
		when = "has expired"
	case e.DaysLeft == 0:
		when = "expires today"
	case e.DaysLeft == 1:
		when = "expires tomorrow"
	default:
		when = fmt.Sprintf("expires in %d days", e.DaysLeft)
	}
	return entity.Alert{
		Type:  entity.AlertWarning,
		Title: ExpiryTitle,
		Message: fmt.Sprintf("%s %s (%s). Use soon to avoid spoilage.",
			e.Item.Name, when, e.Item.ExpiryDate.In(now.Location()).Format("Jan 2")),
		InventoryItemID: e.Item.ID,
		CreatedAt:       now,
	}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
