// Package inventory contiene los servicios de dominio de bodega: descuento de insumos por
// venta, alertas de stock bajo, vencimientos y lista de reabastecimiento. Funciones puras.
package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/pkg/textnorm"
)

// LowStockTitle título de las alertas generadas al cruzar el umbral.
const LowStockTitle = "Low Stock Alert"

// Deduction un descuento aplicado sobre un insumo.
type Deduction struct {
	InventoryItemID string
	Name            string
	Ingredient      string
	MenuItemID      string
	Quantity        decimal.Decimal // cantidad solicitada (receta × unidades vendidas)
	Before          decimal.Decimal
	After           decimal.Decimal // ya truncado en cero
}

// DeductionResult resultado de ApplySale.
type DeductionResult struct {
	Updated    []entity.InventoryItem // solo los insumos modificados, en el orden de stock
	Alerts     []entity.Alert         // sin ID; lo asigna quien persiste
	Deductions []Deduction
}

// ApplySale descuenta del stock los ingredientes de cada línea de la venta.
//
//   - Línea cuyo MenuItemID no está en el menú: se omite.
//   - Ingrediente ↔ insumo por nombre sin distinción de mayúsculas; si varios insumos comparten
//     nombre, se descuenta de todos.
//   - Descuento secuencial: un segundo ingrediente sobre el mismo insumo ve el valor ya descontado.
//   - Alerta crítica si nuevo <= umbral y anterior > umbral. El stock nunca queda negativo y el
//     mensaje informa el valor truncado.
//
// stock no se modifica; se trabaja sobre una copia.
func ApplySale(sale entity.Sale, menu []entity.MenuItem, stock []entity.InventoryItem, now time.Time) DeductionResult {
	byID := make(map[string]entity.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	items := make([]entity.InventoryItem, len(stock))
	copy(items, stock)
	byName := make(map[string][]int, len(items))
	for i, it := range items {
		key := textnorm.Fold(it.Name)
		byName[key] = append(byName[key], i)
	}

	changed := make([]bool, len(items))
	res := DeductionResult{Alerts: []entity.Alert{}, Deductions: []Deduction{}}

	for _, line := range sale.Items {
		m, ok := byID[line.MenuItemID]
		if !ok {
			continue
		}
		units := decimal.NewFromInt(int64(line.Quantity))
		for _, ing := range m.Ingredients {
			need := ing.Quantity.Mul(units)
			for _, idx := range byName[textnorm.Fold(ing.Name)] {
				it := &items[idx]
				before := it.CurrentStock
				after := before.Sub(need)

				if after.LessThanOrEqual(it.LowStockThreshold) && before.GreaterThan(it.LowStockThreshold) {
					res.Alerts = append(res.Alerts, lowStockAlert(*it, decimal.Max(after, decimal.Zero), now))
				}
				if after.IsNegative() {
					after = decimal.Zero
				}

				it.CurrentStock = after
				it.UpdatedAt = now
				changed[idx] = true
				res.Deductions = append(res.Deductions, Deduction{
					InventoryItemID: it.ID,
					Name:            it.Name,
					Ingredient:      ing.Name,
					MenuItemID:      m.ID,
					Quantity:        need,
					Before:          before,
					After:           after,
				})
			}
		}
	}

	for i, it := range items {
		if changed[i] {
			res.Updated = append(res.Updated, it)
		}
	}
	return res
}

func lowStockAlert(it entity.InventoryItem, remaining decimal.Decimal, now time.Time) entity.Alert {
	return entity.Alert{
		Type:  entity.AlertCritical,
		Title: LowStockTitle,
		Message: fmt.Sprintf("%s is running low! Only %s %s remaining (threshold: %s)",
			it.Name, remaining.String(), it.Unit, it.LowStockThreshold.String()),
		InventoryItemID: it.ID,
		CreatedAt:       now,
	}
}
