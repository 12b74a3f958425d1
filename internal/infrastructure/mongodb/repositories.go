package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository      = (*SaleRepo)(nil)
	_ repository.ExpenseRepository   = (*ExpenseRepo)(nil)
	_ repository.MenuRepository      = (*MenuRepo)(nil)
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
	_ repository.AlertRepository     = (*AlertRepo)(nil)
)

var newestFirst = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: 1}}

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleRepo ventas con sus líneas embebidas.
type SaleRepo struct{ c *mongo.Collection }

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	return insert(ctx, r.c, toSaleDoc(*s), "sale")
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var d saleDoc
	if err := findOne(ctx, r.c, id, &d, "sale"); err != nil {
		return nil, err
	}
	s, err := d.entity()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	docs, err := findAll[saleDoc](ctx, r.c, bson.M{}, newestFirst, "sales")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sale, 0, len(docs))
	for _, d := range docs {
		s, err := d.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.c, id, "sale")
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// ExpenseRepo gastos.
type ExpenseRepo struct{ c *mongo.Collection }

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	return insert(ctx, r.c, toExpenseDoc(*e), "expense")
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var d expenseDoc
	if err := findOne(ctx, r.c, id, &d, "expense"); err != nil {
		return nil, err
	}
	e, err := d.entity()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	docs, err := findAll[expenseDoc](ctx, r.c, bson.M{}, newestFirst, "expenses")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Expense, 0, len(docs))
	for _, d := range docs {
		e, err := d.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.c, id, "expense")
}

// ── Menú ──────────────────────────────────────────────────────────────────────

// MenuRepo platos con receta embebida.
type MenuRepo struct{ c *mongo.Collection }

func (r *MenuRepo) Create(ctx context.Context, m *entity.MenuItem) error {
	return insert(ctx, r.c, toMenuItemDoc(*m), "menu item")
}

func (r *MenuRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	var d menuItemDoc
	if err := findOne(ctx, r.c, id, &d, "menu item"); err != nil {
		return nil, err
	}
	m, err := d.entity()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepo) List(ctx context.Context) ([]entity.MenuItem, error) {
	docs, err := findAll[menuItemDoc](ctx, r.c, bson.M{}, bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}, "menu")
	if err != nil {
		return nil, err
	}
	out := make([]entity.MenuItem, 0, len(docs))
	for _, d := range docs {
		m, err := d.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MenuRepo) Update(ctx context.Context, m *entity.MenuItem) error {
	return replaceOne(ctx, r.c, m.ID, toMenuItemDoc(*m), "menu item")
}

func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.c, id, "menu item")
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryRepo insumos en bodega.
type InventoryRepo struct{ c *mongo.Collection }

func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	return insert(ctx, r.c, toInventoryDoc(*it), "inventory item")
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var d inventoryItemDoc
	if err := findOne(ctx, r.c, id, &d, "inventory item"); err != nil {
		return nil, err
	}
	it, err := d.entity()
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	docs, err := findAll[inventoryItemDoc](ctx, r.c, bson.M{}, bson.D{{Key: "name", Value: 1}}, "inventory")
	if err != nil {
		return nil, err
	}
	out := make([]entity.InventoryItem, 0, len(docs))
	for _, d := range docs {
		it, err := d.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// ListForUpdate sin bloqueo en este backend: equivale a List.
func (r *InventoryRepo) ListForUpdate(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.List(ctx)
}

func (r *InventoryRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	return replaceOne(ctx, r.c, it.ID, toInventoryDoc(*it), "inventory item")
}

// ── Alertas ───────────────────────────────────────────────────────────────────

// AlertRepo alertas operativas.
type AlertRepo struct{ c *mongo.Collection }

func (r *AlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	return insert(ctx, r.c, toAlertDoc(*a), "alert")
}

func (r *AlertRepo) List(ctx context.Context, onlyPending bool) ([]entity.Alert, error) {
	filter := bson.M{}
	if onlyPending {
		filter["acknowledged"] = false
	}
	docs, err := findAll[alertDoc](ctx, r.c, filter, newestFirst, "alerts")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Alert, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *AlertRepo) Acknowledge(ctx context.Context, id string) error {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"acknowledged": true}})
	if err != nil {
		return fmt.Errorf("mongo: acknowledge alert: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
