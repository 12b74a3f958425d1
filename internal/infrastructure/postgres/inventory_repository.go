package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
	_ repository.AlertRepository     = (*AlertRepo)(nil)
)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, name, current_stock, unit, low_stock_threshold, cost_per_unit, supplier,
	last_restocked, expiry_date, updated_at`

// Create persiste un insumo.
func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO inventory_items (`+inventoryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		it.ID, it.Name, it.CurrentStock, it.Unit, it.LowStockThreshold, it.CostPerUnit, it.Supplier,
		it.LastRestocked, it.ExpiryDate, it.UpdatedAt,
	)
	if err != nil {
		return writeError(err, "insert inventory item")
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	it, err := scanInventoryItem(r.q.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// List devuelve los insumos ordenados por nombre.
func (r *InventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name`)
}

// ListForUpdate igual que List pero bloquea las filas (SELECT FOR UPDATE). Usar dentro de RunSale.
func (r *InventoryRepo) ListForUpdate(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name FOR UPDATE`)
}

// Update guarda stock, costo, vencimiento y demás datos del insumo.
func (r *InventoryRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory_items SET name = $2, current_stock = $3, unit = $4, low_stock_threshold = $5,
			cost_per_unit = $6, supplier = $7, last_restocked = $8, expiry_date = $9, updated_at = $10
		WHERE id = $1`,
		it.ID, it.Name, it.CurrentStock, it.Unit, it.LowStockThreshold, it.CostPerUnit, it.Supplier,
		it.LastRestocked, it.ExpiryDate, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return rowsOrNotFound(cmd.RowsAffected())
}

func (r *InventoryRepo) list(ctx context.Context, query string) ([]entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanInventoryItem(row pgx.Row) (entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.Name, &it.CurrentStock, &it.Unit, &it.LowStockThreshold, &it.CostPerUnit,
		&it.Supplier, &it.LastRestocked, &it.ExpiryDate, &it.UpdatedAt)
	return it, err
}

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO alerts (id, type, title, message, inventory_item_id, created_at, acknowledged)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, string(a.Type), a.Title, a.Message, a.InventoryItemID, a.CreatedAt, a.Acknowledged,
	)
	if err != nil {
		return writeError(err, "insert alert")
	}
	return nil
}

// List devuelve las alertas más recientes primero.
func (r *AlertRepo) List(ctx context.Context, onlyPending bool) ([]entity.Alert, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, type, title, message, inventory_item_id, created_at, acknowledged
		FROM alerts WHERE NOT $1 OR NOT acknowledged
		ORDER BY created_at DESC, id`, onlyPending)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []entity.Alert
	for rows.Next() {
		var (
			a   entity.Alert
			typ string
		)
		if err := rows.Scan(&a.ID, &typ, &a.Title, &a.Message, &a.InventoryItemID, &a.CreatedAt, &a.Acknowledged); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.Type = entity.AlertType(typ)
		list = append(list, a)
	}
	return list, rows.Err()
}

// Acknowledge marca la alerta como vista.
func (r *AlertRepo) Acknowledge(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE alerts SET acknowledged = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	return rowsOrNotFound(cmd.RowsAffected())
}
