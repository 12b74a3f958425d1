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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (tablas sales y sale_items).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, recorded_at, total, payment_method, mpesa_code, customer_phone`

// Create inserta la cabecera y sus líneas. Fuera de tx, usar RunSale para que sea atómico.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	method, code, phone := entity.PaymentFields(sale.Payment)
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		sale.ID, sale.RecordedAt, sale.Total, string(method), code, phone,
	)
	if err != nil {
		return writeError(err, "insert sale")
	}
	for i, it := range sale.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, line_no, menu_item_id, name, quantity, unit_price, unit_cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			sale.ID, i, it.MenuItemID, it.Name, it.Quantity, it.UnitPrice, it.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert sale item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	row := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.items(ctx, `WHERE sale_id = $1`, id)
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return &s, nil
}

// List devuelve todas las ventas, más recientes primero. Dos consultas: cabeceras y líneas.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY recorded_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.items(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
	}
	return list, nil
}

// Delete elimina la venta; las líneas caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return rowsOrNotFound(cmd.RowsAffected())
}

// items líneas agrupadas por sale_id, en orden de línea.
func (r *SaleRepo) items(ctx context.Context, where string, args ...any) (map[string][]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT sale_id, menu_item_id, name, quantity, unit_price, unit_cost
		FROM sale_items `+where+` ORDER BY sale_id, line_no`, args...)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.SaleItem)
	for rows.Next() {
		var (
			saleID string
			it     entity.SaleItem
		)
		if err := rows.Scan(&saleID, &it.MenuItemID, &it.Name, &it.Quantity, &it.UnitPrice, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[saleID] = append(out[saleID], it)
	}
	return out, rows.Err()
}

func scanSale(row pgx.Row) (entity.Sale, error) {
	var (
		s                   entity.Sale
		method, code, phone string
	)
	if err := row.Scan(&s.ID, &s.RecordedAt, &s.Total, &method, &code, &phone); err != nil {
		return entity.Sale{}, err
	}
	s.Payment = entity.NewPayment(entity.PaymentMethod(method), code, phone)
	return s, nil
}
