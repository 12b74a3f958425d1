package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación de MenuRepository sobre PostgreSQL. La receta va en una columna JSONB.
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

const menuColumns = `id, name, price, category, cost, ingredients, created_at, updated_at`

// ingredientRow forma de cada ingrediente dentro del JSONB.
type ingredientRow struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// Create persiste un plato.
func (r *MenuRepo) Create(ctx context.Context, m *entity.MenuItem) error {
	ings, err := encodeIngredients(m.Ingredients)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO menu_items (`+menuColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Name, m.Price, m.Category, m.Cost, ings, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return writeError(err, "insert menu item")
	}
	return nil
}

// GetByID obtiene un plato por ID.
func (r *MenuRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	m, err := scanMenuItem(r.q.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// List devuelve el menú ordenado por categoría y nombre.
func (r *MenuRepo) List(ctx context.Context) ([]entity.MenuItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()
	var list []entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del plato.
func (r *MenuRepo) Update(ctx context.Context, m *entity.MenuItem) error {
	ings, err := encodeIngredients(m.Ingredients)
	if err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE menu_items SET name = $2, price = $3, category = $4, cost = $5, ingredients = $6, updated_at = $7
		WHERE id = $1`,
		m.ID, m.Name, m.Price, m.Category, m.Cost, ings, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return rowsOrNotFound(cmd.RowsAffected())
}

// Delete elimina un plato por ID.
func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return rowsOrNotFound(cmd.RowsAffected())
}

func encodeIngredients(ings []entity.Ingredient) ([]byte, error) {
	rows := make([]ingredientRow, 0, len(ings))
	for _, i := range ings {
		rows = append(rows, ingredientRow{Name: i.Name, Quantity: i.Quantity, Unit: i.Unit})
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}
	return b, nil
}

func scanMenuItem(row pgx.Row) (entity.MenuItem, error) {
	var (
		m   entity.MenuItem
		raw []byte
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.Cost, &raw, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return entity.MenuItem{}, err
	}
	var rows []ingredientRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return entity.MenuItem{}, fmt.Errorf("decode ingredients: %w", err)
		}
	}
	m.Ingredients = make([]entity.Ingredient, 0, len(rows))
	for _, i := range rows {
		m.Ingredients = append(m.Ingredients, entity.Ingredient{Name: i.Name, Quantity: i.Quantity, Unit: i.Unit})
	}
	return m, nil
}
