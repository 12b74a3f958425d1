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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, recorded_at, description, amount, category, payment_method, mpesa_code`

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	method, code, _ := entity.PaymentFields(e.Payment)
	_, err := r.q.Exec(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.RecordedAt, e.Description, e.Amount, string(e.Category), string(method), code,
	)
	if err != nil {
		return writeError(err, "insert expense")
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List devuelve todos los gastos, más recientes primero.
func (r *ExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	rows, err := r.q.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY recorded_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return rowsOrNotFound(cmd.RowsAffected())
}

func scanExpense(row pgx.Row) (entity.Expense, error) {
	var (
		e                      entity.Expense
		category, method, code string
	)
	if err := row.Scan(&e.ID, &e.RecordedAt, &e.Description, &e.Amount, &category, &method, &code); err != nil {
		return entity.Expense{}, err
	}
	e.Category = entity.ExpenseCategory(category)
	e.Payment = entity.NewPayment(entity.PaymentMethod(method), code, "")
	return e, nil
}
