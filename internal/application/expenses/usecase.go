// Package expenses contiene los casos de uso de gastos del negocio.
package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

// UseCase registra, lista y elimina gastos.
type UseCase struct {
	repo repository.ExpenseRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ExpenseRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, log: log.Component("expenses"), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// RecordExpense valida y persiste un gasto. Monto >= 0, categoría conocida, método cash|mpesa.
func (uc *UseCase) RecordExpense(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.Invalid("description", "obligatoria")
	}
	if in.Amount.IsNegative() {
		return nil, domain.Invalid("amount", "no puede ser negativo")
	}
	cat := entity.ExpenseCategory(strings.ToLower(strings.TrimSpace(in.Category)))
	if !cat.Valid() {
		return nil, domain.Invalid("category", "debe ser ingredients, supplies, equipment, utilities u other")
	}
	method, ok := entity.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, domain.Invalid("payment_method", "debe ser cash o mpesa")
	}

	e := entity.Expense{
		ID:          uuid.New().String(),
		RecordedAt:  uc.now(),
		Description: desc,
		Amount:      in.Amount,
		Category:    cat,
		Payment:     entity.NewPayment(method, in.MpesaCode, ""),
	}
	if in.RecordedAt != nil && !in.RecordedAt.IsZero() {
		e.RecordedAt = *in.RecordedAt
	}
	if err := uc.repo.Create(ctx, &e); err != nil {
		return nil, fmt.Errorf("expenses: registrar: %w", err)
	}
	uc.log.Info().Str("expense_id", e.ID).Str("amount", e.Amount.String()).Str("category", string(cat)).Msg("gasto registrado")
	out := dto.FromExpense(e)
	return &out, nil
}

// ListExpenses devuelve todos los gastos, más recientes primero. category vacía = todas.
func (uc *UseCase) ListExpenses(ctx context.Context, category string) ([]dto.ExpenseResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("expenses: listar: %w", err)
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return dto.FromExpenses(all), nil
	}
	if !entity.ExpenseCategory(category).Valid() {
		return nil, domain.Invalid("category", "categoría desconocida")
	}
	filtered := make([]entity.Expense, 0, len(all))
	for _, e := range all {
		if string(e.Category) == category {
			filtered = append(filtered, e)
		}
	}
	return dto.FromExpenses(filtered), nil
}

// GetExpense obtiene un gasto por ID.
func (uc *UseCase) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromExpense(*e)
	return &out, nil
}

// DeleteExpense elimina un gasto. domain.ErrNotFound si no existe.
func (uc *UseCase) DeleteExpense(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("expense_id", id).Msg("gasto eliminado")
	return nil
}

// CategoryTotals totales por categoría en orden canónico.
func (uc *UseCase) CategoryTotals(ctx context.Context) ([]dto.CategoryTotalDTO, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("expenses: totales: %w", err)
	}
	return dto.FromCategoryTotals(analytics.ExpensesByCategory(all)), nil
}
