// Package menu contiene los casos de uso del menú (platos con receta).
package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
)

// UseCase CRUD del menú.
type UseCase struct {
	repo repository.MenuRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MenuRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Create agrega un plato al menú.
func (uc *UseCase) Create(ctx context.Context, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	m, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	m.ID = uuid.New().String()
	m.CreatedAt, m.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, &m); err != nil {
		return nil, fmt.Errorf("menu: crear: %w", err)
	}
	out := dto.FromMenuItem(m)
	return &out, nil
}

// GetByID obtiene un plato.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.MenuItemResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromMenuItem(*m)
	return &out, nil
}

// List devuelve el menú completo. category vacía = todas.
func (uc *UseCase) List(ctx context.Context, category string) ([]dto.MenuItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu: listar: %w", err)
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, m := range items {
		if category != "" && !strings.EqualFold(m.Category, category) {
			continue
		}
		out = append(out, dto.FromMenuItem(m))
	}
	return out, nil
}

// Update reemplaza nombre, precio, categoría, costo y receta. Las ventas pasadas conservan
// el precio y costo con que se registraron.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = current.ID
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, &m); err != nil {
		return nil, fmt.Errorf("menu: actualizar: %w", err)
	}
	out := dto.FromMenuItem(m)
	return &out, nil
}

// Delete elimina un plato. Las ventas que lo referencian no cambian.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func fromRequest(in dto.MenuItemRequest) (entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.MenuItem{}, domain.Invalid("name", "obligatorio")
	}
	if in.Price.IsNegative() {
		return entity.MenuItem{}, domain.Invalid("price", "no puede ser negativo")
	}
	if in.Cost.IsNegative() {
		return entity.MenuItem{}, domain.Invalid("cost", "no puede ser negativo")
	}
	ings := make([]entity.Ingredient, 0, len(in.Ingredients))
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return entity.MenuItem{}, domain.Invalid(fmt.Sprintf("ingredients[%d].name", i), "obligatorio")
		}
		if !ing.Quantity.IsPositive() {
			return entity.MenuItem{}, domain.Invalid(fmt.Sprintf("ingredients[%d].quantity", i), "debe ser mayor que cero")
		}
		ings = append(ings, entity.Ingredient{Name: strings.TrimSpace(ing.Name), Quantity: ing.Quantity, Unit: strings.TrimSpace(ing.Unit)})
	}
	return entity.MenuItem{
		Name:        name,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Cost:        in.Cost,
		Ingredients: ings,
	}, nil
}
