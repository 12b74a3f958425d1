package repository

import (
	"context"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// MenuRepository define el puerto de persistencia del menú (platos con receta).
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	// List ordena por categoría y nombre.
	List(ctx context.Context) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id string) error
}
