package menu_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/menu"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/memory"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

func TestCreate_CalculaMargen(t *testing.T) {
	uc := menu.NewUseCase(memory.New().Menu())

	out, err := uc.Create(context.Background(), dto.MenuItemRequest{
		Name: "Fish Taco", Price: decimal.NewFromInt(300), Category: "Tacos", Cost: decimal.NewFromInt(170),
		Ingredients: []dto.IngredientDTO{{Name: "Fish", Quantity: decimal.NewFromInt(90), Unit: "g"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, decimal.NewFromInt(130).Equal(out.Margin))
	require.Len(t, out.Ingredients, 1)
}

func TestCreate_Validaciones(t *testing.T) {
	uc := menu.NewUseCase(memory.New().Menu())
	ctx := context.Background()

	cases := []struct {
		name  string
		in    dto.MenuItemRequest
		field string
	}{
		{"sin nombre", dto.MenuItemRequest{Price: decimal.NewFromInt(1)}, "name"},
		{"precio negativo", dto.MenuItemRequest{Name: "X", Price: decimal.NewFromInt(-1)}, "price"},
		{"costo negativo", dto.MenuItemRequest{Name: "X", Cost: decimal.NewFromInt(-1)}, "cost"},
		{"ingrediente sin cantidad", dto.MenuItemRequest{Name: "X", Ingredients: []dto.IngredientDTO{{Name: "Beef"}}}, "ingredients[0].quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestList_FiltraPorCategoria(t *testing.T) {
	uc := menu.NewUseCase(memory.NewSeeded().Menu())

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	tacos, err := uc.List(context.Background(), "tacos")
	require.NoError(t, err)
	assert.Len(t, tacos, 2)
}

func TestUpdateYDelete(t *testing.T) {
	uc := menu.NewUseCase(memory.NewSeeded().Menu())
	ctx := context.Background()
	id := seed.ID("menu", "4")

	before, err := uc.GetByID(ctx, id)
	require.NoError(t, err)

	out, err := uc.Update(ctx, id, dto.MenuItemRequest{Name: "Beef Burrito XL", Price: decimal.NewFromInt(420), Category: "Burritos", Cost: decimal.NewFromInt(200)})
	require.NoError(t, err)
	assert.Equal(t, "Beef Burrito XL", out.Name)
	assert.Equal(t, before.CreatedAt, out.CreatedAt)

	_, err = uc.Update(ctx, "nope", dto.MenuItemRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, id))
	_, err = uc.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
