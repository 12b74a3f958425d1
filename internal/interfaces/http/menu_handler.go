package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/menu"
)

// MenuHandler maneja /api/menu.
type MenuHandler struct {
	uc *menu.UseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *menu.UseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List GET /api/menu?category=
func (h *MenuHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list)
}

// GetByID GET /api/menu/:id
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear plato
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MenuItemRequest  true  "name, price, category, cost, ingredients"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// Update PUT /api/menu/:id
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete DELETE /api/menu/:id
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
