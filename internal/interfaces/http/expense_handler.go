package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/expenses"
)

// ExpenseHandler maneja /api/expenses.
type ExpenseHandler struct {
	uc *expenses.UseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.UseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "description, amount, category, payment_method"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordExpense(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// List GET /api/expenses?category=
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListExpenses(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list)
}

// GetByID GET /api/expenses/:id
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetExpense(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteExpense(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Categories GET /api/expenses/categories: total y cantidad por categoría.
func (h *ExpenseHandler) Categories(c *fiber.Ctx) error {
	totals, err := h.uc.CategoryTotals(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, totals)
}
