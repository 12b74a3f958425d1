package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/sales"
)

// SalesHandler maneja /api/sales.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta los insumos de cada receta y devuelve las alertas de stock bajo generadas.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "items, payment_method (cash|mpesa), total opcional"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordSale(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        search   query  string  false  "texto en ID, código M-Pesa o plato"
// @Param        payment  query  string  false  "cash | mpesa"
// @Success      200  {array}   dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var q dto.SaleListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.ListSales(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list)
}

// GetByID GET /api/sales/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete DELETE /api/sales/:id. El stock descontado no se repone.
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
