package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/application/inventory"
)

const defaultExpiryDays = 3

// InventoryHandler maneja /api/inventory y /api/alerts.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /api/inventory?low=true
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.QueryBool("low"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list)
}

// Create POST /api/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// Restock godoc
// @Summary      Reponer insumo
// @Description  Fija el stock (current_stock) o suma una entrada (quantity, unit_cost opcional
//
//	para recalcular el costo promedio ponderado).
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del insumo"
// @Param        body  body  dto.RestockRequest   true  "current_stock o quantity"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/stock [put]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Restock(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Insumos en o bajo su umbral con la cantidad sugerida de pedido, los más urgentes primero.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.uc.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}

// Expiring GET /api/inventory/expiring?days=3
func (h *InventoryHandler) Expiring(c *fiber.Ctx) error {
	list, err := h.uc.ExpiringSoon(c.UserContext(), c.QueryInt("days", defaultExpiryDays))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list)
}

// ListAlerts GET /api/alerts?pending=true
func (h *InventoryHandler) ListAlerts(c *fiber.Ctx) error {
	list, err := h.uc.ListAlerts(c.UserContext(), c.QueryBool("pending"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list)
}

// AcknowledgeAlert POST /api/alerts/:id/ack
func (h *InventoryHandler) AcknowledgeAlert(c *fiber.Ctx) error {
	if err := h.uc.AcknowledgeAlert(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"id": c.Params("id"), "acknowledged": true})
}
