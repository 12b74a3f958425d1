package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
)

// DashboardHandler maneja el tablero y los reportes JSON de ventas y gastos.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	now func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, now: time.Now}
}

// GetDashboard devuelve los KPIs del día, la utilidad histórica y las últimas ventas.
// GET /api/dashboard
//
// No requiere parámetros; el día se calcula en el servidor con la zona del negocio.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), h.now())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// SalesReport GET /api/reports/sales
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// ExpenseReport GET /api/reports/expenses
func (h *DashboardHandler) ExpenseReport(c *fiber.Ctx) error {
	out, err := h.uc.ExpenseReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
