package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
)

// AnalyticsHandler maneja /api/analytics. Las fechas (?date=YYYY-MM-DD) se interpretan en la
// zona horaria del negocio; sin fecha se usa hoy.
type AnalyticsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Daily godoc
// @Summary      Resumen diario
// @Tags         analytics
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.DailySummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics/daily [get]
func (h *AnalyticsHandler) Daily(c *fiber.Ctx) error {
	date, err := h.uc.ParseDate(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.DailySummary(c.UserContext(), date)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Weekly godoc
// @Summary      Análisis semanal (lunes a domingo)
// @Tags         analytics
// @Produce      json
// @Param        date  query  string  false  "cualquier día de la semana, YYYY-MM-DD"
// @Success      200  {object}  dto.WeeklyAnalysisDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics/weekly [get]
func (h *AnalyticsHandler) Weekly(c *fiber.Ctx) error {
	date, err := h.uc.ParseDate(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.WeeklyAnalysis(c.UserContext(), date)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Profit GET /api/analytics/profit: utilidad total del historial.
func (h *AnalyticsHandler) Profit(c *fiber.Ctx) error {
	out, err := h.uc.TotalProfit(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// MostProductiveDay GET /api/analytics/most-productive-day: día de la semana con mayor
// utilidad por plato acumulada en todo el historial.
func (h *AnalyticsHandler) MostProductiveDay(c *fiber.Ctx) error {
	out, err := h.uc.MostProductiveWeekday(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Overview GET /api/analytics/overview?date=
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	date, err := h.uc.ParseDate(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Overview(c.UserContext(), date)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
