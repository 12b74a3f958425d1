package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
	"github.com/jhoicas/tacohut-api/internal/application/report"
)

// ReportHandler descarga el reporte semanal en PDF o XLSX.
type ReportHandler struct {
	uc        *report.UseCase
	dashboard *appanalytics.DashboardUseCase
}

// NewReportHandler construye el handler. dashboard se usa solo para interpretar ?date=.
func NewReportHandler(uc *report.UseCase, dashboard *appanalytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, dashboard: dashboard}
}

// WeeklyPDF godoc
// @Summary      Reporte semanal en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        date  query  string  false  "cualquier día de la semana, YYYY-MM-DD"
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/weekly.pdf [get]
func (h *ReportHandler) WeeklyPDF(c *fiber.Ctx) error {
	return h.download(c, "pdf")
}

// WeeklyXLSX GET /api/reports/weekly.xlsx?date=
func (h *ReportHandler) WeeklyXLSX(c *fiber.Ctx) error {
	return h.download(c, "xlsx")
}

func (h *ReportHandler) download(c *fiber.Ctx, format string) error {
	date, err := h.dashboard.ParseDate(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.uc.Render(c.UserContext(), date, format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Send(doc.Body)
}
