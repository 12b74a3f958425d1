package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
)

// WeeklyReport datos del reporte semanal exportable, ya calculados por el motor.
type WeeklyReport struct {
	Business           string
	Currency           string
	GeneratedAt        time.Time
	Week               analytics.WeeklyAnalysis
	BestWeekday        analytics.WeekdayProfit // variante histórica por día de la semana
	Payments           analytics.PaymentBreakdown
	ExpensesByCategory []analytics.CategoryTotal
	TotalProfit        decimal.Decimal // todo el historial
	Insights           analytics.InsightSet
}

// Renderer convierte un WeeklyReport en un documento (PDF, XLSX).
type Renderer interface {
	Render(ctx context.Context, r *WeeklyReport) ([]byte, error)
	ContentType() string
	Extension() string // sin punto: "pdf", "xlsx"
}

// Document documento listo para descargar o escribir a disco.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}
