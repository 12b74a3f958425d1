// Package report arma el reporte semanal y lo entrega en el formato pedido.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

// UseCase genera reportes semanales a partir del log de transacciones.
type UseCase struct {
	dashboard *appanalytics.DashboardUseCase
	renderers map[string]Renderer
	business  string
	currency  string
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso con los renderers disponibles, indexados por extensión.
func NewUseCase(
	dashboard *appanalytics.DashboardUseCase,
	business, currency string,
	log *logger.Logger,
	renderers ...Renderer,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	byExt := make(map[string]Renderer, len(renderers))
	for _, r := range renderers {
		byExt[r.Extension()] = r
	}
	return &UseCase{
		dashboard: dashboard,
		renderers: byExt,
		business:  business,
		currency:  currency,
		log:       log.Component("report"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Build calcula el reporte de la semana que contiene date.
func (uc *UseCase) Build(ctx context.Context, date time.Time) (*WeeklyReport, error) {
	sales, expenses, err := uc.dashboard.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	loc := uc.dashboard.Location()
	week := analytics.ComputeWeeklyAnalysis(sales, expenses, date.In(loc))
	payments := analytics.ComputePaymentBreakdown(sales)
	return &WeeklyReport{
		Business:           uc.business,
		Currency:           uc.currency,
		GeneratedAt:        uc.now().In(loc),
		Week:               week,
		BestWeekday:        analytics.MostProductiveWeekday(sales, loc),
		Payments:           payments,
		ExpensesByCategory: analytics.ExpensesByCategory(expenses),
		TotalProfit:        analytics.TotalProfit(sales, expenses),
		Insights:           analytics.Insights(week, payments, uc.currency),
	}, nil
}

// Render arma el reporte y lo convierte al formato pedido ("pdf" o "xlsx").
func (uc *UseCase) Render(ctx context.Context, date time.Time, format string) (*Document, error) {
	r, err := uc.renderer(format)
	if err != nil {
		return nil, err
	}
	rep, err := uc.Build(ctx, date)
	if err != nil {
		return nil, err
	}
	return uc.encode(ctx, rep, r)
}

// Encode convierte un reporte ya calculado al formato pedido.
func (uc *UseCase) Encode(ctx context.Context, rep *WeeklyReport, format string) (*Document, error) {
	r, err := uc.renderer(format)
	if err != nil {
		return nil, err
	}
	return uc.encode(ctx, rep, r)
}

func (uc *UseCase) renderer(format string) (Renderer, error) {
	format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, domain.Invalid("format", "formato de reporte no soportado")
	}
	return r, nil
}

func (uc *UseCase) encode(ctx context.Context, rep *WeeklyReport, r Renderer) (*Document, error) {
	body, err := r.Render(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("report: render %s: %w", r.Extension(), err)
	}
	uc.log.Info().Str("week_start", rep.Week.WeekStart).Str("format", r.Extension()).Int("bytes", len(body)).Msg("reporte generado")
	return &Document{
		Filename:    fmt.Sprintf("weekly-report-%s.%s", rep.Week.WeekStart, r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}
