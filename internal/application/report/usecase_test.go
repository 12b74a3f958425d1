package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
	"github.com/jhoicas/tacohut-api/internal/application/report"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/memory"
)

// textRenderer renderer mínimo que escribe la semana y el día más productivo.
type textRenderer struct{ got *report.WeeklyReport }

func (r *textRenderer) Render(_ context.Context, rep *report.WeeklyReport) ([]byte, error) {
	r.got = rep
	return []byte(rep.Week.WeekStart + " " + rep.Week.MostProductiveDay), nil
}
func (r *textRenderer) ContentType() string { return "text/plain" }
func (r *textRenderer) Extension() string   { return "txt" }

func newUseCase(r report.Renderer) *report.UseCase {
	store := memory.NewSeeded()
	dash := appanalytics.NewDashboardUseCase(store, store.Menu(), time.UTC, "KES", nil)
	return report.NewUseCase(dash, "Taco Hut", "KES", nil, r).
		WithClock(func() time.Time { return time.Date(2024, time.January, 19, 9, 0, 0, 0, time.UTC) })
}

func TestBuild_ReporteDeLaSemana(t *testing.T) {
	uc := newUseCase(&textRenderer{})

	rep, err := uc.Build(context.Background(), time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Taco Hut", rep.Business)
	assert.Equal(t, "2024-01-15", rep.Week.WeekStart)
	assert.Equal(t, "Thursday", rep.Week.MostProductiveDay)
	assert.Equal(t, "Monday", rep.BestWeekday.Day)
	assert.Len(t, rep.ExpensesByCategory, 2)
	assert.Len(t, rep.Insights.Observations, 4)
}

func TestRender_UsaElRendererPorExtension(t *testing.T) {
	r := &textRenderer{}
	uc := newUseCase(r)

	doc, err := uc.Render(context.Background(), time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC), ".TXT")
	require.NoError(t, err)
	assert.Equal(t, "weekly-report-2024-01-15.txt", doc.Filename)
	assert.Equal(t, "text/plain", doc.ContentType)
	assert.Equal(t, "2024-01-15 Thursday", string(doc.Body))
	require.NotNil(t, r.got)
}

func TestRender_FormatoDesconocido(t *testing.T) {
	uc := newUseCase(&textRenderer{})

	_, err := uc.Render(context.Background(), time.Now(), "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEncode_ReutilizaReporteCalculado(t *testing.T) {
	uc := newUseCase(&textRenderer{})
	ctx := context.Background()

	rep, err := uc.Build(ctx, time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	doc, err := uc.Encode(ctx, rep, "txt")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 Thursday", string(doc.Body))

	_, err = uc.Encode(ctx, rep, "pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
