package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/application/report"
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

func TestRender_GeneraPDF(t *testing.T) {
	ds := seed.Demo()
	date := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)
	week := analytics.ComputeWeeklyAnalysis(ds.Sales, ds.Expenses, date)
	payments := analytics.ComputePaymentBreakdown(ds.Sales)
	rep := &report.WeeklyReport{
		Business:           "Taco Hut",
		Currency:           "KES",
		GeneratedAt:        date,
		Week:               week,
		BestWeekday:        analytics.MostProductiveWeekday(ds.Sales, time.UTC),
		Payments:           payments,
		ExpensesByCategory: analytics.ExpensesByCategory(ds.Expenses),
		TotalProfit:        analytics.TotalProfit(ds.Sales, ds.Expenses),
		Insights:           analytics.Insights(week, payments, "KES"),
	}

	r := pdf.NewReportRenderer()
	body, err := r.Render(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	assert.Equal(t, "pdf", r.Extension())
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestRender_SemanaVacia(t *testing.T) {
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	rep := &report.WeeklyReport{
		Business: "Taco Hut", Currency: "KES", GeneratedAt: date,
		Week: analytics.ComputeWeeklyAnalysis(nil, nil, date),
	}

	body, err := pdf.NewReportRenderer().Render(context.Background(), rep)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
