package excel_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tacohut-api/internal/application/report"
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/excel"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

func TestRender_LibroConCuatroHojas(t *testing.T) {
	ds := seed.Demo()
	date := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)
	week := analytics.ComputeWeeklyAnalysis(ds.Sales, ds.Expenses, date)
	rep := &report.WeeklyReport{
		Business:           "Taco Hut",
		Currency:           "KES",
		GeneratedAt:        date,
		Week:               week,
		BestWeekday:        analytics.MostProductiveWeekday(ds.Sales, time.UTC),
		Payments:           analytics.ComputePaymentBreakdown(ds.Sales),
		ExpensesByCategory: analytics.ExpensesByCategory(ds.Expenses),
		TotalProfit:        analytics.TotalProfit(ds.Sales, ds.Expenses),
	}

	body, err := excel.NewReportRenderer().Render(context.Background(), rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{excel.SheetSummary, excel.SheetDays, excel.SheetItems, excel.SheetExpenses}, f.GetSheetList())

	days, err := f.GetRows(excel.SheetDays)
	require.NoError(t, err)
	require.Len(t, days, 8, "encabezado + 7 días")
	assert.Equal(t, "Fecha", days[0][0])
	assert.Equal(t, "2024-01-15", days[1][0])
	assert.Equal(t, "Monday", days[1][1])

	items, err := f.GetRows(excel.SheetItems)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Carne Asada Taco", items[1][1])

	business, err := f.GetCellValue(excel.SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Taco Hut", business)
}
