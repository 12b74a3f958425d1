// Package excel genera el reporte semanal en XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tacohut-api/internal/application/report"
)

// Hojas del libro.
const (
	SheetSummary  = "Resumen"
	SheetDays     = "Dias"
	SheetItems    = "Productos"
	SheetExpenses = "Gastos"
)

// ReportRenderer implementa report.Renderer con excelize.
type ReportRenderer struct{}

var _ report.Renderer = (*ReportRenderer)(nil)

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// ContentType MIME del libro.
func (ReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension extensión del archivo.
func (ReportRenderer) Extension() string { return "xlsx" }

// Render arma el libro con una hoja por sección y devuelve sus bytes.
func (r *ReportRenderer) Render(_ context.Context, rep *report.WeeklyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("excel: hoja %s: %w", SheetSummary, err)
	}
	for _, name := range []string{SheetDays, SheetItems, SheetExpenses} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel: hoja %s: %w", name, err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	w := &sheetWriter{f: f, header: bold}
	w.rows(SheetSummary, nil, summaryRows(rep))
	w.rows(SheetDays,
		[]any{"Fecha", "Día", "Ventas", "Gastos", "Utilidad", "N° ventas", "M-Pesa", "Efectivo"},
		dayRows(rep))
	w.rows(SheetItems, []any{"#", "Plato", "Cantidad", "Ingreso"}, itemRows(rep))
	w.rows(SheetExpenses, []any{"Categoría", "N° gastos", "Monto"}, expenseRows(rep))
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no repetir el chequeo en cada fila.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) rows(sheet string, header []any, rows [][]any) {
	if w.err != nil {
		return
	}
	start := 1
	if header != nil {
		if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
			w.err = fmt.Errorf("excel: %s encabezado: %w", sheet, err)
			return
		}
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := w.f.SetCellStyle(sheet, "A1", last, w.header); err != nil {
			w.err = fmt.Errorf("excel: %s estilo: %w", sheet, err)
			return
		}
		start = 2
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, start+i)
		if err := w.f.SetSheetRow(sheet, cell, &r); err != nil {
			w.err = fmt.Errorf("excel: %s fila %d: %w", sheet, start+i, err)
			return
		}
	}
}

func summaryRows(rep *report.WeeklyReport) [][]any {
	weekday := rep.BestWeekday.Day
	if !rep.BestWeekday.Found {
		weekday = ""
	}
	rows := [][]any{
		{"Negocio", rep.Business},
		{"Semana", rep.Week.WeekStart + " a " + rep.Week.WeekEnd},
		{"Generado", rep.GeneratedAt.Format("2006-01-02 15:04")},
		{"Moneda", rep.Currency},
		{"Utilidad semanal", rep.Week.TotalWeeklyProfit.InexactFloat64()},
		{"Promedio diario", rep.Week.AverageDailyProfit.Round(2).InexactFloat64()},
		{"Mejor día (semana)", rep.Week.MostProductiveDay},
		{"Mejor día (histórico)", weekday},
		{"Utilidad histórica", rep.TotalProfit.InexactFloat64()},
		{"Ventas M-Pesa (%)", rep.Payments.MobileMoneyShare()},
	}
	for _, o := range rep.Insights.Observations {
		rows = append(rows, []any{"Observación", o})
	}
	return rows
}

func dayRows(rep *report.WeeklyReport) [][]any {
	out := make([][]any, 0, len(rep.Week.Days))
	for _, d := range rep.Week.Days {
		out = append(out, []any{
			d.Date, d.DayOfWeek,
			d.TotalSales.InexactFloat64(), d.TotalExpenses.InexactFloat64(), d.NetProfit.InexactFloat64(),
			d.SalesCount, d.MobileMoneySales.InexactFloat64(), d.CashSales.InexactFloat64(),
		})
	}
	return out
}

func itemRows(rep *report.WeeklyReport) [][]any {
	out := make([][]any, 0, len(rep.Week.BestPerformingItems))
	for i, it := range rep.Week.BestPerformingItems {
		out = append(out, []any{i + 1, it.Name, it.Quantity, it.Revenue.InexactFloat64()})
	}
	return out
}

func expenseRows(rep *report.WeeklyReport) [][]any {
	out := make([][]any, 0, len(rep.ExpensesByCategory))
	for _, c := range rep.ExpensesByCategory {
		out = append(out, []any{c.Label, c.Count, c.Amount.InexactFloat64()})
	}
	return out
}
