// Package pdf genera el reporte semanal en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + semana     │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: utilidad semanal / promedio diario / días productivos │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Día | Ventas | Gastos | Utilidad | N° ventas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MEJORES PLATOS        │  GASTOS POR CATEGORÍA               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/application/report"
	"github.com/jhoicas/tacohut-api/pkg/textnorm"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 196, Green: 69, Blue: 54}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 34, Green: 139, Blue: 34}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReportRenderer implementa report.Renderer usando Maroto v2.
type ReportRenderer struct{}

var _ report.Renderer = (*ReportRenderer)(nil)

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// ContentType MIME del documento.
func (ReportRenderer) ContentType() string { return "application/pdf" }

// Extension extensión del archivo.
func (ReportRenderer) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) Render(_ context.Context, rep *report.WeeklyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Weekly Report "+rep.Week.WeekStart, true).
		WithAuthor(rep.Business, true).
		Build()

	m := maroto.New(cfg)
	money := func(d decimal.Decimal) string { return textnorm.Money(rep.Currency, d) }

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(rep, money))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("DESEMPEÑO DIARIO"))
	m.AddRows(tableHeaderRow())
	m.AddRows(dayRows(rep, money)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(itemsAndExpensesRows(rep, money)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("OBSERVACIONES"))
	for _, o := range rep.Insights.Observations {
		m.AddRows(row.New(5).Add(col.New(12).Add(
			text.New("• "+o, props.Text{Size: 8, Top: 1, Left: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep *report.WeeklyReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(rep.Business, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Semana %s a %s", rep.Week.WeekStart, rep.Week.WeekEnd), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE SEMANAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func kpiRow(rep *report.WeeklyReport, money func(decimal.Decimal) string) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	weekday := rep.BestWeekday.Day
	if !rep.BestWeekday.Found {
		weekday = "—"
	}
	return row.New(16).Add(
		kpi("Utilidad semanal", money(rep.Week.TotalWeeklyProfit)),
		kpi("Promedio diario", money(rep.Week.AverageDailyProfit)),
		kpi("Mejor día (semana)", rep.Week.MostProductiveDay),
		kpi("Mejor día (histórico)", weekday),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Día", 3, align.Left),
		h("Ventas", 2, align.Right),
		h("Gastos", 2, align.Right),
		h("Utilidad", 3, align.Right),
		h("N°", 2, align.Center),
	)
}

func dayRows(rep *report.WeeklyReport, money func(decimal.Decimal) string) []core.Row {
	out := make([]core.Row, 0, len(rep.Week.Days))
	for _, d := range rep.Week.Days {
		profit := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if d.NetProfit.IsPositive() {
			profit.Color = colorGreen
		} else if d.NetProfit.IsNegative() {
			profit.Color = colorPrimary
		}
		out = append(out, row.New(6).Add(
			col.New(3).Add(text.New(d.DayOfWeek+" "+d.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money(d.TotalSales), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money(d.TotalExpenses), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money(d.NetProfit), profit)),
			col.New(2).Add(text.New(fmt.Sprintf("%d", d.SalesCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return out
}

// itemsAndExpensesRows mejores platos (izq) y gastos por categoría (der), una fila por posición.
func itemsAndExpensesRows(rep *report.WeeklyReport, money func(decimal.Decimal) string) []core.Row {
	rows := []core.Row{row.New(7).Add(
		col.New(6).Add(text.New("MEJORES PLATOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2})),
		col.New(6).Add(text.New("GASTOS POR CATEGORÍA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2})),
	)}
	n := max(len(rep.Week.BestPerformingItems), len(rep.ExpensesByCategory))
	for i := 0; i < n; i++ {
		left, right := col.New(6), col.New(6)
		if i < len(rep.Week.BestPerformingItems) {
			it := rep.Week.BestPerformingItems[i]
			left.Add(text.New(fmt.Sprintf("%d. %s × %d  %s", i+1, it.Name, it.Quantity, money(it.Revenue)),
				props.Text{Size: 8, Top: 1, Left: 2}))
		}
		if i < len(rep.ExpensesByCategory) {
			c := rep.ExpensesByCategory[i]
			right.Add(text.New(fmt.Sprintf("%s (%d)  %s", c.Label, c.Count, money(c.Amount)),
				props.Text{Size: 8, Top: 1, Left: 2}))
		}
		rows = append(rows, row.New(5).Add(left, right))
	}
	return rows
}
