// Package analytics contiene los casos de uso de analítica: lee el log completo de
// transacciones y delega los cálculos en el motor de dominio.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/analytics"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

const (
	recentLimit = 5 // ventas y gastos recientes en dashboard y reportes
	dateLayout  = "2006-01-02"
)

// DashboardUseCase arma el dashboard, los reportes de ventas y gastos y el análisis semanal.
//
// Fuente de datos: TransactionSource (almacén local o instancia remota). Cada lectura trae
// ventas y gastos en paralelo; no hay caché.
type DashboardUseCase struct {
	source   repository.TransactionSource
	menu     repository.MenuRepository
	loc      *time.Location
	currency string
	log      *logger.Logger
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso. menu puede ser nil (fuente remota): las
// estadísticas por plato se arman con las líneas de las ventas.
func NewDashboardUseCase(
	source repository.TransactionSource,
	menu repository.MenuRepository,
	loc *time.Location,
	currency string,
	log *logger.Logger,
) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{
		source:   source,
		menu:     menu,
		loc:      loc,
		currency: currency,
		log:      log.Component("analytics"),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Location zona horaria del negocio.
func (uc *DashboardUseCase) Location() *time.Location { return uc.loc }

// ParseDate interpreta YYYY-MM-DD en la zona del negocio. Vacío = hoy.
func (uc *DashboardUseCase) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return analytics.DayStart(uc.now(), uc.loc), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, uc.loc)
	if err != nil {
		return time.Time{}, domain.Invalid("date", "formato esperado YYYY-MM-DD")
	}
	return t, nil
}

// load trae ventas y gastos en paralelo.
func (uc *DashboardUseCase) load(ctx context.Context) ([]entity.Sale, []entity.Expense, error) {
	var (
		sales    []entity.Sale
		expenses []entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = uc.source.ListSales(gctx)
		if err != nil {
			return fmt.Errorf("ventas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = uc.source.ListExpenses(gctx)
		if err != nil {
			return fmt.Errorf("gastos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("analytics: leer transacciones: %w", err)
	}
	uc.log.Debug().Int("sales", len(sales)).Int("expenses", len(expenses)).Msg("transacciones cargadas")
	return sales, expenses, nil
}

// DailySummary resumen del día calendario de date.
func (uc *DashboardUseCase) DailySummary(ctx context.Context, date time.Time) (*dto.DailySummaryDTO, error) {
	sales, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.FromDailySummary(analytics.ComputeDailySummary(sales, expenses, date.In(uc.loc)))
	return &out, nil
}

// WeeklyAnalysis análisis de la semana lunes..domingo que contiene date.
func (uc *DashboardUseCase) WeeklyAnalysis(ctx context.Context, date time.Time) (*dto.WeeklyAnalysisDTO, error) {
	sales, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.FromWeeklyAnalysis(analytics.ComputeWeeklyAnalysis(sales, expenses, date.In(uc.loc)))
	return &out, nil
}

// TotalProfit utilidad de todo el historial.
func (uc *DashboardUseCase) TotalProfit(ctx context.Context) (*dto.TotalProfitDTO, error) {
	sales, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	revenue := analytics.SalesRevenue(sales)
	spent := analytics.ExpensesTotal(expenses)
	return &dto.TotalProfitDTO{TotalProfit: revenue.Sub(spent), TotalSales: revenue, TotalExpenses: spent}, nil
}

// MostProductiveWeekday día de la semana con mayor utilidad por plato acumulada en todo el historial.
func (uc *DashboardUseCase) MostProductiveWeekday(ctx context.Context) (*dto.MostProductiveWeekdayDTO, error) {
	sales, _, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.FromWeekdayProfit(
		analytics.MostProductiveWeekday(sales, uc.loc),
		analytics.WeekdayTotals(sales, uc.loc),
	)
	return &out, nil
}

// Dashboard KPIs del día de now, utilidad histórica, últimas ventas y distribución de pagos.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, now time.Time) (*dto.DashboardDTO, error) {
	sales, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		Today:            dto.FromDailySummary(analytics.ComputeDailySummary(sales, expenses, now.In(uc.loc))),
		TotalProfit:      analytics.TotalProfit(sales, expenses),
		TotalRevenue:     analytics.SalesRevenue(sales),
		TotalSalesCount:  len(sales),
		RecentSales:      dto.FromSales(recentSales(sales, recentLimit)),
		PaymentBreakdown: dto.FromPaymentBreakdown(analytics.ComputePaymentBreakdown(sales)),
	}, nil
}

// SalesReport datos de la página de ventas: ingreso, métodos de pago, serie diaria y platos.
func (uc *DashboardUseCase) SalesReport(ctx context.Context) (*dto.SalesReportDTO, error) {
	sales, _, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := uc.menuItems(ctx, sales)
	if err != nil {
		return nil, err
	}
	return &dto.SalesReportDTO{
		TotalRevenue:     analytics.SalesRevenue(sales),
		PaymentBreakdown: dto.FromPaymentBreakdown(analytics.ComputePaymentBreakdown(sales)),
		DailySeries:      dto.FromDailySeries(analytics.DailySalesSeries(sales, uc.loc)),
		BestSellingItems: dto.FromMenuItemStats(analytics.MenuItemStats(sales, menu)),
	}, nil
}

// ExpenseReport datos de la página de gastos.
func (uc *DashboardUseCase) ExpenseReport(ctx context.Context) (*dto.ExpenseReportDTO, error) {
	_, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	byMethod := map[string]decimal.Decimal{
		string(entity.PaymentMethodCash):        decimal.Zero,
		string(entity.PaymentMethodMobileMoney): decimal.Zero,
	}
	for _, e := range expenses {
		m := string(e.Method())
		byMethod[m] = byMethod[m].Add(e.Amount)
	}
	return &dto.ExpenseReportDTO{
		TotalExpenses:  analytics.ExpensesTotal(expenses),
		ExpenseCount:   len(expenses),
		ByCategory:     dto.FromCategoryTotals(analytics.ExpensesByCategory(expenses)),
		ByMethod:       byMethod,
		RecentExpenses: dto.FromExpenses(recentExpenses(expenses, recentLimit)),
	}, nil
}

// Overview todo lo de la página de análisis para la semana de date.
// Incluye las dos definiciones de día más productivo: la semanal (por fecha) y la histórica (por día de la semana).
func (uc *DashboardUseCase) Overview(ctx context.Context, date time.Time) (*dto.AnalyticsOverviewDTO, error) {
	sales, expenses, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	week := analytics.ComputeWeeklyAnalysis(sales, expenses, date.In(uc.loc))
	breakdown := analytics.ComputePaymentBreakdown(sales)
	insights := analytics.Insights(week, breakdown, uc.currency)
	return &dto.AnalyticsOverviewDTO{
		Weekly:             dto.FromWeeklyAnalysis(week),
		ProfitSeries:       dto.FromChartPoints(analytics.WeeklyProfitSeries(week)),
		PaymentBreakdown:   dto.FromPaymentBreakdown(breakdown),
		ExpensesByCategory: dto.FromCategoryTotals(analytics.ExpensesByCategory(expenses)),
		MostProductiveWeekday: dto.FromWeekdayProfit(
			analytics.MostProductiveWeekday(sales, uc.loc),
			analytics.WeekdayTotals(sales, uc.loc),
		),
		TotalProfit: analytics.TotalProfit(sales, expenses),
		Insights:    dto.InsightsDTO{Observations: insights.Observations, Recommendations: insights.Recommendations},
	}, nil
}

// Snapshot devuelve el log completo ya cargado, para los reportes exportables.
func (uc *DashboardUseCase) Snapshot(ctx context.Context) ([]entity.Sale, []entity.Expense, error) {
	return uc.load(ctx)
}

// menuItems menú del repositorio; sin repositorio se deriva de las líneas vendidas.
func (uc *DashboardUseCase) menuItems(ctx context.Context, sales []entity.Sale) ([]entity.MenuItem, error) {
	if uc.menu != nil {
		items, err := uc.menu.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("analytics: leer menú: %w", err)
		}
		return items, nil
	}
	seen := make(map[string]bool)
	var items []entity.MenuItem
	for _, s := range analytics.Chronological(sales) {
		for _, line := range s.Items {
			if seen[line.MenuItemID] {
				continue
			}
			seen[line.MenuItemID] = true
			items = append(items, entity.MenuItem{ID: line.MenuItemID, Name: line.Name, Price: line.UnitPrice, Cost: line.UnitCost})
		}
	}
	return items, nil
}

func recentSales(sales []entity.Sale, n int) []entity.Sale {
	out := append([]entity.Sale(nil), sales...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func recentExpenses(expenses []entity.Expense, n int) []entity.Expense {
	out := append([]entity.Expense(nil), expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
