package http

import (
	"strings"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
	"github.com/jhoicas/tacohut-api/internal/application/expenses"
	"github.com/jhoicas/tacohut-api/internal/application/inventory"
	"github.com/jhoicas/tacohut-api/internal/application/menu"
	"github.com/jhoicas/tacohut-api/internal/application/report"
	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesUC     *sales.UseCase
	ExpensesUC  *expenses.UseCase
	MenuUC      *menu.UseCase
	InventoryUC *inventory.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.UseCase
}

// AppOptions configuración de la app Fiber.
type AppOptions struct {
	Name        string
	CORSOrigins string // lista separada por comas
	SwaggerFile string // vacío = sin /docs
	Log         *logger.Logger
}

// NewApp crea la app Fiber con recover, CORS, log de peticiones, /health y (opcional) Swagger UI.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ErrorHandler: ErrorHandler,
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(opts.CORSOrigins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI: http://localhost:<port>/docs
	if opts.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: opts.SwaggerFile,
			Path:     "docs",
			Title:    "Taco Hut API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ventas
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Delete("/:id", salesHandler.Delete)

	// Gastos (/categories antes de /:id)
	expenseHandler := NewExpenseHandler(deps.ExpensesUC)
	expensesGroup := api.Group("/expenses")
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Get("/categories", expenseHandler.Categories)
	expensesGroup.Get("/:id", expenseHandler.GetByID)
	expensesGroup.Delete("/:id", expenseHandler.Delete)

	// Menú
	menuHandler := NewMenuHandler(deps.MenuUC)
	menuGroup := api.Group("/menu")
	menuGroup.Get("/", menuHandler.List)
	menuGroup.Post("/", menuHandler.Create)
	menuGroup.Get("/:id", menuHandler.GetByID)
	menuGroup.Put("/:id", menuHandler.Update)
	menuGroup.Delete("/:id", menuHandler.Delete)

	// Inventario y alertas
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup := api.Group("/inventory")
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/replenishment", inventoryHandler.GetReplenishmentList)
	invGroup.Get("/expiring", inventoryHandler.Expiring)
	invGroup.Put("/:id/stock", inventoryHandler.Restock)

	alerts := api.Group("/alerts")
	alerts.Get("/", inventoryHandler.ListAlerts)
	alerts.Post("/:id/ack", inventoryHandler.AcknowledgeAlert)

	// Analítica
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Get("/daily", analyticsHandler.Daily)
	analyticsGroup.Get("/weekly", analyticsHandler.Weekly)
	analyticsGroup.Get("/profit", analyticsHandler.Profit)
	analyticsGroup.Get("/most-productive-day", analyticsHandler.MostProductiveDay)
	analyticsGroup.Get("/overview", analyticsHandler.Overview)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetDashboard)

	// Reportes
	reports := api.Group("/reports")
	reports.Get("/sales", dashboardHandler.SalesReport)
	reports.Get("/expenses", dashboardHandler.ExpenseReport)
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC, deps.DashboardUC)
		reports.Get("/weekly.pdf", reportHandler.WeeklyPDF)
		reports.Get("/weekly.xlsx", reportHandler.WeeklyXLSX)
	}
}
