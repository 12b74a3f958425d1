package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
	"github.com/jhoicas/tacohut-api/internal/application/expenses"
	"github.com/jhoicas/tacohut-api/internal/application/inventory"
	"github.com/jhoicas/tacohut-api/internal/application/menu"
	"github.com/jhoicas/tacohut-api/internal/application/report"
	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/events"
	infraexcel "github.com/jhoicas/tacohut-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/tacohut-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/remote"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/tacohut-api/internal/interfaces/http"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	publisher, closePublisher, err := events.New(cfg.AMQP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a RabbitMQ")
	}
	defer func() {
		if err := closePublisher(); err != nil {
			log.Warn().Err(err).Msg("cerrar publicador")
		}
	}()

	// La analítica lee de otra instancia si TRANSACTION_SOURCE_URL está definido.
	var source repository.TransactionSource = backend.Source
	menuRepo := backend.Menu
	if cfg.Source.URL != "" {
		source = remote.NewClient(cfg.Source, log)
		menuRepo = nil
		log.Info().Str("url", cfg.Source.URL).Msg("analítica con fuente remota")
	}

	loc := cfg.Business.Location()
	salesUC := sales.NewUseCase(backend.Tx, backend.Sales, backend.Menu, publisher, log)
	expensesUC := expenses.NewUseCase(backend.Expenses, log)
	menuUC := menu.NewUseCase(backend.Menu)
	inventoryUC := inventory.NewUseCase(backend.Inventory, backend.Alerts, log)
	dashboardUC := appanalytics.NewDashboardUseCase(source, menuRepo, loc, cfg.Business.Currency, log)
	reportUC := report.NewUseCase(dashboardUC, cfg.Business.Name, cfg.Business.Currency, log,
		infrapdf.NewReportRenderer(), infraexcel.NewReportRenderer())

	swagger := ""
	if _, err := os.Stat(swaggerFile); err == nil {
		swagger = swaggerFile
	}
	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerFile: swagger,
		Log:         log,
	})
	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesUC:     salesUC,
		ExpensesUC:  expensesUC,
		MenuUC:      menuUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
