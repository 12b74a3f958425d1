// Package store elige el backend de persistencia según STORE_BACKEND y entrega sus
// repositorios ya conectados.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/memory"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

const closeTimeout = 5 * time.Second

// Backend repositorios de un almacén más su runner transaccional y su fuente de analítica.
type Backend struct {
	Name      string
	Sales     repository.SaleRepository
	Expenses  repository.ExpenseRepository
	Menu      repository.MenuRepository
	Inventory repository.InventoryRepository
	Alerts    repository.AlertRepository
	Tx        sales.TxRunner
	Source    repository.TransactionSource

	load  func(ctx context.Context, ds seed.Dataset) error
	close func()
}

// Load inserta un conjunto de datos; los registros ya existentes se omiten.
func (b *Backend) Load(ctx context.Context, ds seed.Dataset) error {
	return b.load(ctx, ds)
}

// Close libera las conexiones del backend.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open conecta el backend configurado. Postgres ejecuta las migraciones pendientes.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("store")

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return openMemory(cfg.Store.Seed), nil
	case config.BackendPostgres:
		return openPostgres(ctx, cfg.DB, log)
	case config.BackendMongo:
		return openMongo(ctx, cfg.Mongo, log)
	default:
		return nil, fmt.Errorf("backend desconocido %q", cfg.Store.Backend)
	}
}

func openMemory(seeded bool) *Backend {
	s := memory.New()
	if seeded {
		s = memory.NewSeeded()
	}
	return &Backend{
		Name:      config.BackendMemory,
		Sales:     s.Sales(),
		Expenses:  s.Expenses(),
		Menu:      s.Menu(),
		Inventory: s.Inventory(),
		Alerts:    s.Alerts(),
		Tx:        s,
		Source:    s,
		load: func(_ context.Context, ds seed.Dataset) error {
			s.Load(ds)
			return nil
		},
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Backend, error) {
	if err := postgres.RunMigrations(cfg.ConnectionString()); err != nil {
		return nil, fmt.Errorf("migraciones: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("conectado a PostgreSQL")

	tx := postgres.NewTxRunner(pool)
	return &Backend{
		Name:      config.BackendPostgres,
		Sales:     postgres.NewSaleRepository(pool),
		Expenses:  postgres.NewExpenseRepository(pool),
		Menu:      postgres.NewMenuRepository(pool),
		Inventory: postgres.NewInventoryRepository(pool),
		Alerts:    postgres.NewAlertRepository(pool),
		Tx:        tx,
		Source:    tx,
		load: func(ctx context.Context, ds seed.Dataset) error {
			return postgres.LoadDataset(ctx, pool, ds)
		},
		close: pool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Backend, error) {
	s, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Database).Msg("conectado a MongoDB")

	return &Backend{
		Name:      config.BackendMongo,
		Sales:     s.Sales(),
		Expenses:  s.Expenses(),
		Menu:      s.Menu(),
		Inventory: s.Inventory(),
		Alerts:    s.Alerts(),
		Tx:        s,
		Source:    s,
		load:      s.Load,
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := s.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("cerrar MongoDB")
			}
		},
	}, nil
}
