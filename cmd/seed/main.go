// seed carga los datos de demostración (menú con recetas, bodega, ventas, gastos y alertas)
// en el backend configurado por STORE_BACKEND. Los registros existentes se omiten, así que
// puede ejecutarse más de una vez.
//
// Uso: go run ./cmd/seed [--dry-run]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/store"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "solo muestra cuántos registros se cargarían")
	timeout := flag.Duration("timeout", time.Minute, "tiempo máximo de la carga")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuración inválida: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ds := seed.Demo()
	fmt.Printf("Dataset: %d platos, %d insumos, %d ventas, %d gastos, %d alertas\n",
		len(ds.Menu), len(ds.Inventory), len(ds.Sales), len(ds.Expenses), len(ds.Alerts))
	if *dryRun {
		return
	}
	if cfg.Store.Backend == config.BackendMemory {
		fmt.Fprintln(os.Stderr, "STORE_BACKEND=memory no persiste; use postgres o mongo")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir %s: %v\n", cfg.Store.Backend, err)
		os.Exit(1)
	}
	defer backend.Close()

	if err := backend.Load(ctx, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar datos: %v\n", err)
		backend.Close()
		os.Exit(1)
	}
	fmt.Printf("Datos de demostración cargados en %s\n", backend.Name)
}
