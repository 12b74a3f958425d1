// report descarga el log de transacciones de una instancia remota y escribe el reporte
// semanal en PDF o XLSX, imprimiendo el resumen de la semana.
//
// Uso: go run ./cmd/report --source http://localhost:8080 --date 2024-01-17 --format pdf --out reporte.pdf
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	appanalytics "github.com/jhoicas/tacohut-api/internal/application/analytics"
	"github.com/jhoicas/tacohut-api/internal/application/report"
	infraexcel "github.com/jhoicas/tacohut-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/tacohut-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/remote"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
	"github.com/jhoicas/tacohut-api/pkg/textnorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	sourceURL := flag.String("source", cfg.Source.URL, "URL base de la instancia (por defecto TRANSACTION_SOURCE_URL)")
	date := flag.String("date", "", "cualquier día de la semana, YYYY-MM-DD (por defecto hoy)")
	format := flag.String("format", "pdf", "pdf | xlsx")
	out := flag.String("out", "", "archivo de salida (por defecto weekly-report-<semana>.<formato>)")
	flag.Parse()

	if *sourceURL == "" {
		fmt.Fprintln(os.Stderr, "Falta --source o TRANSACTION_SOURCE_URL")
		os.Exit(2)
	}
	srcCfg := cfg.Source
	srcCfg.URL = strings.TrimRight(*sourceURL, "/")

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	client := remote.NewClient(srcCfg, log)
	dashboard := appanalytics.NewDashboardUseCase(client, nil, cfg.Business.Location(), cfg.Business.Currency, log)
	uc := report.NewUseCase(dashboard, cfg.Business.Name, cfg.Business.Currency, log,
		infrapdf.NewReportRenderer(), infraexcel.NewReportRenderer())

	day, err := dashboard.ParseDate(*date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fecha inválida: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*srcCfg.Timeout+30*time.Second)
	defer cancel()

	rep, err := uc.Build(ctx, day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar reporte: %v\n", err)
		os.Exit(1)
	}
	doc, err := uc.Encode(ctx, rep, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar reporte: %v\n", err)
		os.Exit(1)
	}
	path := *out
	if path == "" {
		path = doc.Filename
	}
	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", path, err)
		os.Exit(1)
	}

	week := rep.Week
	cur := rep.Currency
	fmt.Printf("%s, semana %s a %s\n", rep.Business, week.WeekStart, week.WeekEnd)
	for _, d := range week.Days {
		fmt.Printf("  %-10s %s  ventas %s  gastos %s  utilidad %s\n", d.DayOfWeek, d.Date,
			textnorm.Money(cur, d.TotalSales), textnorm.Money(cur, d.TotalExpenses), textnorm.Money(cur, d.NetProfit))
	}
	fmt.Printf("Utilidad semanal: %s (promedio diario %s)\n",
		textnorm.Money(cur, week.TotalWeeklyProfit), textnorm.Money(cur, week.AverageDailyProfit))
	fmt.Printf("Día más productivo: %s\n", week.MostProductiveDay)
	fmt.Printf("Reporte escrito en %s (%d bytes)\n", path, len(doc.Body))
}
