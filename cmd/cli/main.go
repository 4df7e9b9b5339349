package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/app"
	"github.com/m04kA/SMC-CarRentalService/internal/cli"
	"github.com/m04kA/SMC-CarRentalService/internal/config"
	fleetService "github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
	getAvailableCarsUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
	rentCarUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordBooking(string, int, int64) {}
func (noopMetrics) RecordPaymentAttempt(string)      {}
func (noopMetrics) SetFleetSize(int)                 {}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Логи CLI не смешиваются с диалогом: только файл, иначе только ошибки в stderr
	var log *logger.Logger
	if cfg.Logs.File != "" {
		log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
	} else {
		log, err = logger.NewWithWriter(os.Stderr, "error")
	}
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Invalid booking.timezone %q: %v", cfg.Booking.Timezone, err)
	}

	store, closeStore, err := app.OpenStore(cfg, log, nil)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeStore()

	ctx := context.Background()

	catalog, err := app.LoadCatalog(ctx, store, log)
	if err != nil {
		log.Fatal("%v", err)
	}

	fleetSvc := fleetService.NewService(catalog, catalog, noopMetrics{}, log)
	rentCarUseCase := rentCarUC.NewUseCase(
		catalog,
		catalog,
		noopMetrics{},
		&rentCarUC.RealTimeProvider{Location: location},
		log,
		cfg.Booking.MaxPaymentAttempts,
		cfg.Booking.MaxRentalDays,
	)
	getAvailableCarsUseCase := getAvailableCarsUC.NewUseCase(catalog, catalog, log)

	shell := cli.NewShell(os.Stdin, os.Stdout, fleetSvc, rentCarUseCase, getAvailableCarsUseCase, log)
	if err := shell.Run(ctx); err != nil {
		log.Error("Session failed: %v", err)
		os.Exit(1)
	}

	// Единственная запись каталога за сессию
	if err := app.SaveCatalog(ctx, catalog, store, log); err != nil {
		log.Error("Failed to persist catalog: %v", err)
		os.Exit(1)
	}
}
