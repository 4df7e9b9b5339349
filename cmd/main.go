package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CarRentalService/internal/api"
	createCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/delete_car"
	getAvailableCarsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_available_cars"
	getCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_car"
	listCarsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/list_cars"
	rentCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/rent_car"
	updateCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/update_car"
	"github.com/m04kA/SMC-CarRentalService/internal/app"
	"github.com/m04kA/SMC-CarRentalService/internal/config"
	fleetService "github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
	getAvailableCarsUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
	rentCarUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
)

type noopMetrics struct{}

func (noopMetrics) RecordBooking(string, int, int64) {}
func (noopMetrics) RecordPaymentAttempt(string)      {}
func (noopMetrics) SetFleetSize(int)                 {}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarRentalService...")
	log.Info("Configuration loaded from config.toml")

	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Invalid booking.timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbStats          app.DBStatsRegisterer
		bookingMetrics   interface {
			rentCarUC.MetricsRecorder
			fleetService.MetricsRecorder
		} = noopMetrics{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbStats = metricsCollector
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем хранилище и загружаем каталог
	store, closeStore, err := app.OpenStore(cfg, log, dbStats)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeStore()

	catalog, err := app.LoadCatalog(context.Background(), store, log)
	if err != nil {
		log.Fatal("%v", err)
	}
	bookingMetrics.SetFleetSize(catalog.Len())

	// Инициализируем сервисы
	fleetSvc := fleetService.NewService(catalog, catalog, bookingMetrics, log)

	// Инициализируем use cases
	rentCarUseCase := rentCarUC.NewUseCase(
		catalog,
		catalog,
		bookingMetrics,
		&rentCarUC.RealTimeProvider{Location: location},
		log,
		cfg.Booking.MaxPaymentAttempts,
		cfg.Booking.MaxRentalDays,
	)
	getAvailableCarsUseCase := getAvailableCarsUC.NewUseCase(catalog, catalog, log)

	// Инициализируем handlers и роутер
	handlers := api.Handlers{
		ListCars:      listCarsHandler.NewHandler(fleetSvc, log).Handle,
		GetCar:        getCarHandler.NewHandler(fleetSvc, log).Handle,
		AvailableCars: getAvailableCarsHandler.NewHandler(getAvailableCarsUseCase, log).Handle,
		RentCar:       rentCarHandler.NewHandler(rentCarUseCase, log).Handle,
		CreateCar:     createCarHandler.NewHandler(fleetSvc, log).Handle,
		UpdateCar:     updateCarHandler.NewHandler(fleetSvc, log).Handle,
		DeleteCar:     deleteCarHandler.NewHandler(fleetSvc, log).Handle,
	}

	metricsOpts := api.MetricsOptions{}
	if cfg.Metrics.Enabled {
		metricsOpts = api.MetricsOptions{
			Recorder: metricsCollector,
			Path:     cfg.Metrics.Path,
			Handler:  promhttp.Handler(),
		}
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r := api.NewRouter(handlers, metricsOpts)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Каталог сохраняется только при корректном завершении.
	// Отдельный контекст: срок shutdownCtx мог истечь в srv.Shutdown
	saveCtx, cancelSave := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancelSave()

	if err := app.SaveCatalog(saveCtx, catalog, store, log); err != nil {
		log.Error("Failed to persist catalog: %v", err)
	}

	log.Info("Server stopped gracefully")
}
