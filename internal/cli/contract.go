package cli

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet/models"
	getAvailableCars "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
	rentCar "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
)

// FleetService интерфейс сервиса автопарка
type FleetService interface {
	Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CarResponse, error)
	List(ctx context.Context) (*models.CarListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error)
	Delete(ctx context.Context, id int64) error
}

// RentCarUseCase интерфейс use case аренды
type RentCarUseCase interface {
	Execute(ctx context.Context, req *rentCar.Request, payer rentCar.Payer) (*rentCar.Response, error)
}

// GetAvailableCarsUseCase интерфейс use case свободных автомобилей
type GetAvailableCarsUseCase interface {
	Execute(ctx context.Context, req *getAvailableCars.Request) (*getAvailableCars.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
