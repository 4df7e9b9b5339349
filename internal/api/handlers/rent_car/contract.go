package rent_car

import (
	"context"

	rentCar "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
)

type RentCarUseCase interface {
	Execute(ctx context.Context, req *rentCar.Request, payer rentCar.Payer) (*rentCar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
