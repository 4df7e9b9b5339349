package get_available_cars

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// UseCase use case для получения автомобилей, свободных на дату
type UseCase struct {
	fleetRepo FleetRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fleetRepo FleetRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		fleetRepo: fleetRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute возвращает автомобили, у которых дата не занята.
// Прошедшие даты допустимы: запрет на прошлое относится только к аренде
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailableCars: date=%s", req.Date)

	// 1. Разбор даты
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableCars: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	// 2. Получаем автопарк
	var cars []*domain.Car
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		cars, err = uc.fleetRepo.List(txCtx)
		return err
	})
	if err != nil {
		uc.logger.Error("GetAvailableCars: failed to list cars: %v", err)
		return nil, fmt.Errorf("%w: failed to list cars: %v", ErrInternal, err)
	}

	// 3. Фильтруем свободные
	available := domain.ListAvailableOn(date, cars)

	summaries := make([]domain.CarSummary, 0, len(available))
	for _, car := range available {
		summaries = append(summaries, car.Summary())
	}

	uc.logger.Info("GetAvailableCars: %d of %d cars available on %s", len(summaries), len(cars), date)

	return &Response{
		Date: date,
		Cars: summaries,
	}, nil
}
