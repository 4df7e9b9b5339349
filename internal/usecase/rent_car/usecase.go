package rent_car

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	fleetRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
)

const outcomeCommitted = "committed"

// UseCase use case аренды автомобиля на диапазон дат
type UseCase struct {
	fleetRepo          FleetRepository
	txManager          TransactionManager
	metrics            MetricsRecorder
	timeProvider       TimeProvider
	logger             Logger
	maxPaymentAttempts int
	maxRentalDays      int
}

// NewUseCase создает новый экземпляр use case.
// maxPaymentAttempts ограничивает число недоплат, maxRentalDays - длину аренды в днях,
// 0 в обоих случаях - без ограничения
func NewUseCase(
	fleetRepo FleetRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
	maxPaymentAttempts int,
	maxRentalDays int,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		fleetRepo:          fleetRepo,
		txManager:          txManager,
		metrics:            metrics,
		timeProvider:       timeProvider,
		logger:             logger,
		maxPaymentAttempts: maxPaymentAttempts,
		maxRentalDays:      maxRentalDays,
	}
}

// Execute проводит аренду: выбор автомобиля, проверку диапазона и занятости,
// расчет стоимости, оплату и фиксацию дней.
// Вся последовательность выполняется в сериализуемой секции каталога,
// поэтому между проверкой занятости и фиксацией никто не займет те же дни
func (uc *UseCase) Execute(ctx context.Context, req *Request, payer Payer) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, payer); err != nil {
		uc.logger.Warn("RentCar: validation failed: %v", err)
		uc.metrics.RecordBooking(string(KindOf(err)), 0, 0)
		return nil, err
	}

	uc.logger.Info("RentCar: car=%d, start=%s, end=%s", req.CarID, req.StartDate, req.EndDate)

	// 2. Получаем текущую дату
	today := domain.DateOf(uc.timeProvider.Now())

	var result *Response

	// 3. Проверки и фиксация в сериализуемой секции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Выбор автомобиля
		car, err := uc.fleetRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, fleetRepo.ErrCarNotFound) {
				uc.logger.Warn("RentCar: car id=%d not found", req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("RentCar: failed to get car id=%d: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
		}

		// 3.2. Проверка диапазона дат
		dateRange, err := parseRange(req, today, uc.maxRentalDays)
		if err != nil {
			uc.logger.Warn("RentCar: invalid range %s..%s: %v", req.StartDate, req.EndDate, err)
			return err
		}

		// 3.3. Проверка занятости, сообщаем о первом занятом дне
		days := dateRange.Expand()
		if conflicts := car.FindConflicts(days); len(conflicts) > 0 {
			uc.logger.Warn("RentCar: car id=%d already rented on %s", car.ID, conflicts[0])
			return &domain.DateConflictError{CarID: car.ID, Date: conflicts[0], Conflicts: conflicts}
		}

		// 3.4. Расчет стоимости
		quote, err := domain.NewQuote(car, dateRange)
		if err != nil {
			uc.logger.Warn("RentCar: cannot price car id=%d for %s: %v", car.ID, dateRange, err)
			return err
		}
		uc.logger.Info("RentCar: quote for car id=%d: %d days x %d = %d", car.ID, quote.Days, quote.Rate, quote.Total)

		// 3.5. Подтверждение и оплата
		gate, err := uc.collectPayment(txCtx, quote, payer)
		if err != nil {
			return err
		}

		// 3.6. Фиксация дней, единственное изменение состояния
		added, err := uc.fleetRepo.Reserve(txCtx, car.ID, days)
		if err != nil {
			uc.logger.Error("RentCar: failed to reserve days for car id=%d: %v", car.ID, err)
			return fmt.Errorf("%w: failed to reserve days: %v", ErrInternal, err)
		}
		if added != len(days) {
			uc.logger.Error("RentCar: reserved %d of %d days for car id=%d", added, len(days), car.ID)
			return fmt.Errorf("%w: reserved %d of %d days", ErrInternal, added, len(days))
		}

		result = &Response{
			Reference:       uuid.NewString(),
			CarID:           car.ID,
			StartDate:       dateRange.Start(),
			EndDate:         dateRange.End(),
			DaysBooked:      quote.Days,
			Rate:            quote.Rate,
			TotalCost:       quote.Total,
			Paid:            gate.Paid(),
			Change:          gate.Change(),
			PaymentAttempts: gate.Attempts(),
		}
		return nil
	})

	if err != nil {
		uc.metrics.RecordBooking(string(KindOf(err)), 0, 0)
		return nil, err
	}

	uc.metrics.RecordBooking(outcomeCommitted, result.DaysBooked, result.TotalCost)
	uc.logger.Info("RentCar: booking %s committed: car id=%d, %s..%s, total=%d, change=%d",
		result.Reference, result.CarID, result.StartDate, result.EndDate, result.TotalCost, result.Change)

	return result, nil
}
