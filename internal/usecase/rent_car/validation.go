package rent_car

import (
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, payer Payer) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if payer == nil {
		return fmt.Errorf("%w: payer is required", ErrInvalidInput)
	}

	// ID выдаются начиная с 1, меньшие значения не совпадут ни с одним автомобилем
	if req.CarID < domain.FirstCarID {
		return ErrCarNotFound
	}

	return nil
}

// parseRange разбирает границы аренды и строит диапазон относительно сегодняшней даты.
// Длина проверяется до разворачивания диапазона в список дней
func parseRange(req *Request, today domain.Date, maxDays int) (domain.DateRange, error) {
	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return domain.DateRange{}, err
	}

	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return domain.DateRange{}, err
	}

	dateRange, err := domain.NewDateRange(start, end, today)
	if err != nil {
		return domain.DateRange{}, err
	}

	if err := dateRange.CheckLength(maxDays); err != nil {
		return domain.DateRange{}, err
	}

	return dateRange, nil
}
