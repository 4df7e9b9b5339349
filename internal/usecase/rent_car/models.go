package rent_car

import (
	"errors"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса на аренду автомобиля
type Request struct {
	CarID     int64  // ID автомобиля
	StartDate string // Первый день аренды (YYYY-MM-DD)
	EndDate   string // Последний день аренды включительно (YYYY-MM-DD)
}

// Response модель ответа с зафиксированной арендой
type Response struct {
	Reference       string      // Номер аренды для чека и логов
	CarID           int64       // ID автомобиля
	StartDate       domain.Date // Первый день аренды
	EndDate         domain.Date // Последний день аренды
	DaysBooked      int         // Количество дней
	Rate            int64       // Стоимость суток
	TotalCost       int64       // Итоговая стоимость
	Paid            int64       // Внесенная сумма
	Change          int64       // Сдача
	PaymentAttempts int         // Сколько раз вводилась сумма оплаты
}

// ErrorKind категория ошибки бронирования
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindInvalidDateFormat   ErrorKind = "invalid_date_format"
	KindInvalidRange        ErrorKind = "invalid_range"
	KindPastStartDate       ErrorKind = "past_start_date"
	KindRentalTooLong       ErrorKind = "rental_too_long"
	KindCostOverflow        ErrorKind = "cost_overflow"
	KindCarNotFound         ErrorKind = "car_not_found"
	KindDateConflict        ErrorKind = "date_conflict"
	KindPaymentDeclined     ErrorKind = "payment_declined"
	KindPaymentCancelled    ErrorKind = "payment_cancelled"
	KindInsufficientPayment ErrorKind = "insufficient_payment"
	KindInvalidNumericInput ErrorKind = "invalid_numeric_input"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindInternal            ErrorKind = "internal"
)

// KindOf определяет категорию ошибки, возвращенной Execute
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return KindInvalidDateFormat
	case errors.Is(err, domain.ErrInvalidRange):
		return KindInvalidRange
	case errors.Is(err, domain.ErrPastStartDate):
		return KindPastStartDate
	case errors.Is(err, domain.ErrRentalTooLong):
		return KindRentalTooLong
	case errors.Is(err, domain.ErrCostOverflow):
		return KindCostOverflow
	case errors.Is(err, ErrCarNotFound):
		return KindCarNotFound
	case errors.Is(err, domain.ErrDateConflict):
		return KindDateConflict
	case errors.Is(err, domain.ErrPaymentDeclined):
		return KindPaymentDeclined
	case errors.Is(err, domain.ErrPaymentCancelled):
		return KindPaymentCancelled
	case errors.Is(err, domain.ErrInsufficientPayment):
		return KindInsufficientPayment
	case errors.Is(err, domain.ErrInvalidNumericInput):
		return KindInvalidNumericInput
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

// Result плоский итог попытки бронирования для интерфейсов без типизированных ошибок
type Result struct {
	OK           bool
	Reference    string
	TotalCost    int64
	DaysBooked   int
	Change       int64
	ErrorKind    ErrorKind
	ConflictDate domain.Date // заполнено при KindDateConflict
	Shortfall    int64       // заполнено при KindInsufficientPayment
}

// ToResult сворачивает ответ и ошибку Execute в Result
func ToResult(resp *Response, err error) Result {
	if err != nil {
		result := Result{ErrorKind: KindOf(err)}

		var conflict *domain.DateConflictError
		if errors.As(err, &conflict) {
			result.ConflictDate = conflict.Date
		}

		var insufficient *domain.InsufficientPaymentError
		if errors.As(err, &insufficient) {
			result.TotalCost = insufficient.Cost
			result.Shortfall = insufficient.Shortfall
		}

		return result
	}

	return Result{
		OK:         true,
		Reference:  resp.Reference,
		TotalCost:  resp.TotalCost,
		DaysBooked: resp.DaysBooked,
		Change:     resp.Change,
	}
}
