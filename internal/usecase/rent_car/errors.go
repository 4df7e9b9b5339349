package rent_car

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль с указанным ID отсутствует в каталоге
	ErrCarNotFound = errors.New("rent_car: car not found")

	// ErrNoMorePayments возвращается Payer, когда заранее переданные суммы закончились
	ErrNoMorePayments = errors.New("rent_car: no more payment amounts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rent_car: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("rent_car: internal error")
)
