package rent_car

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// FleetRepository интерфейс каталога автопарка
type FleetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Reserve(ctx context.Context, carID int64, days []domain.Date) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Payer источник решений арендатора: подтверждение стоимости и суммы оплаты.
//
// Confirm возвращает false, если арендатор отказался от аренды.
// Pay вызывается до тех пор, пока сумма не покроет стоимость; shortfall - сколько не хватило
// в прошлый раз (0 при первом вызове). Pay может вернуть domain.ErrPaymentCancelled,
// domain.ErrInvalidNumericInput (повторный запрос) или ErrNoMorePayments.
type Payer interface {
	Confirm(ctx context.Context, quote domain.Quote) (bool, error)
	Pay(ctx context.Context, quote domain.Quote, shortfall int64) (int64, error)
}

// MetricsRecorder интерфейс для сбора метрик бронирования
type MetricsRecorder interface {
	RecordBooking(outcome string, days int, revenue int64)
	RecordPaymentAttempt(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	// Location часовой пояс, в котором определяется "сегодня". nil - локальное время
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
