package fleet

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// FleetRepository интерфейс каталога автопарка
type FleetRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Delete(ctx context.Context, id int64) (*domain.Car, error)
	Len() int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для обновления метрик автопарка
type MetricsRecorder interface {
	SetFleetSize(size int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
