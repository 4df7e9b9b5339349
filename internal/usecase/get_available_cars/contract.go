package get_available_cars

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// FleetRepository интерфейс каталога автопарка
type FleetRepository interface {
	List(ctx context.Context) ([]*domain.Car, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
