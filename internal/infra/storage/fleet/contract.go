package fleet

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Snapshot плоский набор записей каталога вместе со счетчиком идентификаторов.
// LastID - последний выданный ID (следующий автомобиль получит LastID+1)
type Snapshot struct {
	Cars   []*domain.Car
	LastID int64
}

// Store внешнее хранилище каталога: загружается один раз при старте,
// сохраняется один раз при корректном завершении
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}

// DB интерфейс для работы с PostgreSQL (поддерживает *sql.DB)
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
