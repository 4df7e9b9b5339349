package fleet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

const (
	carsTable         = "cars"
	reservedDaysTable = "car_reserved_days"
	countersTable     = "fleet_counters"
	carIDCounter      = "car_id"

	// ограничение PostgreSQL - 65535 параметров на запрос
	carsBatchSize         = 5000 // 6 параметров на строку
	reservedDaysBatchSize = 5000 // 2 параметра на строку
)

// PostgresStore хранит каталог в PostgreSQL (схема в migrations/001_fleet.sql)
type PostgresStore struct {
	db DB
}

// NewPostgresStore создает хранилище поверх пула соединений
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load читает весь набор записей каталога
func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	cars, err := s.loadCars(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.loadReservedDays(ctx, cars); err != nil {
		return nil, err
	}

	lastID, err := s.loadCounter(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Cars: cars, LastID: lastID}, nil
}

// Save заменяет набор записей каталога одной транзакцией
func (s *PostgresStore) Save(ctx context.Context, snapshot *Snapshot) (err error) {
	queries, err := buildSaveQueries(snapshot)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: Save - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w: Save - rollback: %v (original error: %v)", ErrTransaction, rbErr, err)
			}
		}
	}()

	for _, q := range queries {
		if _, err = tx.ExecContext(ctx, q.sql, q.args...); err != nil {
			return fmt.Errorf("%w: Save - %s: %v", ErrExecQuery, q.name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}

	return nil
}

func (s *PostgresStore) loadCars(ctx context.Context) ([]*domain.Car, error) {
	query, args, err := psqlbuilder.Select("id", "brand", "model", "year", "rate").
		From(carsTable).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build cars query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - select cars: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car := &domain.Car{ReservedDays: domain.NewReservedDays()}
		if err := rows.Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Rate); err != nil {
			return nil, fmt.Errorf("%w: Load - scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - cars rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

func (s *PostgresStore) loadReservedDays(ctx context.Context, cars []*domain.Car) error {
	byID := make(map[int64]*domain.Car, len(cars))
	for _, car := range cars {
		byID[car.ID] = car
	}

	query, args, err := psqlbuilder.Select("car_id", "day").
		From(reservedDaysTable).
		OrderBy("car_id ASC", "day ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Load - build reserved days query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Load - select reserved days: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var carID int64
		var day domain.Date
		if err := rows.Scan(&carID, &day); err != nil {
			return fmt.Errorf("%w: Load - scan reserved day: %v", ErrScanRow, err)
		}
		car, ok := byID[carID]
		if !ok {
			// внешний ключ не дает такой ситуации, но схема может быть старой
			return fmt.Errorf("%w: reserved day for unknown car id=%d", ErrInvalidSnapshot, carID)
		}
		car.Reserve([]domain.Date{day})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: Load - reserved days rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (s *PostgresStore) loadCounter(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("value").
		From(countersTable).
		Where(squirrel.Eq{"name": carIDCounter}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Load - build counter query: %v", ErrBuildQuery, err)
	}

	var value int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Load - scan counter: %v", ErrScanRow, err)
	}

	return value, nil
}

type statement struct {
	name string
	sql  string
	args []interface{}
}

// buildSaveQueries строит последовательность запросов полной замены каталога
func buildSaveQueries(snapshot *Snapshot) ([]statement, error) {
	statements := make([]statement, 0, 5)

	add := func(name string, b squirrel.Sqlizer) error {
		query, args, err := b.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Save - %s: %v", ErrBuildQuery, name, err)
		}
		statements = append(statements, statement{name: name, sql: query, args: args})
		return nil
	}

	if err := add("clear reserved days", psqlbuilder.Delete(reservedDaysTable)); err != nil {
		return nil, err
	}
	if err := add("clear cars", psqlbuilder.Delete(carsTable)); err != nil {
		return nil, err
	}

	cars := newBatchInsert(carsTable, carsBatchSize, "id", "brand", "model", "year", "rate", "position")
	for position, car := range snapshot.Cars {
		cars.add(car.ID, car.Brand, car.Model, car.Year, car.Rate, position)
	}
	for _, b := range cars.batches() {
		if err := add("insert cars", b); err != nil {
			return nil, err
		}
	}

	days := newBatchInsert(reservedDaysTable, reservedDaysBatchSize, "car_id", "day")
	for _, car := range snapshot.Cars {
		for _, day := range car.ReservedDays.Sorted() {
			days.add(car.ID, day)
		}
	}
	for _, b := range days.batches() {
		if err := add("insert reserved days", b); err != nil {
			return nil, err
		}
	}

	upsertCounter := psqlbuilder.Insert(countersTable).
		Columns("name", "value").
		Values(carIDCounter, snapshot.LastID).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value")
	if err := add("upsert counter", upsertCounter); err != nil {
		return nil, err
	}

	return statements, nil
}

// batchInsert режет многострочный INSERT на пачки не больше size строк
type batchInsert struct {
	table   string
	columns []string
	size    int

	done    []squirrel.InsertBuilder
	current squirrel.InsertBuilder
	rows    int
}

func newBatchInsert(table string, size int, columns ...string) *batchInsert {
	b := &batchInsert{table: table, columns: columns, size: size}
	b.current = psqlbuilder.Insert(table).Columns(columns...)
	return b
}

func (b *batchInsert) add(values ...interface{}) {
	b.current = b.current.Values(values...)
	b.rows++
	if b.rows == b.size {
		b.done = append(b.done, b.current)
		b.current = psqlbuilder.Insert(b.table).Columns(b.columns...)
		b.rows = 0
	}
}

func (b *batchInsert) batches() []squirrel.InsertBuilder {
	if b.rows == 0 {
		return b.done
	}
	return append(b.done, b.current)
}
