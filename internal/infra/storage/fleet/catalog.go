package fleet

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/txmanager"
)

// Catalog каталог автопарка в памяти процесса: владеет списком автомобилей
// (в порядке добавления) и счетчиком идентификаторов.
//
// Методы чтения возвращают копии, поэтому изменения снаружи не попадают в каталог.
// Сам каталог не блокируется: вызывающий код открывает секцию через DoSerializable/DoReadOnly.
type Catalog struct {
	cars   []*domain.Car
	lastID int64
	tx     *txmanager.Manager
}

// NewCatalog создает пустой каталог
func NewCatalog() *Catalog {
	return &Catalog{
		cars: make([]*domain.Car, 0),
		tx:   txmanager.NewManager(),
	}
}

// NewCatalogFromSnapshot восстанавливает каталог из загруженного набора записей
func NewCatalogFromSnapshot(snapshot *Snapshot) (*Catalog, error) {
	c := NewCatalog()
	if snapshot == nil {
		return c, nil
	}

	seen := make(map[int64]struct{}, len(snapshot.Cars))
	maxID := int64(0)
	for _, car := range snapshot.Cars {
		if car == nil || car.ID < domain.FirstCarID {
			return nil, fmt.Errorf("%w: car with non-positive id", ErrInvalidSnapshot)
		}
		if _, dup := seen[car.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate car id=%d", ErrInvalidSnapshot, car.ID)
		}
		if car.Rate < 0 {
			return nil, fmt.Errorf("%w: car id=%d has negative rate", ErrInvalidSnapshot, car.ID)
		}
		seen[car.ID] = struct{}{}
		if car.ID > maxID {
			maxID = car.ID
		}
		c.cars = append(c.cars, car.Clone())
	}

	// Счетчик никогда не должен выдать уже занятый ID
	c.lastID = snapshot.LastID
	if c.lastID < maxID {
		c.lastID = maxID
	}

	return c, nil
}

// Do выполняет fn в эксклюзивной секции каталога
func (c *Catalog) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.tx.Do(ctx, fn)
}

// DoSerializable выполняет fn в эксклюзивной секции каталога
func (c *Catalog) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.tx.DoSerializable(ctx, fn)
}

// DoReadOnly выполняет fn в разделяемой секции каталога
func (c *Catalog) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.tx.DoReadOnly(ctx, fn)
}

// Create добавляет автомобиль и присваивает ему следующий ID
func (c *Catalog) Create(_ context.Context, car *domain.Car) (*domain.Car, error) {
	c.lastID++

	stored := car.Clone()
	stored.ID = c.lastID
	c.cars = append(c.cars, stored)

	return stored.Clone(), nil
}

// GetByID получает автомобиль по ID
func (c *Catalog) GetByID(_ context.Context, id int64) (*domain.Car, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, ErrCarNotFound
	}
	return c.cars[idx].Clone(), nil
}

// List возвращает все автомобили в порядке каталога
func (c *Catalog) List(_ context.Context) ([]*domain.Car, error) {
	cars := make([]*domain.Car, len(c.cars))
	for i, car := range c.cars {
		cars[i] = car.Clone()
	}
	return cars, nil
}

// Update обновляет описательные поля и тариф. Календарь бронирований не изменяется
func (c *Catalog) Update(_ context.Context, car *domain.Car) (*domain.Car, error) {
	idx := c.indexOf(car.ID)
	if idx < 0 {
		return nil, ErrCarNotFound
	}

	stored := c.cars[idx]
	stored.Brand = car.Brand
	stored.Model = car.Model
	stored.Year = car.Year
	stored.Rate = car.Rate

	return stored.Clone(), nil
}

// Delete удаляет автомобиль. ID не переиспользуется
func (c *Catalog) Delete(_ context.Context, id int64) (*domain.Car, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, ErrCarNotFound
	}

	deleted := c.cars[idx].Clone()
	c.cars = append(c.cars[:idx], c.cars[idx+1:]...)

	return deleted, nil
}

// Reserve фиксирует дни бронирования в календаре автомобиля.
// Единственная операция, изменяющая reserved_days
func (c *Catalog) Reserve(_ context.Context, carID int64, days []domain.Date) (int, error) {
	idx := c.indexOf(carID)
	if idx < 0 {
		return 0, ErrCarNotFound
	}
	return c.cars[idx].Reserve(days), nil
}

// Len возвращает количество автомобилей в каталоге
func (c *Catalog) Len() int {
	return len(c.cars)
}

// Snapshot возвращает глубокую копию каталога для сохранения
func (c *Catalog) Snapshot(ctx context.Context) (*Snapshot, error) {
	cars, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Cars: cars, LastID: c.lastID}, nil
}

func (c *Catalog) indexOf(id int64) int {
	for i, car := range c.cars {
		if car.ID == id {
			return i
		}
	}
	return -1
}
