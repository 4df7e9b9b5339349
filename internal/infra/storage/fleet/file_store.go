package fleet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// catalogFile формат файла каталога (совместим с cars.json)
type catalogFile struct {
	Cars  []carRecord `json:"cars"`
	CarID int64       `json:"car_id"`
}

type carRecord struct {
	ID           int64    `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         string   `json:"year"`
	Rate         int64    `json:"rate"`
	ReservedDays []string `json:"reserved_days"`
	// RentedDates старое имя поля, читается только при загрузке
	RentedDates []string `json:"rented_dates,omitempty"`
}

// FileStore хранит каталог в JSON-файле
type FileStore struct {
	path string
}

// NewFileStore создает хранилище поверх файла path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает каталог. Отсутствующий файл означает пустой каталог
func (s *FileStore) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Snapshot{Cars: []*domain.Car{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, s.path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, s.path, err)
	}

	snapshot := &Snapshot{
		Cars:   make([]*domain.Car, 0, len(file.Cars)),
		LastID: file.CarID,
	}
	for _, rec := range file.Cars {
		car, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: car id=%d: %v", ErrDecode, rec.ID, err)
		}
		snapshot.Cars = append(snapshot.Cars, car)
	}

	return snapshot, nil
}

// Save перезаписывает файл каталога целиком (через временный файл и rename)
func (s *FileStore) Save(_ context.Context, snapshot *Snapshot) error {
	file := catalogFile{
		Cars:  make([]carRecord, 0, len(snapshot.Cars)),
		CarID: snapshot.LastID,
	}
	for _, car := range snapshot.Cars {
		file.Cars = append(file.Cars, fromDomain(car))
	}

	data, err := json.MarshalIndent(file, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWriteFile, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write temp file: %v", ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", ErrWriteFile, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrWriteFile, s.path, err)
	}

	return nil
}

func (r carRecord) toDomain() (*domain.Car, error) {
	raw := r.ReservedDays
	if len(raw) == 0 {
		raw = r.RentedDates
	}

	days := make([]domain.Date, 0, len(raw))
	for _, s := range raw {
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return &domain.Car{
		ID:           r.ID,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Rate:         r.Rate,
		ReservedDays: domain.NewReservedDays(days...),
	}, nil
}

func fromDomain(car *domain.Car) carRecord {
	sorted := car.ReservedDays.Sorted()
	days := make([]string, len(sorted))
	for i, d := range sorted {
		days[i] = d.String()
	}

	return carRecord{
		ID:           car.ID,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Rate:         car.Rate,
		ReservedDays: days,
	}
}
