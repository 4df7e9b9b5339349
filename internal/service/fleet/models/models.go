package models

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модели

// CreateCarRequest запрос на добавление автомобиля
type CreateCarRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Rate  int64  `json:"rate"`
}

// UpdateCarRequest запрос на изменение автомобиля.
// Незаполненные (nil или пустые) поля сохраняют текущее значение
type UpdateCarRequest struct {
	Brand *string `json:"brand,omitempty"`
	Model *string `json:"model,omitempty"`
	Year  *string `json:"year,omitempty"`
	Rate  *int64  `json:"rate,omitempty"`
}

// Response модели

// CarResponse автомобиль с календарем занятости
type CarResponse struct {
	ID           int64    `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         string   `json:"year"`
	Rate         int64    `json:"rate"`
	ReservedDays []string `json:"reservedDays"`
}

// CarListResponse список автомобилей каталога
type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Total int           `json:"total"`
}

// FromDomainCar конвертирует domain модель в response
func FromDomainCar(car *domain.Car) *CarResponse {
	days := car.ReservedDays.Sorted()
	reserved := make([]string, len(days))
	for i, d := range days {
		reserved[i] = d.String()
	}

	return &CarResponse{
		ID:           car.ID,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Rate:         car.Rate,
		ReservedDays: reserved,
	}
}

// FromDomainCarList конвертирует список автомобилей
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	list := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		list = append(list, *FromDomainCar(car))
	}
	return &CarListResponse{Cars: list, Total: len(list)}
}

// ToDomainCar конвертирует запрос на создание в domain модель
func (r *CreateCarRequest) ToDomainCar() *domain.Car {
	return &domain.Car{
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Rate:         r.Rate,
		ReservedDays: domain.NewReservedDays(),
	}
}

// ApplyTo переносит заполненные поля на текущую версию автомобиля
func (r *UpdateCarRequest) ApplyTo(car *domain.Car) *domain.Car {
	updated := car.Clone()
	if r.Brand != nil && *r.Brand != "" {
		updated.Brand = *r.Brand
	}
	if r.Model != nil && *r.Model != "" {
		updated.Model = *r.Model
	}
	if r.Year != nil && *r.Year != "" {
		updated.Year = *r.Year
	}
	if r.Rate != nil {
		updated.Rate = *r.Rate
	}
	return updated
}
