package get_available_cars

import (
	getAvailableCars "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
)

// AvailableCarsResponse HTTP response model
type AvailableCarsResponse struct {
	Date string       `json:"date"`
	Cars []CarSummary `json:"cars"`
}

// CarSummary автомобиль без календаря занятости
type CarSummary struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Rate  int64  `json:"rate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableCars.Response) *AvailableCarsResponse {
	cars := make([]CarSummary, 0, len(resp.Cars))
	for _, car := range resp.Cars {
		cars = append(cars, CarSummary{
			ID:    car.ID,
			Brand: car.Brand,
			Model: car.Model,
			Year:  car.Year,
			Rate:  car.Rate,
		})
	}

	return &AvailableCarsResponse{
		Date: resp.Date.String(),
		Cars: cars,
	}
}
