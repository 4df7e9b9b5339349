package get_available_cars

import "github.com/m04kA/SMC-CarRentalService/internal/domain"

// Request модель запроса свободных автомобилей
type Request struct {
	Date string // Дата (YYYY-MM-DD)
}

// Response модель ответа со списком свободных автомобилей
type Response struct {
	Date domain.Date         // Дата, на которую проверялась занятость
	Cars []domain.CarSummary // Свободные автомобили в порядке каталога, может быть пустым
}
