package rent_car

import (
	rentCar "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
)

// RentCarRequest HTTP request model.
// Ответы арендатора передаются заранее: confirm - согласие со стоимостью,
// payments - суммы, которые вносятся по очереди, пока не покроют стоимость
type RentCarRequest struct {
	StartDate string  `json:"startDate"` // "2025-06-01"
	EndDate   string  `json:"endDate"`   // "2025-06-03", включительно
	Confirm   bool    `json:"confirm"`
	Payments  []int64 `json:"payments"`
}

// RentalResponse HTTP response model
type RentalResponse struct {
	Reference       string `json:"reference"`
	CarID           int64  `json:"carId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	DaysBooked      int    `json:"daysBooked"`
	Rate            int64  `json:"rate"`
	TotalCost       int64  `json:"totalCost"`
	Paid            int64  `json:"paid"`
	Change          int64  `json:"change"`
	PaymentAttempts int    `json:"paymentAttempts"`
}

// RentalErrorResponse ошибка аренды с подробностями для клиента
type RentalErrorResponse struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	ErrorKind    string `json:"errorKind"`
	ConflictDate string `json:"conflictDate,omitempty"`
	TotalCost    int64  `json:"totalCost,omitempty"`
	Shortfall    int64  `json:"shortfall,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RentCarRequest) ToUseCaseRequest(carID int64) (*rentCar.Request, rentCar.Payer) {
	return &rentCar.Request{
		CarID:     carID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}, rentCar.NewScriptedPayer(r.Confirm, r.Payments...)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *rentCar.Response) *RentalResponse {
	return &RentalResponse{
		Reference:       resp.Reference,
		CarID:           resp.CarID,
		StartDate:       resp.StartDate.String(),
		EndDate:         resp.EndDate.String(),
		DaysBooked:      resp.DaysBooked,
		Rate:            resp.Rate,
		TotalCost:       resp.TotalCost,
		Paid:            resp.Paid,
		Change:          resp.Change,
		PaymentAttempts: resp.PaymentAttempts,
	}
}

// newErrorResponse собирает тело ошибки из плоского результата use case
func newErrorResponse(status int, message string, result rentCar.Result) *RentalErrorResponse {
	resp := &RentalErrorResponse{
		Code:      status,
		Message:   message,
		ErrorKind: string(result.ErrorKind),
		TotalCost: result.TotalCost,
		Shortfall: result.Shortfall,
	}
	if !result.ConflictDate.IsZero() {
		resp.ConflictDate = result.ConflictDate.String()
	}
	return resp
}
