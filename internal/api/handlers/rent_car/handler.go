package rent_car

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	rentCar "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCarID        = "некорректный ID автомобиля"
	msgInvalidDateFormat   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange        = "дата окончания раньше даты начала"
	msgPastStartDate       = "нельзя арендовать автомобиль на прошедшие даты"
	msgCarNotFound         = "автомобиль не найден"
	msgDateConflict        = "автомобиль уже арендован на выбранные даты"
	msgPaymentDeclined     = "аренда отменена: стоимость не подтверждена"
	msgPaymentCancelled    = "аренда отменена во время оплаты"
	msgInsufficientPayment = "недостаточно средств для оплаты аренды"
	msgInvalidAmount       = "некорректная сумма оплаты"
	msgRentalTooLong       = "слишком длинный срок аренды"
	msgCostOverflow        = "стоимость аренды слишком велика"
)

type Handler struct {
	useCase RentCarUseCase
	logger  Logger
}

func NewHandler(useCase RentCarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars/{carId}/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /cars/{id}/rentals - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req RentCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars/{id}/rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, payer := req.ToUseCaseRequest(carID)

	result, err := h.useCase.Execute(r.Context(), useCaseReq, payer)
	if err != nil {
		summary := rentCar.ToResult(nil, err)

		var status int
		var message string
		switch summary.ErrorKind {
		case rentCar.KindInvalidDateFormat:
			status, message = http.StatusBadRequest, msgInvalidDateFormat
		case rentCar.KindInvalidRange:
			status, message = http.StatusBadRequest, msgInvalidRange
		case rentCar.KindPastStartDate:
			status, message = http.StatusBadRequest, msgPastStartDate
		case rentCar.KindRentalTooLong:
			status, message = http.StatusBadRequest, msgRentalTooLong
		case rentCar.KindCostOverflow:
			status, message = http.StatusBadRequest, msgCostOverflow
		case rentCar.KindInvalidNumericInput, rentCar.KindInvalidInput:
			status, message = http.StatusBadRequest, msgInvalidAmount
		case rentCar.KindCarNotFound:
			status, message = http.StatusNotFound, msgCarNotFound
		case rentCar.KindDateConflict:
			status, message = http.StatusConflict, msgDateConflict
		case rentCar.KindInsufficientPayment:
			status, message = http.StatusPaymentRequired, msgInsufficientPayment
		case rentCar.KindPaymentDeclined:
			status, message = http.StatusUnprocessableEntity, msgPaymentDeclined
		case rentCar.KindPaymentCancelled:
			status, message = http.StatusUnprocessableEntity, msgPaymentCancelled
		default:
			h.logger.Error("POST /cars/{id}/rentals - Failed to rent car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Warn("POST /cars/{id}/rentals - Rental rejected: car_id=%d, kind=%s", carID, summary.ErrorKind)
		handlers.RespondJSON(w, status, newErrorResponse(status, message, summary))
		return
	}

	h.logger.Info("POST /cars/{id}/rentals - Rental committed: reference=%s, car_id=%d, days=%d",
		result.Reference, carID, result.DaysBooked)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
