package update_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet/models"
)

const (
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCar         = "некорректные данные автомобиля"
	msgNotFound           = "автомобиль не найден"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req models.UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cars/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.Update(r.Context(), carID, &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrCarNotFound):
			h.logger.Warn("PATCH /cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("PATCH /cars/{id} - Invalid car: car_id=%d, error=%v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidCar)
		default:
			h.logger.Error("PATCH /cars/{id} - Failed to update car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cars/{id} - Car updated: car_id=%d", carID)
	handlers.RespondJSON(w, http.StatusOK, car)
}
