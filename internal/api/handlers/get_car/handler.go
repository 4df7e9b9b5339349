package get_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
)

const (
	msgInvalidCarID = "некорректный ID автомобиля"
	msgNotFound     = "автомобиль не найден"
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

// Handle GET /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	car, err := h.service.GetByID(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /cars/{id} - Failed to get car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, car)
}
