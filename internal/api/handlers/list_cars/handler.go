package list_cars

import (
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
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

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars - Cars listed: total=%d", cars.Total)
	handlers.RespondJSON(w, http.StatusOK, cars)
}
