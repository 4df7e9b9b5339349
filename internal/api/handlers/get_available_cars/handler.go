package get_available_cars

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	getAvailableCars "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
)

const (
	msgMissingDate = "не указан параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableCarsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableCarsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/available?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /cars/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableCars.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDateFormat):
			h.logger.Warn("GET /cars/available - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /cars/available - Failed to get available cars: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/available - %d cars available on %s", len(result.Cars), date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
