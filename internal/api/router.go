package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
)

// Handlers обработчики всех маршрутов API
type Handlers struct {
	ListCars      http.HandlerFunc
	GetCar        http.HandlerFunc
	AvailableCars http.HandlerFunc
	RentCar       http.HandlerFunc
	CreateCar     http.HandlerFunc
	UpdateCar     http.HandlerFunc
	DeleteCar     http.HandlerFunc
}

// MetricsOptions настройки prometheus. Пустой Recorder отключает метрики
type MetricsOptions struct {
	Recorder middleware.HTTPMetrics
	Path     string
	Handler  http.Handler
}

// NewRouter собирает маршруты /api/v1
func NewRouter(h Handlers, metrics MetricsOptions) *mux.Router {
	r := mux.NewRouter()

	if metrics.Recorder != nil {
		r.Use(middleware.MetricsMiddleware(metrics.Recorder))
		if metrics.Handler != nil {
			r.Handle(metrics.Path, metrics.Handler).Methods(http.MethodGet)
		}
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Свободные на дату автомобили. Регистрируется раньше /cars/{carId}
	api.HandleFunc("/cars/available", h.AvailableCars).Methods(http.MethodGet)

	api.HandleFunc("/cars", h.ListCars).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", h.GetCar).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Role header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Аренда доступна любой роли
	protected.HandleFunc("/cars/{carId}/rentals", h.RentCar).Methods(http.MethodPost)

	// --- Управление автопарком (только admin) ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/cars", h.CreateCar).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{carId}", h.UpdateCar).Methods(http.MethodPatch)
	admin.HandleFunc("/cars/{carId}", h.DeleteCar).Methods(http.MethodDelete)

	return r
}
