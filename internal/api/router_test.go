package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/delete_car"
	getAvailableCarsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_available_cars"
	getCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_car"
	listCarsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/list_cars"
	rentCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/rent_car"
	updateCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/update_car"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	fleetRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
	fleetService "github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
	getAvailableCarsUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
	rentCarUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC) }

type noopMetrics struct{}

func (noopMetrics) RecordBooking(string, int, int64) {}
func (noopMetrics) RecordPaymentAttempt(string)      {}
func (noopMetrics) SetFleetSize(int)                 {}

func newTestRouter(t *testing.T) (http.Handler, *fleetRepo.Catalog) {
	t.Helper()

	catalog, err := fleetRepo.NewCatalogFromSnapshot(&fleetRepo.Snapshot{
		Cars: []*domain.Car{
			{ID: 1, Brand: "Toyota", Model: "Camry", Year: "2020", Rate: 100000},
			{ID: 2, Brand: "Kia", Model: "Rio", Year: "2019", Rate: 50000},
		},
		LastID: 2,
	})
	require.NoError(t, err)

	log := logger.Nop()
	svc := fleetService.NewService(catalog, catalog, noopMetrics{}, log)
	rentCar := rentCarUC.NewUseCase(catalog, catalog, noopMetrics{}, fixedClock{}, log, 0, domain.DefaultMaxRentalDays)
	available := getAvailableCarsUC.NewUseCase(catalog, catalog, log)

	router := NewRouter(Handlers{
		ListCars:      listCarsHandler.NewHandler(svc, log).Handle,
		GetCar:        getCarHandler.NewHandler(svc, log).Handle,
		AvailableCars: getAvailableCarsHandler.NewHandler(available, log).Handle,
		RentCar:       rentCarHandler.NewHandler(rentCar, log).Handle,
		CreateCar:     createCarHandler.NewHandler(svc, log).Handle,
		UpdateCar:     updateCarHandler.NewHandler(svc, log).Handle,
		DeleteCar:     deleteCarHandler.NewHandler(svc, log).Handle,
	}, MetricsOptions{})

	return router, catalog
}

func do(t *testing.T, h http.Handler, method, path, role string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if role != "" {
		req.Header.Set(middleware.RoleHeader, role)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func Test_Rental_CommitThenConflict(t *testing.T) {
	router, catalog := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/cars/1/rentals", middleware.RoleRenter, rentCarHandler.RentCarRequest{
		StartDate: "2025-06-01", EndDate: "2025-06-03", Confirm: true, Payments: []int64{250000, 300000},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var rental rentCarHandler.RentalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rental))
	assert.Equal(t, int64(300000), rental.TotalCost)
	assert.Equal(t, 3, rental.DaysBooked)
	assert.Equal(t, int64(0), rental.Change)
	assert.Equal(t, 2, rental.PaymentAttempts)

	rec = do(t, router, http.MethodPost, "/api/v1/cars/1/rentals", middleware.RoleRenter, rentCarHandler.RentCarRequest{
		StartDate: "2025-06-02", EndDate: "2025-06-04", Confirm: true, Payments: []int64{300000},
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var rejected rentCarHandler.RentalErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rejected))
	assert.Equal(t, "date_conflict", rejected.ErrorKind)
	assert.Equal(t, "2025-06-02", rejected.ConflictDate)

	car, err := catalog.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, car.ReservedDays.Len())
}

func Test_Rental_StatusMapping(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		path string
		body rentCarHandler.RentCarRequest
		want int
	}{
		{"inverted range", "/api/v1/cars/1/rentals", rentCarHandler.RentCarRequest{StartDate: "2025-06-05", EndDate: "2025-06-01", Confirm: true}, http.StatusBadRequest},
		{"past start", "/api/v1/cars/1/rentals", rentCarHandler.RentCarRequest{StartDate: "2025-05-01", EndDate: "2025-05-02", Confirm: true}, http.StatusBadRequest},
		{"bad format", "/api/v1/cars/1/rentals", rentCarHandler.RentCarRequest{StartDate: "June 1", EndDate: "2025-06-02", Confirm: true}, http.StatusBadRequest},
		{"unknown car", "/api/v1/cars/99/rentals", rentCarHandler.RentCarRequest{StartDate: "2025-06-01", EndDate: "2025-06-02", Confirm: true}, http.StatusNotFound},
		{"declined", "/api/v1/cars/1/rentals", rentCarHandler.RentCarRequest{StartDate: "2025-06-01", EndDate: "2025-06-02"}, http.StatusUnprocessableEntity},
		{"underpaid", "/api/v1/cars/2/rentals", rentCarHandler.RentCarRequest{StartDate: "2025-06-01", EndDate: "2025-06-02", Confirm: true, Payments: []int64{99999}}, http.StatusPaymentRequired},
		{"too long", "/api/v1/cars/1/rentals", rentCarHandler.RentCarRequest{StartDate: "2025-06-01", EndDate: "9999-12-31", Confirm: true, Payments: []int64{1}}, http.StatusBadRequest},
		{"non-numeric id", "/api/v1/cars/abc/rentals", rentCarHandler.RentCarRequest{}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, tc.path, middleware.RoleRenter, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func Test_Rental_RequiresRole(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/cars/1/rentals", "", rentCarHandler.RentCarRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_AvailableCars(t *testing.T) {
	router, catalog := newTestRouter(t)
	_, err := catalog.Reserve(context.Background(), 1, []domain.Date{domain.MustParseDate("2025-06-01")})
	require.NoError(t, err)

	rec := do(t, router, http.MethodGet, "/api/v1/cars/available?date=2025-06-01", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp getAvailableCarsHandler.AvailableCarsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cars, 1)
	assert.Equal(t, int64(2), resp.Cars[0].ID)

	rec = do(t, router, http.MethodGet, "/api/v1/cars/available?date=01-06-2025", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/cars/available", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_AdminRoutes(t *testing.T) {
	router, catalog := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/cars", middleware.RoleRenter, map[string]interface{}{"brand": "Lada", "model": "Vesta"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/cars", middleware.RoleAdmin, map[string]interface{}{"brand": "Lada", "model": "Vesta", "year": "2022", "rate": 30000})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 3, catalog.Len())

	rec = do(t, router, http.MethodPost, "/api/v1/cars", middleware.RoleAdmin, map[string]interface{}{"brand": "Lada"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/v1/cars/3", middleware.RoleAdmin, map[string]interface{}{"rate": 35000})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/cars/3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rate":35000`)

	rec = do(t, router, http.MethodDelete, "/api/v1/cars/3", middleware.RoleAdmin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/v1/cars/3", middleware.RoleAdmin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/cars", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}
