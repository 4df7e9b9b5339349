package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	fleetRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
	fleetService "github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
	getAvailableCarsUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
	rentCarUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC) }

type noopMetrics struct{}

func (noopMetrics) RecordBooking(string, int, int64) {}
func (noopMetrics) RecordPaymentAttempt(string)      {}
func (noopMetrics) SetFleetSize(int)                 {}

func runSession(t *testing.T, catalog *fleetRepo.Catalog, lines ...string) string {
	t.Helper()

	log := logger.Nop()
	svc := fleetService.NewService(catalog, catalog, noopMetrics{}, log)
	rent := rentCarUC.NewUseCase(catalog, catalog, noopMetrics{}, fixedClock{}, log, 0, 0)
	available := getAvailableCarsUC.NewUseCase(catalog, catalog, log)

	var out bytes.Buffer
	shell := NewShell(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, svc, rent, available, log)
	require.NoError(t, shell.Run(context.Background()))

	return out.String()
}

func newCatalog(t *testing.T) *fleetRepo.Catalog {
	t.Helper()
	catalog, err := fleetRepo.NewCatalogFromSnapshot(&fleetRepo.Snapshot{
		Cars:   []*domain.Car{{ID: 1, Brand: "Toyota", Model: "Camry", Year: "2020", Rate: 100000}},
		LastID: 1,
	})
	require.NoError(t, err)
	return catalog
}

func Test_Shell_RentWithRetryAndCancelWord(t *testing.T) {
	catalog := newCatalog(t)

	out := runSession(t, catalog,
		"guest", "renter",
		// первая аренда: недоплата, нечисловой ввод, затем полная сумма
		"3", "1", "2025-06-01", "2025-06-03", "yes", "1000", "abc", "300000",
		// вторая аренда пересекается с первой
		"3", "1", "2025-06-02", "2025-06-04",
		// третья: отмена во время оплаты
		"3", "1", "2025-06-10", "2025-06-10", "y", "5", "cancel",
		"4",
	)

	assert.Contains(t, out, "Invalid role. Please enter 'admin' or 'renter'.")
	assert.Contains(t, out, "Rental 2025-06-01..2025-06-03: 3 day(s) x 100000 = 300000")
	assert.Contains(t, out, "Insufficient payment: 299000 short of 300000. Try again.")
	assert.Contains(t, out, "Invalid amount. Please enter a whole non-negative number.")
	assert.Contains(t, out, "Car rented for 2025-06-01..2025-06-03 (3 day(s)). Total: 300000, change: 0.")
	assert.Contains(t, out, "Car is already rented on 2025-06-02.")
	assert.Contains(t, out, "Payment cancelled. Rental not booked.")
	assert.Contains(t, out, "Data saved. Exiting...")

	car, err := catalog.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, car.ReservedDays.Len())
}

func Test_Shell_RentValidationMessages(t *testing.T) {
	out := runSession(t, newCatalog(t),
		"renter",
		"3", "x",
		"3", "7", "2025-06-01", "2025-06-02",
		"3", "1", "2025-06-05", "2025-06-01",
		"3", "1", "2025-05-01", "2025-05-02",
		"3", "1", "06/01/2025", "2025-06-02",
		"3", "1", "2025-06-01", "2025-06-01", "no",
		"4",
	)

	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "Car ID not found.")
	assert.Contains(t, out, "End date cannot be before start date.")
	assert.Contains(t, out, "Cannot rent a car for past dates.")
	assert.Contains(t, out, "Invalid date format.")
	assert.Contains(t, out, "Rental cancelled.")
}

func Test_Shell_AdminMaintainsFleet(t *testing.T) {
	catalog := newCatalog(t)

	out := runSession(t, catalog,
		"admin",
		"3", "Kia", "Rio", "2019", "50000",
		"4", "2", "", "Ceed", "", "",
		"5", "1",
		"2", "2025-06-01",
		"9",
		"6",
	)

	assert.Contains(t, out, "Car added with ID: 2")
	assert.Contains(t, out, "Car updated.")
	assert.Contains(t, out, "Car 'Camry' deleted.")
	assert.Contains(t, out, "- ID: 2, Brand: Kia, Model: Ceed, Year: 2019, Rate: 50000")
	assert.Contains(t, out, "Invalid choice.")

	require.Equal(t, 1, catalog.Len())
	car, err := catalog.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Ceed", car.Model)
	assert.Equal(t, int64(50000), car.Rate)
}

func Test_Shell_ChangeRoleAndEndOfInput(t *testing.T) {
	out := runSession(t, newCatalog(t), "admin", "0", "renter", "1")

	assert.Contains(t, out, "Logged in as: ADMIN")
	assert.Contains(t, out, "Logged in as: RENTER")
	assert.Contains(t, out, "ID: 1, Brand: Toyota, Model: Camry, Year: 2020, Rate: 100000, Rented Dates: None")
	assert.NotContains(t, out, "Data saved. Exiting...")
}
