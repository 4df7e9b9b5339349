package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	fleetRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type fleetSizeRecorder struct{ size int }

func (r *fleetSizeRecorder) SetFleetSize(size int) { r.size = size }

func newService(t *testing.T, cars ...*domain.Car) (*Service, *fleetRepo.Catalog, *fleetSizeRecorder) {
	t.Helper()
	catalog, err := fleetRepo.NewCatalogFromSnapshot(&fleetRepo.Snapshot{Cars: cars, LastID: int64(len(cars))})
	require.NoError(t, err)
	recorder := &fleetSizeRecorder{}
	return NewService(catalog, catalog, recorder, logger.Nop()), catalog, recorder
}

func ptr[T any](v T) *T { return &v }

func Test_Create_AssignsSequentialIDs(t *testing.T) {
	svc, _, recorder := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.CreateCarRequest{Brand: "Toyota", Model: "Camry", Year: "2020", Rate: 100000})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &models.CreateCarRequest{Brand: "Kia", Model: "Rio", Rate: 50000})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Empty(t, first.ReservedDays)
	assert.Equal(t, 2, recorder.size)
}

func Test_Create_IDsAreNotReusedAfterDelete(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.CreateCarRequest{Brand: "Toyota", Model: "Camry"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, first.ID))

	second, err := svc.Create(ctx, &models.CreateCarRequest{Brand: "Kia", Model: "Rio"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func Test_Create_Validation(t *testing.T) {
	svc, catalog, _ := newService(t)

	cases := map[string]models.CreateCarRequest{
		"missing brand": {Model: "Camry"},
		"missing model": {Brand: "Toyota", Model: "  "},
		"short year":    {Brand: "Toyota", Model: "Camry", Year: "20"},
		"letters year":  {Brand: "Toyota", Model: "Camry", Year: "20x0"},
		"negative rate": {Brand: "Toyota", Model: "Camry", Rate: -1},
		"huge rate":     {Brand: "Toyota", Model: "Camry", Rate: domain.MaxDailyRate + 1},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, catalog.Len())
}

func Test_Update_KeepsBlankFieldsAndCalendar(t *testing.T) {
	reserved := domain.NewReservedDays(domain.MustParseDate("2025-06-01"))
	svc, _, _ := newService(t, &domain.Car{ID: 1, Brand: "Toyota", Model: "Camry", Year: "2020", Rate: 100000, ReservedDays: reserved})

	updated, err := svc.Update(context.Background(), 1, &models.UpdateCarRequest{Brand: ptr(""), Model: ptr("Corolla"), Rate: ptr(int64(90000))})
	require.NoError(t, err)

	assert.Equal(t, "Toyota", updated.Brand)
	assert.Equal(t, "Corolla", updated.Model)
	assert.Equal(t, "2020", updated.Year)
	assert.Equal(t, int64(90000), updated.Rate)
	assert.Equal(t, []string{"2025-06-01"}, updated.ReservedDays)
}

func Test_Update_RejectsInvalidAndLeavesCarUntouched(t *testing.T) {
	svc, catalog, _ := newService(t, &domain.Car{ID: 1, Brand: "Toyota", Model: "Camry", Rate: 100000})

	_, err := svc.Update(context.Background(), 1, &models.UpdateCarRequest{Rate: ptr(int64(-5))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	car, err := catalog.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), car.Rate)
}

func Test_NotFound(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 7)
	assert.ErrorIs(t, err, ErrCarNotFound)

	_, err = svc.Update(ctx, 7, &models.UpdateCarRequest{})
	assert.ErrorIs(t, err, ErrCarNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 7), ErrCarNotFound)
}

func Test_List_PreservesCatalogOrder(t *testing.T) {
	svc, _, _ := newService(t,
		&domain.Car{ID: 3, Brand: "Lada", Model: "Vesta"},
		&domain.Car{ID: 1, Brand: "Toyota", Model: "Camry"},
	)

	list, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, list.Total)
	assert.Equal(t, int64(3), list.Cars[0].ID)
	assert.Equal(t, int64(1), list.Cars[1].ID)
}
