package get_available_cars

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/storage/fleet"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

func newCatalog(t *testing.T, cars ...*domain.Car) *fleet.Catalog {
	t.Helper()
	catalog, err := fleet.NewCatalogFromSnapshot(&fleet.Snapshot{Cars: cars})
	require.NoError(t, err)
	return catalog
}

func Test_Execute_ExcludesReservedCars(t *testing.T) {
	catalog := newCatalog(t,
		&domain.Car{ID: 1, Brand: "Toyota", Model: "Camry", Year: "2020", Rate: 100000,
			ReservedDays: domain.NewReservedDays(domain.MustParseDate("2025-06-01"), domain.MustParseDate("2025-06-02"))},
		&domain.Car{ID: 2, Brand: "Kia", Model: "Rio", Year: "2019", Rate: 50000},
		&domain.Car{ID: 3, Brand: "Lada", Model: "Vesta", Rate: 30000},
	)
	uc := NewUseCase(catalog, catalog, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01"})
	require.NoError(t, err)

	assert.Equal(t, domain.MustParseDate("2025-06-01"), resp.Date)
	assert.Equal(t, []domain.CarSummary{
		{ID: 2, Brand: "Kia", Model: "Rio", Year: "2019", Rate: 50000},
		{ID: 3, Brand: "Lada", Model: "Vesta", Rate: 30000},
	}, resp.Cars)
}

func Test_Execute_EmptyResultIsNotAnError(t *testing.T) {
	day := domain.MustParseDate("2025-06-01")
	catalog := newCatalog(t, &domain.Car{ID: 1, Brand: "Toyota", Model: "Camry", ReservedDays: domain.NewReservedDays(day)})
	uc := NewUseCase(catalog, catalog, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Cars)
	assert.Empty(t, resp.Cars)
}

func Test_Execute_PastDateIsAllowed(t *testing.T) {
	catalog := newCatalog(t, &domain.Car{ID: 1, Brand: "Toyota", Model: "Camry"})
	uc := NewUseCase(catalog, catalog, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "1999-01-01"})
	require.NoError(t, err)
	assert.Len(t, resp.Cars, 1)
}

func Test_Execute_InvalidDate(t *testing.T) {
	catalog := newCatalog(t)
	uc := NewUseCase(catalog, catalog, logger.Nop())

	for _, date := range []string{"", "2025-13-01", "01.06.2025", "2025-02-30"} {
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat, "date=%q", date)
	}
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]*domain.Car, error) {
	return nil, errors.New("connection refused")
}

func Test_Execute_RepositoryFailure(t *testing.T) {
	catalog := newCatalog(t)
	uc := NewUseCase(failingRepo{}, catalog, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01"})
	assert.ErrorIs(t, err, ErrInternal)
}
