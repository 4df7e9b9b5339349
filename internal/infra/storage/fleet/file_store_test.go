package fleet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

func Test_FileStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cars.json"))

	snapshot, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snapshot.Cars)
	assert.Equal(t, int64(0), snapshot.LastID)
}

func Test_FileStore_LoadLegacyRentedDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.json")
	legacy := `{
    "cars": [
        {"id": 1, "brand": "Toyota", "model": "Avanza", "year": "2020", "rented_dates": ["2025-06-01", "2025-06-01"]}
    ],
    "car_id": 3
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	snapshot, err := NewFileStore(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, snapshot.Cars, 1)
	assert.Equal(t, int64(3), snapshot.LastID)
	assert.Equal(t, int64(0), snapshot.Cars[0].Rate)
	assert.Equal(t, []domain.Date{domain.MustParseDate("2025-06-01")}, snapshot.Cars[0].ReservedDays.Sorted())
}

func Test_FileStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cars.json")
	store := NewFileStore(path)

	car := &domain.Car{
		ID: 1, Brand: "Toyota", Model: "Avanza", Year: "2020", Rate: 100000,
		ReservedDays: domain.NewReservedDays(domain.MustParseDate("2025-06-03"), domain.MustParseDate("2025-06-01")),
	}
	require.NoError(t, store.Save(ctx, &Snapshot{Cars: []*domain.Car{car}, LastID: 1}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"reserved_days": [`)
	assert.Contains(t, string(raw), `"car_id": 1`)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Cars, 1)
	assert.Equal(t, car, loaded.Cars[0])
}

func Test_FileStore_LoadCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cars": [{"id": 1, "reserved_days": ["06/01/2025"]}]}`), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrDecode)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	_, err = NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}
