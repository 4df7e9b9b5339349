package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = MustParseDate("2025-05-20")

func Test_NewDateRange_Validation(t *testing.T) {
	_, err := NewDateRange(MustParseDate("2025-06-05"), MustParseDate("2025-06-01"), today)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(MustParseDate("2025-05-19"), MustParseDate("2025-06-01"), today)
	assert.ErrorIs(t, err, ErrPastStartDate)

	r, err := NewDateRange(today, today, today)
	require.NoError(t, err)
	assert.Equal(t, 1, r.DayCount())
}

func Test_DateRange_ExpandMatchesDayCount(t *testing.T) {
	start := MustParseDate("2025-05-25")
	for n := 0; n < 400; n += 7 {
		r, err := NewDateRange(start, start.AddDays(n), today)
		require.NoError(t, err)

		days := r.Expand()
		assert.Len(t, days, r.DayCount())
		assert.Equal(t, start.DaysUntil(start.AddDays(n))+1, r.DayCount())
		assert.Equal(t, r.Start(), days[0])
		assert.Equal(t, r.End(), days[len(days)-1])
	}
}

func Test_DateRange_ExpandIsOrderedAndRestartable(t *testing.T) {
	r, err := NewDateRange(MustParseDate("2025-06-29"), MustParseDate("2025-07-02"), today)
	require.NoError(t, err)

	expected := []Date{
		MustParseDate("2025-06-29"),
		MustParseDate("2025-06-30"),
		MustParseDate("2025-07-01"),
		MustParseDate("2025-07-02"),
	}
	assert.Equal(t, expected, r.Expand())
	assert.Equal(t, expected, r.Expand())
	assert.Equal(t, "2025-06-29..2025-07-02", r.String())
}

func Test_DateRange_CheckLength(t *testing.T) {
	r, err := NewDateRange(MustParseDate("2025-06-01"), MustParseDate("9999-12-31"), today)
	require.NoError(t, err)
	assert.ErrorIs(t, r.CheckLength(DefaultMaxRentalDays), ErrRentalTooLong)
	assert.NoError(t, r.CheckLength(0))

	year, err := NewDateRange(MustParseDate("2025-06-01"), MustParseDate("2026-05-31"), today)
	require.NoError(t, err)
	assert.Equal(t, 365, year.DayCount())
	assert.Equal(t, 2912657, r.DayCount())
	assert.NoError(t, year.CheckLength(365))
	assert.ErrorIs(t, year.CheckLength(364), ErrRentalTooLong)
}
