package domain

import (
	"fmt"
	"math"
)

// Cost returns rate * number of days in the range. Rate is whole currency units.
// A product that does not fit into int64 is rejected with ErrCostOverflow.
func Cost(rate int64, r DateRange) (int64, error) {
	if rate < 0 {
		return 0, ErrNegativeRate
	}
	days := int64(r.DayCount())
	if rate > math.MaxInt64/days {
		return 0, fmt.Errorf("%w: %d x %d days", ErrCostOverflow, rate, days)
	}
	return rate * days, nil
}

// Quote is the price presented to the renter before payment is collected
type Quote struct {
	CarID int64
	Range DateRange
	Days  int
	Rate  int64
	Total int64
}

// NewQuote prices a range for a car
func NewQuote(car *Car, r DateRange) (Quote, error) {
	total, err := Cost(car.Rate, r)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		CarID: car.ID,
		Range: r,
		Days:  r.DayCount(),
		Rate:  car.Rate,
		Total: total,
	}, nil
}
