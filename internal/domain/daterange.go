package domain

import "fmt"

// DateRange is an inclusive [start, end] interval of calendar days.
// It can only be built through NewDateRange and is immutable afterwards.
type DateRange struct {
	start Date
	end   Date
}

// NewDateRange validates ordering and rejects ranges starting before today.
func NewDateRange(start, end, today Date) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, ErrInvalidRange
	}
	if start.Before(today) {
		return DateRange{}, ErrPastStartDate
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

// DayCount is the number of days in the range, both ends included.
func (r DateRange) DayCount() int {
	return r.start.DaysUntil(r.end) + 1
}

// Expand lists every day from start to end inclusive, in order.
func (r DateRange) Expand() []Date {
	days := make([]Date, 0, r.DayCount())
	for d := r.start; !d.After(r.end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// CheckLength rejects ranges longer than maxDays. maxDays <= 0 disables the check.
func (r DateRange) CheckLength(maxDays int) error {
	if maxDays > 0 && r.DayCount() > maxDays {
		return fmt.Errorf("%w: %d days, at most %d allowed", ErrRentalTooLong, r.DayCount(), maxDays)
	}
	return nil
}

func (r DateRange) String() string {
	return r.start.String() + ".." + r.end.String()
}
