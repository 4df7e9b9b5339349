package domain

import "sort"

// Car represents a rentable car in the fleet catalog
type Car struct {
	ID           int64
	Brand        string
	Model        string
	Year         string
	Rate         int64 // currency units per day
	ReservedDays ReservedDays
}

// CarSummary is the public view of a car without its reservation calendar
type CarSummary struct {
	ID    int64
	Brand string
	Model string
	Year  string
	Rate  int64
}

// Summary returns the public view of the car
func (c *Car) Summary() CarSummary {
	return CarSummary{
		ID:    c.ID,
		Brand: c.Brand,
		Model: c.Model,
		Year:  c.Year,
		Rate:  c.Rate,
	}
}

// Clone returns a deep copy, reservation set included
func (c *Car) Clone() *Car {
	clone := *c
	clone.ReservedDays = make(ReservedDays, len(c.ReservedDays))
	for d := range c.ReservedDays {
		clone.ReservedDays[d] = struct{}{}
	}
	return &clone
}

// ReservedDays is a set of calendar days a car is committed on
type ReservedDays map[Date]struct{}

// NewReservedDays builds a set, silently dropping duplicates
func NewReservedDays(days ...Date) ReservedDays {
	set := make(ReservedDays, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

func (s ReservedDays) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

func (s ReservedDays) Len() int {
	return len(s)
}

// Sorted returns the days in ascending order
func (s ReservedDays) Sorted() []Date {
	days := make([]Date, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
