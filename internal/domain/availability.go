package domain

// IsAvailable returns true if the car is not reserved on date
func (c *Car) IsAvailable(date Date) bool {
	return !c.ReservedDays.Has(date)
}

// FindConflicts returns the requested days that are already reserved,
// in the order they appear in requested
func (c *Car) FindConflicts(requested []Date) []Date {
	conflicts := make([]Date, 0)
	for _, d := range requested {
		if c.ReservedDays.Has(d) {
			conflicts = append(conflicts, d)
		}
	}
	return conflicts
}

// Reserve commits the days to the car's calendar.
// It must run only after a clean conflict check and a completed payment;
// days already present are not duplicated. Returns how many days were added.
func (c *Car) Reserve(days []Date) int {
	if c.ReservedDays == nil {
		c.ReservedDays = make(ReservedDays, len(days))
	}
	added := 0
	for _, d := range days {
		if c.ReservedDays.Has(d) {
			continue
		}
		c.ReservedDays[d] = struct{}{}
		added++
	}
	return added
}

// ListAvailableOn returns the cars free on date, preserving catalog order.
// An empty result is a valid outcome.
func ListAvailableOn(date Date, fleet []*Car) []*Car {
	available := make([]*Car, 0, len(fleet))
	for _, car := range fleet {
		if car.IsAvailable(date) {
			available = append(available, car)
		}
	}
	return available
}
