package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	FirstCarID     = 1
	MaxBrandLength = 100
	MaxModelLength = 100
	YearLength     = 4

	// MaxDailyRate caps a car's daily rate so that a year of rental stays far from int64 limits
	MaxDailyRate = int64(1_000_000_000_000)
)

// UnlimitedPaymentAttempts disables the underpayment limit of a booking attempt
const UnlimitedPaymentAttempts = 0

// DefaultMaxRentalDays is the longest rental accepted when nothing else is configured
const DefaultMaxRentalDays = 365
