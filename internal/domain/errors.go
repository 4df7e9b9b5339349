package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateFormat returned when a date is not YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("domain: invalid date format, expected YYYY-MM-DD")

	// ErrInvalidRange returned when the end date is before the start date
	ErrInvalidRange = errors.New("domain: end date is before start date")

	// ErrPastStartDate returned when the range starts before today
	ErrPastStartDate = errors.New("domain: start date is in the past")

	// ErrDateConflict returned when a requested day is already reserved
	ErrDateConflict = errors.New("domain: car is already rented on requested date")

	// ErrPaymentDeclined returned when the renter declines the quote
	ErrPaymentDeclined = errors.New("domain: payment declined")

	// ErrPaymentCancelled returned when the renter gives up while topping up
	ErrPaymentCancelled = errors.New("domain: payment cancelled")

	// ErrInsufficientPayment returned when the paid amount is below the quote
	ErrInsufficientPayment = errors.New("domain: insufficient payment")

	// ErrInvalidNumericInput returned for negative or unparsable amounts
	ErrInvalidNumericInput = errors.New("domain: invalid numeric input")

	// ErrPaymentGateState returned when a gate operation does not match its current state
	ErrPaymentGateState = errors.New("domain: operation not allowed in current payment state")

	// ErrNegativeRate returned when a daily rate is negative
	ErrNegativeRate = errors.New("domain: daily rate must be non-negative")

	// ErrCostOverflow returned when rate * days does not fit into int64
	ErrCostOverflow = errors.New("domain: rental cost is too large")

	// ErrRentalTooLong returned when a range has more days than allowed
	ErrRentalTooLong = errors.New("domain: rental period is too long")
)

// DateConflictError reports the first conflicting day of a booking request.
type DateConflictError struct {
	CarID     int64
	Date      Date
	Conflicts []Date
}

func (e *DateConflictError) Error() string {
	return fmt.Sprintf("%v: car id=%d, date=%s", ErrDateConflict, e.CarID, e.Date)
}

func (e *DateConflictError) Unwrap() error {
	return ErrDateConflict
}

// InsufficientPaymentError carries the missing amount.
type InsufficientPaymentError struct {
	Cost      int64
	Paid      int64
	Shortfall int64
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("%v: paid %d of %d, short by %d", ErrInsufficientPayment, e.Paid, e.Cost, e.Shortfall)
}

func (e *InsufficientPaymentError) Unwrap() error {
	return ErrInsufficientPayment
}
