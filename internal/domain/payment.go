package domain

import "fmt"

// PaymentState is a state of the confirm-then-pay protocol
type PaymentState string

const (
	PaymentAwaitingConfirmation      PaymentState = "awaiting_confirmation"
	PaymentAwaitingSufficientPayment PaymentState = "awaiting_sufficient_payment"
	PaymentPaid                      PaymentState = "paid"
	PaymentCancelled                 PaymentState = "cancelled"
)

// PaymentGate gates a reservation commit behind an accepted quote and a sufficient payment.
// Every transition is driven by exactly one external input; the gate never retries by itself.
//
//	AwaitingConfirmation --decline--> Cancelled
//	AwaitingConfirmation --accept---> AwaitingSufficientPayment
//	AwaitingSufficientPayment --pay < cost--> AwaitingSufficientPayment
//	AwaitingSufficientPayment --pay >= cost--> Paid
//	AwaitingSufficientPayment --cancel--> Cancelled
type PaymentGate struct {
	cost     int64
	state    PaymentState
	paid     int64
	attempts int
}

// NewPaymentGate starts the protocol for a quoted cost
func NewPaymentGate(cost int64) *PaymentGate {
	return &PaymentGate{cost: cost, state: PaymentAwaitingConfirmation}
}

func (g *PaymentGate) State() PaymentState { return g.state }
func (g *PaymentGate) Cost() int64         { return g.cost }
func (g *PaymentGate) Paid() int64         { return g.paid }

// Attempts is the number of accepted payment amounts, rejected negative input excluded
func (g *PaymentGate) Attempts() int { return g.attempts }

// Change is payment - cost once the gate is Paid, zero otherwise
func (g *PaymentGate) Change() int64 {
	if g.state != PaymentPaid {
		return 0
	}
	return g.paid - g.cost
}

// IsTerminal returns true for Paid and Cancelled
func (g *PaymentGate) IsTerminal() bool {
	return g.state == PaymentPaid || g.state == PaymentCancelled
}

// Confirm accepts or declines the quote. Declining cancels the gate and returns ErrPaymentDeclined.
func (g *PaymentGate) Confirm(accept bool) error {
	if g.state != PaymentAwaitingConfirmation {
		return fmt.Errorf("%w: confirm in state %s", ErrPaymentGateState, g.state)
	}
	if !accept {
		g.state = PaymentCancelled
		return ErrPaymentDeclined
	}
	g.state = PaymentAwaitingSufficientPayment
	return nil
}

// Pay submits an amount. Underpayment keeps the gate waiting and reports the shortfall
// as *InsufficientPaymentError; a negative amount is rejected with ErrInvalidNumericInput.
func (g *PaymentGate) Pay(amount int64) error {
	if g.state != PaymentAwaitingSufficientPayment {
		return fmt.Errorf("%w: pay in state %s", ErrPaymentGateState, g.state)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount %d is negative", ErrInvalidNumericInput, amount)
	}
	g.attempts++

	if amount < g.cost {
		return &InsufficientPaymentError{Cost: g.cost, Paid: amount, Shortfall: g.cost - amount}
	}

	g.paid = amount
	g.state = PaymentPaid
	return nil
}

// Cancel aborts the protocol from any non-terminal state
func (g *PaymentGate) Cancel() error {
	if g.IsTerminal() {
		return fmt.Errorf("%w: cancel in state %s", ErrPaymentGateState, g.state)
	}
	g.state = PaymentCancelled
	return nil
}
