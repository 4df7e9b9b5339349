package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PaymentGate_DeclineCancels(t *testing.T) {
	g := NewPaymentGate(300000)

	err := g.Confirm(false)

	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Equal(t, PaymentCancelled, g.State())
	assert.ErrorIs(t, g.Pay(300000), ErrPaymentGateState)
	assert.ErrorIs(t, g.Confirm(true), ErrPaymentGateState)
}

func Test_PaymentGate_UnderpaymentStaysWaiting(t *testing.T) {
	g := NewPaymentGate(300000)
	require.NoError(t, g.Confirm(true))

	for i := 0; i < 5; i++ {
		err := g.Pay(100000)

		var shortErr *InsufficientPaymentError
		require.True(t, errors.As(err, &shortErr))
		assert.Equal(t, int64(200000), shortErr.Shortfall)
		assert.ErrorIs(t, err, ErrInsufficientPayment)
		assert.Equal(t, PaymentAwaitingSufficientPayment, g.State())
	}

	require.NoError(t, g.Pay(350000))
	assert.Equal(t, PaymentPaid, g.State())
	assert.Equal(t, int64(50000), g.Change())
	assert.Equal(t, 6, g.Attempts())
}

func Test_PaymentGate_NegativeAmount(t *testing.T) {
	g := NewPaymentGate(10)
	require.NoError(t, g.Confirm(true))

	assert.ErrorIs(t, g.Pay(-1), ErrInvalidNumericInput)
	assert.Equal(t, PaymentAwaitingSufficientPayment, g.State())
	assert.Equal(t, int64(0), g.Change())
	assert.Equal(t, 0, g.Attempts())

	require.NoError(t, g.Pay(10))
	assert.Equal(t, 1, g.Attempts())
}

func Test_PaymentGate_ExactPaymentZeroChange(t *testing.T) {
	g := NewPaymentGate(300000)
	require.NoError(t, g.Confirm(true))
	require.NoError(t, g.Pay(300000))

	assert.Equal(t, int64(0), g.Change())
	assert.True(t, g.IsTerminal())
	assert.ErrorIs(t, g.Cancel(), ErrPaymentGateState)
}

func Test_PaymentGate_CancelWhileToppingUp(t *testing.T) {
	g := NewPaymentGate(300000)
	require.NoError(t, g.Confirm(true))
	_ = g.Pay(1)

	require.NoError(t, g.Cancel())
	assert.Equal(t, PaymentCancelled, g.State())
}

func Test_PaymentGate_ZeroCost(t *testing.T) {
	g := NewPaymentGate(0)
	require.NoError(t, g.Confirm(true))
	require.NoError(t, g.Pay(0))
	assert.Equal(t, PaymentPaid, g.State())
}
