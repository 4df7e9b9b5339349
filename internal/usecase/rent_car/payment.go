package rent_car

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

const (
	paymentResultAccepted     = "accepted"
	paymentResultInsufficient = "insufficient"
	paymentResultInvalid      = "invalid"
	paymentResultCancelled    = "cancelled"
)

// collectPayment проводит PaymentGate до конечного состояния.
// Возвращает шлюз в состоянии Paid или ошибку отмены/отказа/недоплаты
func (uc *UseCase) collectPayment(ctx context.Context, quote domain.Quote, payer Payer) (*domain.PaymentGate, error) {
	gate := domain.NewPaymentGate(quote.Total)

	// 1. Подтверждение стоимости
	accepted, err := payer.Confirm(ctx, quote)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentCancelled) || errors.Is(err, domain.ErrPaymentDeclined) {
			accepted = false
		} else {
			uc.logger.Error("RentCar: confirmation failed for car id=%d: %v", quote.CarID, err)
			return nil, fmt.Errorf("%w: confirmation failed: %v", ErrInternal, err)
		}
	}

	if err := gate.Confirm(accepted); err != nil {
		uc.logger.Info("RentCar: renter declined quote %d for car id=%d", quote.Total, quote.CarID)
		return nil, err
	}

	// 2. Прием оплаты, недоплата возвращает в то же состояние
	var lastShortfall *domain.InsufficientPaymentError
	underpayments := 0

	for !gate.IsTerminal() {
		if err := ctx.Err(); err != nil {
			_ = gate.Cancel()
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentCancelled, err)
		}

		shortfall := int64(0)
		if lastShortfall != nil {
			shortfall = lastShortfall.Shortfall
		}

		amount, err := payer.Pay(ctx, quote, shortfall)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrPaymentCancelled):
			_ = gate.Cancel()
			uc.metrics.RecordPaymentAttempt(paymentResultCancelled)
			uc.logger.Info("RentCar: payment cancelled for car id=%d", quote.CarID)
			return nil, domain.ErrPaymentCancelled
		case errors.Is(err, domain.ErrInvalidNumericInput):
			uc.metrics.RecordPaymentAttempt(paymentResultInvalid)
			uc.logger.Warn("RentCar: invalid payment input for car id=%d: %v", quote.CarID, err)
			continue
		case errors.Is(err, ErrNoMorePayments):
			_ = gate.Cancel()
			if lastShortfall != nil {
				return nil, lastShortfall
			}
			return nil, &domain.InsufficientPaymentError{Cost: quote.Total, Shortfall: quote.Total}
		default:
			_ = gate.Cancel()
			uc.logger.Error("RentCar: payer failed for car id=%d: %v", quote.CarID, err)
			return nil, fmt.Errorf("%w: payer failed: %v", ErrInternal, err)
		}

		err = gate.Pay(amount)

		var insufficient *domain.InsufficientPaymentError
		switch {
		case err == nil:
			uc.metrics.RecordPaymentAttempt(paymentResultAccepted)
		case errors.As(err, &insufficient):
			uc.metrics.RecordPaymentAttempt(paymentResultInsufficient)
			uc.logger.Info("RentCar: insufficient payment for car id=%d, short by %d", quote.CarID, insufficient.Shortfall)

			lastShortfall = insufficient
			underpayments++
			if uc.maxPaymentAttempts != domain.UnlimitedPaymentAttempts && underpayments >= uc.maxPaymentAttempts {
				_ = gate.Cancel()
				uc.logger.Warn("RentCar: payment attempts exhausted for car id=%d after %d tries", quote.CarID, underpayments)
				return nil, insufficient
			}
		case errors.Is(err, domain.ErrInvalidNumericInput):
			uc.metrics.RecordPaymentAttempt(paymentResultInvalid)
			uc.logger.Warn("RentCar: invalid payment amount for car id=%d: %v", quote.CarID, err)
		default:
			uc.logger.Error("RentCar: payment gate failed for car id=%d: %v", quote.CarID, err)
			return nil, fmt.Errorf("%w: payment gate: %v", ErrInternal, err)
		}
	}

	return gate, nil
}

// ScriptedPayer проигрывает заранее записанные ответы арендатора.
// Используется HTTP API, где подтверждение и суммы приходят в одном запросе
type ScriptedPayer struct {
	Accept   bool
	Payments []int64

	next int
}

// NewScriptedPayer создает Payer из готовых ответов
func NewScriptedPayer(accept bool, payments ...int64) *ScriptedPayer {
	return &ScriptedPayer{Accept: accept, Payments: payments}
}

// Confirm возвращает записанное решение
func (p *ScriptedPayer) Confirm(_ context.Context, _ domain.Quote) (bool, error) {
	return p.Accept, nil
}

// Pay возвращает следующую записанную сумму
func (p *ScriptedPayer) Pay(_ context.Context, _ domain.Quote, _ int64) (int64, error) {
	if p.next >= len(p.Payments) {
		return 0, ErrNoMorePayments
	}
	amount := p.Payments[p.next]
	p.next++
	return amount, nil
}
