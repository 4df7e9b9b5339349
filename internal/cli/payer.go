package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

const cancelCommand = "cancel"

// promptPayer запрашивает подтверждение и суммы оплаты у оператора
type promptPayer struct {
	shell *Shell
}

func (p *promptPayer) Confirm(_ context.Context, quote domain.Quote) (bool, error) {
	p.shell.printf("Rental %s: %d day(s) x %d = %d\n", quote.Range, quote.Days, quote.Rate, quote.Total)

	for {
		answer, err := p.shell.prompt("Confirm rental? (yes/no): ")
		if err != nil {
			return false, inputClosed(err)
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			p.shell.printf("Please answer 'yes' or 'no'.\n")
		}
	}
}

func (p *promptPayer) Pay(_ context.Context, quote domain.Quote, shortfall int64) (int64, error) {
	if shortfall > 0 {
		p.shell.printf("Insufficient payment: %d short of %d. Try again.\n", shortfall, quote.Total)
	}

	answer, err := p.shell.prompt(fmt.Sprintf("Enter payment amount (%d) or '%s': ", quote.Total, cancelCommand))
	if err != nil {
		return 0, inputClosed(err)
	}

	if strings.EqualFold(answer, cancelCommand) {
		return 0, domain.ErrPaymentCancelled
	}

	amount, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || amount < 0 {
		p.shell.printf("Invalid amount. Please enter a whole non-negative number.\n")
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumericInput, answer)
	}

	return amount, nil
}

// inputClosed превращает конец ввода в отмену оплаты
func inputClosed(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: input closed", domain.ErrPaymentCancelled)
	}
	return err
}
