package fleet

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// validateCar проверяет описательные поля и тариф
func validateCar(car *domain.Car) error {
	if strings.TrimSpace(car.Brand) == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if len(car.Brand) > domain.MaxBrandLength {
		return fmt.Errorf("%w: brand is longer than %d characters", ErrInvalidInput, domain.MaxBrandLength)
	}

	if strings.TrimSpace(car.Model) == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if len(car.Model) > domain.MaxModelLength {
		return fmt.Errorf("%w: model is longer than %d characters", ErrInvalidInput, domain.MaxModelLength)
	}

	// Год необязателен, но если указан - ровно 4 цифры
	if car.Year != "" {
		if len(car.Year) != domain.YearLength || strings.IndexFunc(car.Year, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
			return fmt.Errorf("%w: year must be %d digits", ErrInvalidInput, domain.YearLength)
		}
	}

	if car.Rate < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrNegativeRate)
	}
	if car.Rate > domain.MaxDailyRate {
		return fmt.Errorf("%w: rate must not exceed %d", ErrInvalidInput, domain.MaxDailyRate)
	}

	return nil
}
