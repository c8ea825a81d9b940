package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a string amount and converts it to cents.
// Works on the decimal string directly so no floating point is involved:
// "10" -> 1000, "10.5" -> 1050, "10.50" -> 1050.
// Rejects empty input, negative values, zero, and more than two decimal places.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrInvalidAmount
	}
	amount = strings.TrimPrefix(amount, "+")

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var digits string
	if len(parts) == 1 {
		digits = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			digits = parts[0] + "00"
		case 1:
			digits = parts[0] + parts[1] + "0"
		case 2:
			digits = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	// Amounts are unsigned; the sign is carried by the transaction type.
	if value <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	return value, nil
}

// FormatCents converts an amount in cents to a decimal string with two places.
// 1015 -> "10.15", -1000 -> "-10.00".
func FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	digits := strconv.FormatInt(cents, 10)
	for len(digits) < 3 {
		digits = "0" + digits
	}

	split := len(digits) - 2
	formatted := digits[:split] + "." + digits[split:]
	if negative {
		return "-" + formatted
	}
	return formatted
}
