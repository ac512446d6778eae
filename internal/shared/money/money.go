// Package money converts between minor currency units (as stored) and major
// unit decimal amounts. Conversions are exact: amounts are scaled by the
// currency's minor-unit exponent, never passed through floating point.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tessera-live/tessera/internal/shared/errors"
)

// minorUnitDigits maps ISO 4217 codes to their minor-unit exponent where it
// differs from the common case of 2.
var minorUnitDigits = map[string]int32{
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,
	"CLP": 0,
	"ISK": 0,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
}

// Digits returns the minor-unit exponent for the given currency code.
func Digits(currency string) int32 {
	if d, ok := minorUnitDigits[strings.ToUpper(currency)]; ok {
		return d
	}
	return 2
}

// MinorToUnit converts an amount in minor units to a major-unit decimal,
// e.g. 150000 minor units of a 2-digit currency become 1500.00.
func MinorToUnit(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -Digits(currency))
}

// UnitToMinor converts a major-unit decimal to minor units. It fails when the
// amount carries more precision than the currency supports.
func UnitToMinor(amount decimal.Decimal, currency string) (int64, error) {
	scaled := amount.Shift(Digits(currency))
	if !scaled.IsInteger() {
		return 0, errors.NewValidationError("amount has too many decimal places", amount.String())
	}
	return scaled.IntPart(), nil
}

// ParseAmount parses a textual decimal amount, rejecting empty input.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, errors.NewValidationError("amount is empty")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, errors.NewValidationError("malformed amount", s)
	}
	return d, nil
}
