/*
parse.go - Parse-at-boundary helpers for amounts and percentages

PURPOSE:
  Amounts frequently arrive from the legacy system as strings with
  Brazilian formatting: comma decimal separator, dot thousands separator,
  optional "R$" prefix ("R$ 1.234,56"). These helpers convert such values
  to typed decimals ONCE, at the point data enters the engine. Nothing
  downstream ever handles a numeric string; unparseable values are
  rejected here and quarantined by the caller as warnings.
*/
package rubric

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney converts a boundary amount string into Money. Accepts plain
// decimals ("1234.56") and Brazilian formatting ("R$ 1.234,56").
func ParseMoney(s string) (Money, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d}, nil
}

// ParsePercentage converts a boundary percentage string ("8", "8,5",
// "8.5%") into a decimal.
func ParsePercentage(s string) (decimal.Decimal, error) {
	return parseDecimal(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// MoneyFromFloat64 converts a float crossing an API boundary into Money.
// NaN and infinities indicate a programming error in the caller and fail
// fast with ErrInvalidBaseSalary.
func MoneyFromFloat64(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, ErrInvalidBaseSalary
	}
	return NewMoney(f), nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, &UnparseableAmountError{Raw: raw}
	}

	// Comma present: treat it as the decimal separator and any dots as
	// thousands separators. Otherwise the string is already in canonical
	// dot-decimal form.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &UnparseableAmountError{Raw: raw}
	}
	return d, nil
}
