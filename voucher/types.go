/*
Package voucher computes transport and meal voucher receipts ("recibos").

PURPOSE:
  Vouchers are simple quantity-times-unit-value documents issued monthly
  alongside payslips: N workdays of transport vouchers at a daily value,
  or N meal vouchers at a unit value. The package shares the engine's
  Money type so rounding behaves identically everywhere money is
  computed.

KEY DIFFERENCES FROM RUBRICS:
  1. No catalog: the two voucher kinds are fixed
  2. No validity windows: a receipt is issued for exactly one period
  3. Quantity semantics: value scales with workday count, not salary

SEE ALSO:
  - rubric/: percentage/fixed-amount pay adjustments
  - payslip/: the documents vouchers are issued alongside
*/
package voucher

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// VOUCHER KINDS
// =============================================================================

type Kind string

const (
	KindTransport Kind = "transport" // vale transporte
	KindMeal      Kind = "meal"      // vale refeição
)

// DefaultWorkdays is the conventional monthly workday count used when a
// receipt is issued without counting the calendar.
const DefaultWorkdays = 22

// =============================================================================
// RECEIPT - One voucher document for one employee and period
// =============================================================================

type Receipt struct {
	EmployeeID rubric.EmployeeID
	Kind       Kind
	Month      int
	Year       int

	// Days is the voucher quantity. Zero means DefaultWorkdays.
	Days      int
	UnitValue rubric.Money
}

// EffectiveDays returns the voucher quantity, falling back to
// DefaultWorkdays when Days is unset.
func (r Receipt) EffectiveDays() int {
	if r.Days <= 0 {
		return DefaultWorkdays
	}
	return r.Days
}

// Total is quantity times unit value, rounded to cents once.
func (r Receipt) Total() rubric.Money {
	total := r.UnitValue.Value.Mul(decimal.NewFromInt(int64(r.EffectiveDays())))
	return rubric.MoneyFromDecimal(total).Round2()
}

// =============================================================================
// WORKDAY CALENDAR
// =============================================================================

// WorkdaysInMonth counts Monday-Friday days in the given month. Company
// holidays are not modeled; operators adjust Days on the receipt when a
// holiday falls in the period.
func WorkdaysInMonth(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
