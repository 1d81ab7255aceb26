/*
Package rubric provides the core payroll rubric calculation engine.

PURPOSE:
  This package contains the types and algorithms for turning per-employee
  pay-adjustment rules ("rubrics" - benefits and discounts such as loans,
  allowances and custom deductions) into concrete monetary line items.
  The payslip, batch payroll and export layers all consume its output;
  none of them ever see raw assignments.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A currency amount backed by decimal.Decimal
  - RubricDefinition: A catalog entry (benefit or discount)
  - Assignment: The link between an employee and a rubric, carrying
    employee-specific amount and validity overrides
  - InstallmentPlan: Structured loan/advance progress tracking
  - LineItem / Totals: The engine's freshly-allocated outputs

DESIGN PRINCIPLES:
  1. Purity: the engine never mutates its inputs and performs no I/O
  2. Precision: decimal.Decimal everywhere, half-up rounding to cents
  3. Partial success: bad records become warnings, never batch failures
  4. Parse at the boundary: amounts and dates are typed before they
     reach any calculation

USAGE:
  engine := rubric.NewEngine(catalog)
  items, warnings, err := engine.Calculate(ctx, assignments, base, 4, 2024)
  totals := rubric.Aggregate(items)

SEE ALSO:
  - period.go: validity-window resolution
  - calculator.go: per-assignment amount semantics
  - aggregate.go: benefit/discount totals
  - engine.go: orchestration entry point
*/
package rubric

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount (BRL implied, currency not modeled)
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

// NewMoney creates a Money from a finite float literal.
// For floats that cross an API boundary, use MoneyFromFloat64 which
// rejects NaN and infinities instead of panicking.
func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func MoneyFromDecimal(d decimal.Decimal) Money { return Money{Value: d} }

func (m Money) Add(o Money) Money          { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money          { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Neg() Money                 { return Money{Value: m.Value.Neg()} }
func (m Money) Div(d decimal.Decimal) Money { return Money{Value: m.Value.Div(d)} }
func (m Money) IsNegative() bool           { return m.Value.IsNegative() }
func (m Money) IsZero() bool               { return m.Value.IsZero() }
func (m Money) IsPositive() bool           { return m.Value.IsPositive() }
func (m Money) Equal(o Money) bool         { return m.Value.Equal(o.Value) }
func (m Money) GreaterThan(o Money) bool   { return m.Value.GreaterThan(o.Value) }
func (m Money) LessThan(o Money) bool      { return m.Value.LessThan(o.Value) }

// Round2 rounds to 2 decimal places, half away from zero. For the
// currency amounts in scope this is the standard half-up rounding.
func (m Money) Round2() Money { return Money{Value: m.Value.Round(2)} }

// Percent returns round2(m * p / 100).
func (m Money) Percent(p decimal.Decimal) Money {
	return Money{Value: m.Value.Mul(p).Div(decimal.NewFromInt(100))}.Round2()
}

func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

func (m Money) String() string { return m.Value.StringFixed(2) }

// Money crosses the wire and the database as a decimal string to
// preserve precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Value.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Value = d
		return nil
	}
	// Tolerate numeric amounts from hand-written payloads.
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	m.Value = decimal.NewFromFloat(f)
	return nil
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type RubricID string
type AssignmentID string

// =============================================================================
// RUBRIC DEFINITION - Catalog entry, immutable from the engine's view
// =============================================================================

type RubricType string

const (
	TypeBenefit  RubricType = "benefit"  // increases gross pay (provento)
	TypeDiscount RubricType = "discount" // decreases net pay
)

// RubricDefinition is a catalog entry describing a pay-adjustment rule.
// Owned by the catalog collaborator; the engine only reads it.
type RubricDefinition struct {
	ID   RubricID
	Name string
	Type RubricType
	Code string // optional short accounting code
}

func (d RubricDefinition) IsBenefit() bool { return d.Type == TypeBenefit }

// =============================================================================
// ASSIGNMENT - Links an employee to a rubric with overrides
// =============================================================================

// Assignment is one rubric applied to one employee. Exactly one of
// CustomValue / CustomPercentage should be set; when both are set the
// fixed value wins and the engine records an ambiguity warning, when
// neither is set the item is skipped with a warning. An Installments
// plan can supply the amount when no explicit specifier is present.
type Assignment struct {
	ID         AssignmentID
	EmployeeID EmployeeID
	RubricID   RubricID

	// CustomName overrides the catalog display name when non-empty.
	CustomName string

	// Amount specifiers. CustomPercentage applies to base salary (0-100
	// expected, not enforced upstream).
	CustomValue      *Money
	CustomPercentage *decimal.Decimal

	// Structured loan/advance progress. Replaces the legacy pattern of
	// encoding installment state inside the display name.
	Installments *InstallmentPlan

	// IsActive gates the assignment regardless of dates.
	IsActive bool

	// Inclusive validity window. nil = unbounded in that direction.
	StartDate *Date
	EndDate   *Date
}

// HasMalformedDateRange reports StartDate > EndDate. Such assignments
// are never applicable; the engine surfaces them as warnings.
func (a Assignment) HasMalformedDateRange() bool {
	return a.StartDate != nil && a.EndDate != nil && a.StartDate.After(*a.EndDate)
}

// =============================================================================
// INSTALLMENT PLAN - Structured loan progress
// =============================================================================

// InstallmentPlan tracks a loan or advance paid back over N periods.
// All derived values (per-installment amount, remaining balance, the
// "3/12" progress label) come from these fields, never from parsing a
// display string.
type InstallmentPlan struct {
	TotalAmount        Money
	TotalInstallments  int
	CurrentInstallment int // 1-based
}

func (p InstallmentPlan) IsValid() bool {
	return p.TotalInstallments > 0 &&
		p.CurrentInstallment >= 1 &&
		p.CurrentInstallment <= p.TotalInstallments
}

// PerInstallment returns the amount charged each period.
func (p InstallmentPlan) PerInstallment() Money {
	if p.TotalInstallments <= 0 {
		return Money{}
	}
	return p.TotalAmount.Div(decimal.NewFromInt(int64(p.TotalInstallments))).Round2()
}

// Remaining returns the balance still owed after the current installment.
// Rounding the per-installment amount can overshoot a non-divisible
// total on the final installments; the balance bottoms out at zero.
func (p InstallmentPlan) Remaining() Money {
	if !p.IsValid() {
		return Money{}
	}
	paid := p.PerInstallment().Value.Mul(decimal.NewFromInt(int64(p.CurrentInstallment)))
	remaining := p.TotalAmount.Sub(Money{Value: paid}).Round2()
	if remaining.IsNegative() {
		return Money{}
	}
	return remaining
}

// Progress returns the "current/total" label fragment, e.g. "3/12".
func (p InstallmentPlan) Progress() string {
	return fmt.Sprintf("%d/%d", p.CurrentInstallment, p.TotalInstallments)
}

// =============================================================================
// OUTPUTS - Freshly allocated on every call, never persisted
// =============================================================================

// LineItem is one computed monetary adjustment on a payslip.
type LineItem struct {
	Name      string
	Value     Money
	IsBenefit bool
}

// Totals partitions line items and carries the summed amounts.
// Each total is summed first and rounded once, so per-item rounding
// error does not compound.
type Totals struct {
	Benefits       []LineItem
	Discounts      []LineItem
	TotalBenefits  Money
	TotalDiscounts Money
}

// NetAdjustment is benefits minus discounts. It is NOT a net salary:
// base salary and manually-entered statutory discounts are combined by
// the payslip layer, not here.
func (t Totals) NetAdjustment() Money {
	return t.TotalBenefits.Sub(t.TotalDiscounts)
}
