/*
Package payslip assembles monthly payslips ("holerites") from the rubric
engine's output.

PURPOSE:
  A payslip combines three ingredients for one employee and period:
  - the contractual base salary
  - rubric line items computed by the rubric engine
  - manually-entered statutory values (INSS, IRRF, FGTS)

  Statutory values are typed inputs, never computed here: this system is
  not a tax-compliance engine. FGTS is employer-side and informative; it
  never reduces net pay.

TOTALS:
  gross = base salary + total rubric benefits
  net   = gross - total rubric discounts - INSS - IRRF

SEE ALSO:
  - builder.go: assembles payslips via the rubric engine
  - batch.go: concurrent payroll runs across many employees
*/
package payslip

import (
	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// EMPLOYEE - The payroll subject
// =============================================================================

type Employee struct {
	ID         rubric.EmployeeID
	Name       string
	Position   string
	BaseSalary rubric.Money

	// HireDate is informational; nil when unknown.
	HireDate *rubric.Date
}

// =============================================================================
// STATUTORY DISCOUNTS - Manually entered upstream
// =============================================================================

// StatutoryDiscounts carries the tax values an operator entered for the
// period. INSS and IRRF reduce net pay; FGTS is informative only.
type StatutoryDiscounts struct {
	INSS rubric.Money
	IRRF rubric.Money
	FGTS rubric.Money
}

func (s StatutoryDiscounts) Total() rubric.Money {
	return s.INSS.Add(s.IRRF).Round2()
}

// =============================================================================
// PAYSLIP - One employee, one period
// =============================================================================

type Payslip struct {
	EmployeeID   rubric.EmployeeID
	EmployeeName string
	Position     string
	Month        int
	Year         int

	BaseSalary rubric.Money
	Rubrics    rubric.Totals
	Statutory  StatutoryDiscounts

	// Warnings collected while computing the rubric items, kept for
	// operator visibility. They never fail the payslip.
	Warnings []rubric.Warning
}

// Gross is base salary plus all rubric benefits.
func (p Payslip) Gross() rubric.Money {
	return p.BaseSalary.Add(p.Rubrics.TotalBenefits).Round2()
}

// TotalDiscounts is rubric discounts plus statutory discounts.
func (p Payslip) TotalDiscounts() rubric.Money {
	return p.Rubrics.TotalDiscounts.Add(p.Statutory.Total()).Round2()
}

// Net is gross minus all discounts.
func (p Payslip) Net() rubric.Money {
	return p.Gross().Sub(p.TotalDiscounts()).Round2()
}
