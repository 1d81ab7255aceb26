/*
engine.go - Calculation orchestration (the entry point)

PURPOSE:
  Given an employee's assignments, base salary and target period, resolve
  which assignments apply and compute each one's monetary line item:

    1. Resolve the catalog definition (skip + warning on a dangling id)
    2. Filter by active flag and validity window (period.go)
    3. Compute value and label (calculator.go)
    4. Return items in the same relative order as the input

  Output order is stable and deterministic: consumers rely on it for
  display and for generating sequential accounting codes.

ERROR POLICY:
  Per-record data problems become warnings; the engine never fails a
  batch for them. Only call-level programmer errors (month out of range,
  non-finite base salary at the float boundary) return an error.

CONCURRENCY:
  The engine is stateless and side-effect-free. Calls for different
  employees/periods may run fully in parallel with no coordination.
*/
package rubric

import (
	"context"
	"time"
)

// Engine computes rubric line items for payslips.
type Engine struct {
	Catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{Catalog: catalog}
}

// Calculate computes the line items for one employee and period. A zero
// month and year default to the current calendar month. Warnings report
// skipped or suspicious records; the items slice preserves input order.
func (e *Engine) Calculate(
	ctx context.Context,
	assignments []Assignment,
	baseSalary Money,
	month, year int,
) ([]LineItem, []Warning, error) {
	if month == 0 && year == 0 {
		now := time.Now()
		month, year = int(now.Month()), now.Year()
	}
	if !ValidPeriod(month, year) {
		return nil, nil, &InvalidPeriodError{Month: month, Year: year}
	}

	items := make([]LineItem, 0, len(assignments))
	var warnings []Warning

	for _, a := range assignments {
		if a.HasMalformedDateRange() {
			warnings = append(warnings, warn(a, WarnMalformedDateRange,
				"start date after end date; assignment never applies"))
			continue
		}
		if !IsApplicable(a, month, year) {
			continue
		}

		def, err := e.Catalog.Definition(ctx, a.RubricID)
		if err != nil {
			return nil, warnings, err
		}
		if def == nil {
			warnings = append(warnings, warn(a, WarnDanglingRubricReference,
				"rubric id absent from catalog"))
			continue
		}

		item, ws, ok := Compute(a, *def, baseSalary)
		warnings = append(warnings, ws...)
		if ok {
			items = append(items, item)
		}
	}

	return items, warnings, nil
}

// CalculateTotals runs Calculate and aggregates the result in one step.
func (e *Engine) CalculateTotals(
	ctx context.Context,
	assignments []Assignment,
	baseSalary Money,
	month, year int,
) (Totals, []Warning, error) {
	items, warnings, err := e.Calculate(ctx, assignments, baseSalary, month, year)
	if err != nil {
		return Totals{}, warnings, err
	}
	return Aggregate(items), warnings, nil
}
