/*
errors.go - Centralized error types for the rubric engine

PURPOSE:
  All error types in one place. Only genuinely invalid call-level input
  (a programming error in the caller) produces an error from the engine;
  per-record data-quality issues are Warnings (see warnings.go).

USAGE:
  if errors.Is(err, rubric.ErrInvalidPeriod) { ... }
*/
package rubric

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPeriod is returned when month is outside [1,12] or the
	// year is not a four-digit integer.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidBaseSalary is returned when a base salary crossing a
	// float boundary is NaN or infinite.
	ErrInvalidBaseSalary = errors.New("invalid base salary")

	// ErrRubricNotFound is returned by catalog writers/lookups when a
	// rubric id does not exist.
	ErrRubricNotFound = errors.New("rubric not found")

	// ErrEmployeeNotFound is returned by surrounding layers when an
	// employee id does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAssignmentNotFound is returned by assignment stores.
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidPeriodError reports an out-of-range payroll period.
type InvalidPeriodError struct {
	Month int
	Year  int
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period: month=%d year=%d", e.Month, e.Year)
}

func (e *InvalidPeriodError) Unwrap() error { return ErrInvalidPeriod }

// UnparseableDateError reports a date string the boundary could not parse.
type UnparseableDateError struct {
	Raw string
}

func (e *UnparseableDateError) Error() string {
	return fmt.Sprintf("unparseable date: %q", e.Raw)
}

// UnparseableAmountError reports an amount string the boundary could not
// parse into a decimal.
type UnparseableAmountError struct {
	Raw string
}

func (e *UnparseableAmountError) Error() string {
	return fmt.Sprintf("unparseable amount: %q", e.Raw)
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidBaseSalary)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRubricNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrAssignmentNotFound)
}
