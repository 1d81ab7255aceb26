/*
period.go - Validity-window resolution for assignments

PURPOSE:
  Decides whether an assignment is "in force" for a requested payroll
  period (month, year). The reference point is the first day of the
  target month; an assignment applies iff it is active AND the reference
  point falls inside its inclusive [StartDate, EndDate] window, where a
  missing boundary means unbounded in that direction.

DEFENSIVE RULES:
  - StartDate > EndDate: never applicable (the engine records a
    MalformedDateRange warning; a bad record must not crash payroll)
  - Unparseable dates never reach this file: the boundary layers parse
    them and leave nil (unbounded) on failure

NO SIDE EFFECTS, NO I/O.
*/
package rubric

import "time"

// ReferenceDate returns the first day of the target month/year, the
// point against which validity windows are evaluated.
func ReferenceDate(month, year int) Date {
	return NewDate(year, time.Month(month), 1)
}

// ValidPeriod reports whether (month, year) is a usable payroll period:
// month in [1,12] and a four-digit year.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 1000 && year <= 9999
}

// IsApplicable reports whether the assignment is in force for the given
// period. Inactive assignments never apply, regardless of dates.
func IsApplicable(a Assignment, month, year int) bool {
	if !a.IsActive {
		return false
	}
	if a.HasMalformedDateRange() {
		return false
	}

	ref := ReferenceDate(month, year)
	if a.StartDate != nil && ref.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && ref.After(*a.EndDate) {
		return false
	}
	return true
}
