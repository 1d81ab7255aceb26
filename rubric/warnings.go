/*
warnings.go - Data-quality warning taxonomy

PURPOSE:
  The engine favors partial success: a single bad rubric assignment must
  not prevent the rest of an employee's (or a whole payroll run's)
  computation. Per-item data problems become Warnings, collected and
  returned alongside results for operator visibility. They are never
  user-facing failures.

WARNING CODES:
  dangling_rubric_reference  assignment points at a rubric id absent
                             from the catalog; assignment skipped
  missing_amount_specifier   neither fixed value nor percentage (nor a
                             valid installment plan); skipped
  ambiguous_amount_specifier both fixed value and percentage set; the
                             fixed value wins
  malformed_date_range       StartDate > EndDate; never applicable
  unparseable_date           a date field could not be parsed at the
                             boundary; treated as unbounded
  unparseable_amount         an amount field could not be parsed at the
                             boundary; the record is quarantined
*/
package rubric

import "fmt"

type WarningCode string

const (
	WarnDanglingRubricReference  WarningCode = "dangling_rubric_reference"
	WarnMissingAmountSpecifier   WarningCode = "missing_amount_specifier"
	WarnAmbiguousAmountSpecifier WarningCode = "ambiguous_amount_specifier"
	WarnMalformedDateRange       WarningCode = "malformed_date_range"
	WarnUnparseableDate          WarningCode = "unparseable_date"
	WarnUnparseableAmount        WarningCode = "unparseable_amount"
)

// Warning tags a recovered data-quality issue with enough context for an
// operator to find and fix the offending record.
type Warning struct {
	Code         WarningCode
	EmployeeID   EmployeeID
	AssignmentID AssignmentID
	RubricID     RubricID
	Detail       string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: assignment=%s employee=%s rubric=%s %s",
		w.Code, w.AssignmentID, w.EmployeeID, w.RubricID, w.Detail)
}

func warn(a Assignment, code WarningCode, detail string) Warning {
	return Warning{
		Code:         code,
		EmployeeID:   a.EmployeeID,
		AssignmentID: a.ID,
		RubricID:     a.RubricID,
		Detail:       detail,
	}
}
