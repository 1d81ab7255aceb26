/*
Package payslip provides payroll domain-specific JSON builders.

These functions create JSON assignment definitions for common rubric
setups (loans, allowances, custom deductions). They construct JSON
strings directly to avoid import cycles with the factory package.

USAGE:
  jsonStr := payslip.LoanDiscountJSON("asg-1", "emp-1", "loan", 5000, 12, 3)
  assignment, warnings, err := factory.ParseAssignment(jsonStr)
*/
package payslip

import (
	"encoding/json"
)

// LoanDiscountJSON returns JSON for a loan paid back in installments.
// Progress lives in the structured installments block, not in the name.
func LoanDiscountJSON(id, employeeID, rubricID string, total float64, installments, current int) string {
	aj := map[string]interface{}{
		"id":          id,
		"employee_id": employeeID,
		"rubric_id":   rubricID,
		"custom_name": "Empréstimo",
		"is_active":   true,
		"installments": map[string]interface{}{
			"total_amount":        total,
			"total_installments":  installments,
			"current_installment": current,
		},
	}
	b, _ := json.MarshalIndent(aj, "", "  ")
	return string(b)
}

// FixedBenefitJSON returns JSON for a fixed-amount monthly benefit.
func FixedBenefitJSON(id, employeeID, rubricID string, value float64, startDate, endDate string) string {
	aj := map[string]interface{}{
		"id":           id,
		"employee_id":  employeeID,
		"rubric_id":    rubricID,
		"custom_value": value,
		"is_active":    true,
	}
	if startDate != "" {
		aj["start_date"] = startDate
	}
	if endDate != "" {
		aj["end_date"] = endDate
	}
	b, _ := json.MarshalIndent(aj, "", "  ")
	return string(b)
}

// PercentageDiscountJSON returns JSON for a percentage-of-salary discount.
func PercentageDiscountJSON(id, employeeID, rubricID string, percentage float64) string {
	aj := map[string]interface{}{
		"id":                id,
		"employee_id":       employeeID,
		"rubric_id":         rubricID,
		"custom_percentage": percentage,
		"is_active":         true,
	}
	b, _ := json.MarshalIndent(aj, "", "  ")
	return string(b)
}
