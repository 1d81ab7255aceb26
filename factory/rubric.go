/*
Package factory provides JSON to Go rubric conversion.

PURPOSE:
  Converts JSON rubric and assignment definitions into rubric package
  structs. This enables HR tooling to define rubrics without code
  changes and is the boundary where loosely-typed legacy values become
  typed: amounts may arrive as JSON numbers OR as strings with Brazilian
  comma-decimal formatting ("1.234,56"), dates as ISO or dd/mm/yyyy.
  Everything is parsed exactly once here; unparseable values are
  quarantined as warnings, never propagated into calculations.

JSON SCHEMA (assignment):
  {
    "id": "asg-1",
    "employee_id": "emp-1",
    "rubric_id": "loan",
    "custom_name": "Empréstimo",
    "custom_value": "416,67",
    "is_active": true,
    "start_date": "01/03/2024",
    "end_date": "2025-02-28",
    "installments": {
      "total_amount": 5000,
      "total_installments": 12,
      "current_installment": 3
    }
  }

USAGE:
  def, err := factory.ParseRubric(jsonStr)
  assignment, warnings, err := factory.ParseAssignment(jsonStr)

SEE ALSO:
  - rubric/parse.go: the underlying boundary parsers
  - payslip/factory.go: preset assignment JSON builders
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RubricJSON is the JSON representation of a catalog entry.
type RubricJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // "benefit" or "discount"
	Code string `json:"code,omitempty"`
}

// AssignmentJSON is the JSON representation of an employee-rubric link.
// Amount fields accept numbers or comma-decimal strings.
type AssignmentJSON struct {
	ID               string            `json:"id"`
	EmployeeID       string            `json:"employee_id"`
	RubricID         string            `json:"rubric_id"`
	CustomName       string            `json:"custom_name,omitempty"`
	CustomValue      *FlexibleAmount   `json:"custom_value,omitempty"`
	CustomPercentage *FlexibleAmount   `json:"custom_percentage,omitempty"`
	Installments     *InstallmentsJSON `json:"installments,omitempty"`
	IsActive         bool              `json:"is_active"`
	StartDate        string            `json:"start_date,omitempty"`
	EndDate          string            `json:"end_date,omitempty"`
}

// InstallmentsJSON is the structured loan progress block.
type InstallmentsJSON struct {
	TotalAmount        FlexibleAmount `json:"total_amount"`
	TotalInstallments  int            `json:"total_installments"`
	CurrentInstallment int            `json:"current_installment"`
}

// FlexibleAmount accepts a JSON number or a formatted amount string.
// Unparseable strings keep the raw value so the caller can quarantine
// them with a warning instead of failing the record.
type FlexibleAmount struct {
	Value decimal.Decimal
	Raw   string
	Err   error
}

func (f *FlexibleAmount) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = decimal.NewFromFloat(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amount must be a number or string: %w", err)
	}

	f.Raw = s
	m, err := rubric.ParseMoney(s)
	if err != nil {
		f.Err = err
		return nil // quarantined, not fatal
	}
	f.Value = m.Value
	return nil
}

// =============================================================================
// PARSING
// =============================================================================

// ParseRubric parses a JSON catalog entry.
func ParseRubric(jsonStr string) (*rubric.RubricDefinition, error) {
	var rj RubricJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return nil, fmt.Errorf("failed to parse rubric JSON: %w", err)
	}
	if rj.ID == "" || rj.Name == "" {
		return nil, fmt.Errorf("rubric requires id and name")
	}

	rubricType := rubric.TypeDiscount
	if rj.Type == string(rubric.TypeBenefit) {
		rubricType = rubric.TypeBenefit
	}

	return &rubric.RubricDefinition{
		ID:   rubric.RubricID(rj.ID),
		Name: rj.Name,
		Type: rubricType,
		Code: rj.Code,
	}, nil
}

// ParseAssignment parses a JSON assignment. Unparseable amounts and
// dates become warnings with the offending field left unset (absent /
// unbounded), so one bad field never loses the record.
func ParseAssignment(jsonStr string) (rubric.Assignment, []rubric.Warning, error) {
	var aj AssignmentJSON
	if err := json.Unmarshal([]byte(jsonStr), &aj); err != nil {
		return rubric.Assignment{}, nil, fmt.Errorf("failed to parse assignment JSON: %w", err)
	}
	return FromJSON(aj)
}

// FromJSON converts AssignmentJSON to a typed Assignment.
func FromJSON(aj AssignmentJSON) (rubric.Assignment, []rubric.Warning, error) {
	a := rubric.Assignment{
		ID:         rubric.AssignmentID(aj.ID),
		EmployeeID: rubric.EmployeeID(aj.EmployeeID),
		RubricID:   rubric.RubricID(aj.RubricID),
		CustomName: aj.CustomName,
		IsActive:   aj.IsActive,
	}

	var warnings []rubric.Warning
	quarantine := func(code rubric.WarningCode, detail string) {
		warnings = append(warnings, rubric.Warning{
			Code:         code,
			EmployeeID:   a.EmployeeID,
			AssignmentID: a.ID,
			RubricID:     a.RubricID,
			Detail:       detail,
		})
	}

	if aj.CustomValue != nil {
		if aj.CustomValue.Err != nil {
			quarantine(rubric.WarnUnparseableAmount,
				fmt.Sprintf("custom_value %q", aj.CustomValue.Raw))
		} else {
			m := rubric.MoneyFromDecimal(aj.CustomValue.Value)
			a.CustomValue = &m
		}
	}

	if aj.CustomPercentage != nil {
		if aj.CustomPercentage.Err != nil {
			quarantine(rubric.WarnUnparseableAmount,
				fmt.Sprintf("custom_percentage %q", aj.CustomPercentage.Raw))
		} else {
			p := aj.CustomPercentage.Value
			a.CustomPercentage = &p
		}
	}

	if aj.Installments != nil {
		if aj.Installments.TotalAmount.Err != nil {
			quarantine(rubric.WarnUnparseableAmount,
				fmt.Sprintf("installments.total_amount %q", aj.Installments.TotalAmount.Raw))
		} else {
			a.Installments = &rubric.InstallmentPlan{
				TotalAmount:        rubric.MoneyFromDecimal(aj.Installments.TotalAmount.Value),
				TotalInstallments:  aj.Installments.TotalInstallments,
				CurrentInstallment: aj.Installments.CurrentInstallment,
			}
		}
	}

	if aj.StartDate != "" {
		if d, err := rubric.ParseDate(aj.StartDate); err != nil {
			quarantine(rubric.WarnUnparseableDate, fmt.Sprintf("start_date %q", aj.StartDate))
		} else {
			a.StartDate = &d
		}
	}
	if aj.EndDate != "" {
		if d, err := rubric.ParseDate(aj.EndDate); err != nil {
			quarantine(rubric.WarnUnparseableDate, fmt.Sprintf("end_date %q", aj.EndDate))
		} else {
			a.EndDate = &d
		}
	}

	return a, warnings, nil
}

// ToJSON converts an Assignment back to its JSON shape. Amounts are
// emitted as canonical decimal strings.
func ToJSON(a rubric.Assignment) AssignmentJSON {
	aj := AssignmentJSON{
		ID:         string(a.ID),
		EmployeeID: string(a.EmployeeID),
		RubricID:   string(a.RubricID),
		CustomName: a.CustomName,
		IsActive:   a.IsActive,
	}

	if a.CustomValue != nil {
		aj.CustomValue = &FlexibleAmount{Value: a.CustomValue.Value}
	}
	if a.CustomPercentage != nil {
		aj.CustomPercentage = &FlexibleAmount{Value: *a.CustomPercentage}
	}
	if a.Installments != nil {
		aj.Installments = &InstallmentsJSON{
			TotalAmount:        FlexibleAmount{Value: a.Installments.TotalAmount.Value},
			TotalInstallments:  a.Installments.TotalInstallments,
			CurrentInstallment: a.Installments.CurrentInstallment,
		}
	}
	if a.StartDate != nil {
		aj.StartDate = a.StartDate.String()
	}
	if a.EndDate != nil {
		aj.EndDate = a.EndDate.String()
	}
	return aj
}

// MarshalJSON emits the decimal value as a JSON string to preserve
// precision on the wire.
func (f FlexibleAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value.String())
}
