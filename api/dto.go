/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

AMOUNT FIELDS:
  Monetary inputs reuse factory.FlexibleAmount so clients may send
  numbers or formatted strings ("1.234,56"); responses always emit
  canonical decimal strings with two places.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/rubric.go: AssignmentJSON / RubricJSON shapes
*/
package api

import (
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/rubric"
	"github.com/warp/payroll-engine/voucher"
)

// =============================================================================
// EMPLOYEE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	BaseSalary string `json:"base_salary"`
	HireDate   string `json:"hire_date,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Position   string                  `json:"position,omitempty"`
	BaseSalary *factory.FlexibleAmount `json:"base_salary"`
	HireDate   string                  `json:"hire_date,omitempty"`
}

// =============================================================================
// RUBRIC / ASSIGNMENT TYPES
// =============================================================================

// RubricDTO represents a catalog entry in API responses.
type RubricDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Code string `json:"code,omitempty"`
}

// CreateAssignmentResponse echoes the stored assignment plus any
// data-quality warnings raised while parsing it.
type CreateAssignmentResponse struct {
	Assignment factory.AssignmentJSON `json:"assignment"`
	Warnings   []WarningDTO           `json:"warnings,omitempty"`
}

// EmployeeAssignmentsResponse lists an employee's assignments plus any
// warnings raised while decoding the stored rows.
type EmployeeAssignmentsResponse struct {
	Assignments []factory.AssignmentJSON `json:"assignments"`
	Warnings    []WarningDTO             `json:"warnings,omitempty"`
}

// WarningDTO is a data-quality warning in API responses.
type WarningDTO struct {
	Code         string `json:"code"`
	EmployeeID   string `json:"employee_id,omitempty"`
	AssignmentID string `json:"assignment_id,omitempty"`
	RubricID     string `json:"rubric_id,omitempty"`
	Detail       string `json:"detail,omitempty"`
}

func toWarningDTOs(warnings []rubric.Warning) []WarningDTO {
	if len(warnings) == 0 {
		return nil
	}
	dtos := make([]WarningDTO, len(warnings))
	for i, w := range warnings {
		dtos[i] = WarningDTO{
			Code:         string(w.Code),
			EmployeeID:   string(w.EmployeeID),
			AssignmentID: string(w.AssignmentID),
			RubricID:     string(w.RubricID),
			Detail:       w.Detail,
		}
	}
	return dtos
}

// =============================================================================
// PAYROLL TYPES
// =============================================================================

// StatutoryDTO carries the manually-entered statutory discounts for
// one employee in a payroll run.
type StatutoryDTO struct {
	INSS *factory.FlexibleAmount `json:"inss,omitempty"`
	IRRF *factory.FlexibleAmount `json:"irrf,omitempty"`
	FGTS *factory.FlexibleAmount `json:"fgts,omitempty"`
}

// RunPayrollRequest triggers a payroll run for a period. When
// EmployeeIDs is empty the run covers every employee on file.
type RunPayrollRequest struct {
	Month       int                     `json:"month"`
	Year        int                     `json:"year"`
	EmployeeIDs []string                `json:"employee_ids,omitempty"`
	Statutory   map[string]StatutoryDTO `json:"statutory,omitempty"`
}

// LineItemDTO is one computed adjustment on a payslip.
type LineItemDTO struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	IsBenefit bool   `json:"is_benefit"`
}

// PayslipDTO is the full payslip document in API responses.
type PayslipDTO struct {
	EmployeeID     string        `json:"employee_id"`
	EmployeeName   string        `json:"employee_name"`
	Position       string        `json:"position,omitempty"`
	Month          int           `json:"month"`
	Year           int           `json:"year"`
	BaseSalary     string        `json:"base_salary"`
	Benefits       []LineItemDTO `json:"benefits"`
	Discounts      []LineItemDTO `json:"discounts"`
	TotalBenefits  string        `json:"total_benefits"`
	TotalDiscounts string        `json:"total_discounts"`
	INSS           string        `json:"inss"`
	IRRF           string        `json:"irrf"`
	FGTS           string        `json:"fgts"`
	Gross          string        `json:"gross"`
	Net            string        `json:"net"`
	Warnings       []WarningDTO  `json:"warnings,omitempty"`
}

// RunResultDTO is one employee's outcome in a payroll run. Err is set
// when that employee's build failed; the rest of the run continues.
type RunResultDTO struct {
	EmployeeID string      `json:"employee_id"`
	Payslip    *PayslipDTO `json:"payslip,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func toLineItemDTOs(items []rubric.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, len(items))
	for i, item := range items {
		dtos[i] = LineItemDTO{
			Name:      item.Name,
			Value:     item.Value.String(),
			IsBenefit: item.IsBenefit,
		}
	}
	return dtos
}

func toPayslipDTO(slip *payslip.Payslip) *PayslipDTO {
	return &PayslipDTO{
		EmployeeID:     string(slip.EmployeeID),
		EmployeeName:   slip.EmployeeName,
		Position:       slip.Position,
		Month:          slip.Month,
		Year:           slip.Year,
		BaseSalary:     slip.BaseSalary.String(),
		Benefits:       toLineItemDTOs(slip.Rubrics.Benefits),
		Discounts:      toLineItemDTOs(slip.Rubrics.Discounts),
		TotalBenefits:  slip.Rubrics.TotalBenefits.String(),
		TotalDiscounts: slip.Rubrics.TotalDiscounts.String(),
		INSS:           slip.Statutory.INSS.String(),
		IRRF:           slip.Statutory.IRRF.String(),
		FGTS:           slip.Statutory.FGTS.String(),
		Gross:          slip.Gross().String(),
		Net:            slip.Net().String(),
		Warnings:       toWarningDTOs(slip.Warnings),
	}
}

// =============================================================================
// VOUCHER TYPES
// =============================================================================

// CreateReceiptRequest issues a voucher receipt for one employee and
// period. Days may be omitted to use the conventional workday count.
type CreateReceiptRequest struct {
	EmployeeID string                  `json:"employee_id"`
	Kind       string                  `json:"kind"`
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Days       int                     `json:"days,omitempty"`
	UnitValue  *factory.FlexibleAmount `json:"unit_value"`
}

// ReceiptDTO is a voucher receipt in API responses, with its computed total.
type ReceiptDTO struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Days       int    `json:"days"`
	UnitValue  string `json:"unit_value"`
	Total      string `json:"total"`
}

func toReceiptDTO(r voucher.Receipt) ReceiptDTO {
	return ReceiptDTO{
		EmployeeID: string(r.EmployeeID),
		Kind:       string(r.Kind),
		Month:      r.Month,
		Year:       r.Year,
		Days:       r.EffectiveDays(),
		UnitValue:  r.UnitValue.String(),
		Total:      r.Total().String(),
	}
}

// =============================================================================
// SCENARIO TYPES
// =============================================================================

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}
