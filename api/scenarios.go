/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	data for testing and demos. Each scenario creates rubrics, employees
	and assignments that demonstrate specific features.

AVAILABLE SCENARIOS:

	small-company:  Three employees with allowances, a loan and a union fee
	dirty-import:   Records migrated from a legacy system with data issues

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Create rubrics in the catalog
 3. Create employees
 4. Create assignments via the factory JSON path, so the same parsing
    and quarantine rules apply as for real imports
 5. Issue voucher receipts for the demo period where the scenario
    includes them

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "dirty-import"}

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: Handler dependencies and error helpers
  - factory/rubric.go: Assignment JSON parsing
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/rubric"
	"github.com/warp/payroll-engine/voucher"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "small-company",
		Name:        "Small Company",
		Description: "Three employees with transport/meal allowances, a loan in installments, a union fee and monthly voucher receipts",
	},
	{
		ID:          "dirty-import",
		Name:        "Dirty Legacy Import",
		Description: "Records with dangling rubrics, malformed windows and comma-decimal amounts; runs complete with warnings",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	if h.currentScenario == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	for _, s := range scenarios {
		if s.ID == h.currentScenario {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}

	writeJSON(w, http.StatusOK, ScenarioDTO{
		ID:          h.currentScenario,
		Name:        h.currentScenario,
		Description: "Currently loaded scenario",
	})
}

// LoadScenario loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()

	// Reset first
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.currentScenario = ""

	var err error
	switch req.ScenarioID {
	case "small-company":
		err = h.loadSmallCompanyScenario(ctx)
	case "dirty-import":
		err = h.loadDirtyImportScenario(ctx)
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario: "+req.ScenarioID, nil)
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{"loaded": req.ScenarioID})
}

// ResetDatabase clears all data.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.currentScenario = ""
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

func (h *Handler) seedRubrics(ctx context.Context, defs []rubric.RubricDefinition) error {
	for _, def := range defs {
		if err := h.Store.SaveRubric(ctx, def); err != nil {
			return fmt.Errorf("failed to save rubric %s: %w", def.ID, err)
		}
	}
	return nil
}

func (h *Handler) seedAssignments(ctx context.Context, jsonDefs []string) error {
	for _, jsonStr := range jsonDefs {
		a, _, err := factory.ParseAssignment(jsonStr)
		if err != nil {
			return fmt.Errorf("failed to parse assignment: %w", err)
		}
		if err := h.Store.Save(ctx, a); err != nil {
			return fmt.Errorf("failed to save assignment %s: %w", a.ID, err)
		}
	}
	return nil
}

func (h *Handler) seedReceipts(ctx context.Context, jsonDefs []string) error {
	for _, jsonStr := range jsonDefs {
		receipt, err := voucher.ParseReceipt(jsonStr)
		if err != nil {
			return fmt.Errorf("failed to parse receipt: %w", err)
		}
		if err := h.Store.SaveReceipt(ctx, receipt); err != nil {
			return fmt.Errorf("failed to save receipt for %s: %w", receipt.EmployeeID, err)
		}
	}
	return nil
}

func (h *Handler) seedEmployees(ctx context.Context, emps []payslip.Employee) error {
	for _, emp := range emps {
		if err := h.Store.SaveEmployee(ctx, emp); err != nil {
			return fmt.Errorf("failed to save employee %s: %w", emp.ID, err)
		}
	}
	return nil
}

// loadSmallCompanyScenario seeds a clean three-employee company.
func (h *Handler) loadSmallCompanyScenario(ctx context.Context) error {
	if err := h.seedRubrics(ctx, []rubric.RubricDefinition{
		{ID: "transport", Name: "Auxílio Transporte", Type: rubric.TypeBenefit, Code: "101"},
		{ID: "meal", Name: "Auxílio Refeição", Type: rubric.TypeBenefit, Code: "102"},
		{ID: "loan", Name: "Empréstimo Consignado", Type: rubric.TypeDiscount, Code: "201"},
		{ID: "union", Name: "Contribuição Sindical", Type: rubric.TypeDiscount, Code: "202"},
	}); err != nil {
		return err
	}

	if err := h.seedEmployees(ctx, []payslip.Employee{
		{ID: "emp-maria", Name: "Maria Souza", Position: "Analista", BaseSalary: rubric.NewMoney(3000)},
		{ID: "emp-joao", Name: "João Lima", Position: "Desenvolvedor", BaseSalary: rubric.NewMoney(5500)},
		{ID: "emp-ana", Name: "Ana Castro", Position: "Gerente", BaseSalary: rubric.NewMoney(8200)},
	}); err != nil {
		return err
	}

	if err := h.seedAssignments(ctx, []string{
		payslip.FixedBenefitJSON("asg-maria-transport", "emp-maria", "transport", 220, "", ""),
		payslip.FixedBenefitJSON("asg-maria-meal", "emp-maria", "meal", 550, "", ""),
		payslip.LoanDiscountJSON("asg-joao-loan", "emp-joao", "loan", 5000, 12, 3),
		payslip.FixedBenefitJSON("asg-joao-meal", "emp-joao", "meal", 550, "", ""),
		payslip.PercentageDiscountJSON("asg-ana-union", "emp-ana", "union", 1),
	}); err != nil {
		return err
	}

	// Receipts issued alongside the April 2024 payslips
	return h.seedReceipts(ctx, []string{
		voucher.TransportVoucherJSON("emp-maria", 4, 2024, 8.80),
		voucher.MealVoucherJSON("emp-maria", 4, 2024, 20, 27.50),
		voucher.TransportVoucherJSON("emp-joao", 4, 2024, 8.80),
	})
}

// loadDirtyImportScenario seeds records the way a legacy migration left
// them: dangling rubric references, start after end, amounts with the
// Brazilian comma convention. Payroll runs over this data must complete
// and report each issue as a warning.
func (h *Handler) loadDirtyImportScenario(ctx context.Context) error {
	if err := h.seedRubrics(ctx, []rubric.RubricDefinition{
		{ID: "transport", Name: "Auxílio Transporte", Type: rubric.TypeBenefit, Code: "101"},
		{ID: "pharmacy", Name: "Convênio Farmácia", Type: rubric.TypeDiscount, Code: "203"},
	}); err != nil {
		return err
	}

	if err := h.seedEmployees(ctx, []payslip.Employee{
		{ID: "emp-legacy", Name: "Carlos Pereira", Position: "Operador", BaseSalary: rubric.NewMoney(2400)},
	}); err != nil {
		return err
	}

	return h.seedAssignments(ctx, []string{
		// References a rubric that was never migrated
		`{
			"id": "asg-dangling",
			"employee_id": "emp-legacy",
			"rubric_id": "health-plan",
			"custom_value": 180,
			"is_active": true
		}`,
		// Window starts after it ends
		`{
			"id": "asg-malformed-window",
			"employee_id": "emp-legacy",
			"rubric_id": "transport",
			"custom_value": 220,
			"is_active": true,
			"start_date": "2024-06-01",
			"end_date": "2024-03-01"
		}`,
		// Comma-decimal amount and dd/mm/yyyy date, both valid after parsing
		`{
			"id": "asg-comma-amount",
			"employee_id": "emp-legacy",
			"rubric_id": "pharmacy",
			"custom_value": "89,90",
			"is_active": true,
			"start_date": "01/01/2024"
		}`,
		// No amount specifier at all
		`{
			"id": "asg-no-amount",
			"employee_id": "emp-legacy",
			"rubric_id": "transport",
			"is_active": true
		}`,
	})
}
