/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll rubric engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees                   List all employees
    POST   /api/employees                   Create employee
    GET    /api/employees/{id}              Get employee details
    DELETE /api/employees/{id}              Delete employee
    GET    /api/employees/{id}/assignments  List an employee's assignments
    GET    /api/employees/{id}/payslip      Fetch a stored payslip (?month=&year=)
    GET    /api/employees/{id}/vouchers     List voucher receipts (?month=&year=)

  Rubrics:
    GET    /api/rubrics                     List catalog entries
    POST   /api/rubrics                     Create/update a rubric
    GET    /api/rubrics/{id}                Get a rubric
    DELETE /api/rubrics/{id}                Delete a rubric

  Assignments:
    POST   /api/assignments                 Create/update an assignment
    DELETE /api/assignments/{id}            Delete an assignment

  Payroll:
    POST   /api/payroll/run                 Run payroll for a period
    GET    /api/payroll/payslips            List stored payslips (?month=&year=)

  Vouchers:
    POST   /api/vouchers                    Issue a voucher receipt

  Scenarios:
    GET    /api/scenarios                   List demo scenarios
    POST   /api/scenarios/load              Load a demo scenario
    POST   /api/scenarios/reset             Reset the database

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Database access (catalog, assignments, employees, payslips)
  - Engine: Rubric calculation
  - Builder/Runner: Payslip assembly and concurrent runs

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input (rubric.IsClientError)
  - 404: Resource not found
  - 500: Internal errors
  Data-quality warnings are never errors: they ride along in the
  response body so a payroll run always completes.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/rubric"
	"github.com/warp/payroll-engine/store/sqlite"
	"github.com/warp/payroll-engine/voucher"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Engine  *rubric.Engine
	Builder *payslip.Builder
	Runner  *payslip.BatchRunner

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store. The store
// serves as both the rubric catalog and the assignment source.
func NewHandler(store *sqlite.Store) *Handler {
	engine := rubric.NewEngine(store)
	builder := payslip.NewBuilder(engine, store)
	return &Handler{
		Store:   store,
		Engine:  engine,
		Builder: builder,
		Runner:  &payslip.BatchRunner{Builder: builder},
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := rubric.EmployeeID(chi.URLParam(r, "id"))

	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// CreateEmployee creates or updates an employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name are required", nil)
		return
	}
	if req.BaseSalary == nil || req.BaseSalary.Err != nil {
		writeError(w, http.StatusBadRequest, "base_salary is required and must be a valid amount", nil)
		return
	}

	emp := payslip.Employee{
		ID:         rubric.EmployeeID(req.ID),
		Name:       req.Name,
		Position:   req.Position,
		BaseSalary: rubric.MoneyFromDecimal(req.BaseSalary.Value),
	}
	if req.HireDate != "" {
		d, err := rubric.ParseDate(req.HireDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid hire_date format (use YYYY-MM-DD)", err)
			return
		}
		emp.HireDate = &d
	}

	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// DeleteEmployee removes an employee.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := rubric.EmployeeID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEmployeeAssignments lists an employee's assignments, active or
// not, plus warnings for any stored fields that could not be decoded.
func (h *Handler) GetEmployeeAssignments(w http.ResponseWriter, r *http.Request) {
	id := rubric.EmployeeID(chi.URLParam(r, "id"))

	assignments, warnings, err := h.Store.GetByEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list assignments", err)
		return
	}

	dtos := make([]factory.AssignmentJSON, len(assignments))
	for i, a := range assignments {
		dtos[i] = factory.ToJSON(a)
	}
	writeJSON(w, http.StatusOK, EmployeeAssignmentsResponse{
		Assignments: dtos,
		Warnings:    toWarningDTOs(warnings),
	})
}

// GetEmployeePayslip returns the payslip for ?month=&year=. A stored
// run is returned as-is; otherwise a fresh payslip is computed on
// demand (without statutory values) and not stored.
func (h *Handler) GetEmployeePayslip(w http.ResponseWriter, r *http.Request) {
	id := rubric.EmployeeID(chi.URLParam(r, "id"))
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	slip, err := h.Store.GetPayslip(ctx, id, month, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get payslip", err)
		return
	}
	if slip == nil {
		emp, err := h.Store.GetEmployee(ctx, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
			return
		}
		if emp == nil {
			writeError(w, http.StatusNotFound, "Employee not found", nil)
			return
		}
		slip, err = h.Builder.Build(ctx, *emp, payslip.StatutoryDiscounts{}, month, year)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to compute payslip", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, toPayslipDTO(slip))
}

// =============================================================================
// RUBRIC HANDLERS
// =============================================================================

// ListRubrics returns all catalog entries.
func (h *Handler) ListRubrics(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Store.ListDefinitions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list rubrics", err)
		return
	}

	dtos := make([]RubricDTO, len(defs))
	for i, d := range defs {
		dtos[i] = RubricDTO{ID: string(d.ID), Name: d.Name, Type: string(d.Type), Code: d.Code}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRubric returns a single catalog entry.
func (h *Handler) GetRubric(w http.ResponseWriter, r *http.Request) {
	id := rubric.RubricID(chi.URLParam(r, "id"))

	def, err := h.Store.Definition(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get rubric", err)
		return
	}
	if def == nil {
		writeError(w, http.StatusNotFound, "Rubric not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, RubricDTO{
		ID: string(def.ID), Name: def.Name, Type: string(def.Type), Code: def.Code,
	})
}

// CreateRubric creates or updates a catalog entry from JSON.
func (h *Handler) CreateRubric(w http.ResponseWriter, r *http.Request) {
	body := new(json.RawMessage)
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	def, err := factory.ParseRubric(string(*body))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rubric", err)
		return
	}

	if err := h.Store.SaveRubric(r.Context(), *def); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save rubric", err)
		return
	}

	writeJSON(w, http.StatusCreated, RubricDTO{
		ID: string(def.ID), Name: def.Name, Type: string(def.Type), Code: def.Code,
	})
}

// DeleteRubric removes a catalog entry. Assignments referencing it
// become dangling and surface as warnings on future runs.
func (h *Handler) DeleteRubric(w http.ResponseWriter, r *http.Request) {
	id := rubric.RubricID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteRubric(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete rubric", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ASSIGNMENT HANDLERS
// =============================================================================

// CreateAssignment creates or updates an assignment from JSON. Amounts
// may be numbers or formatted strings; unparseable fields are stored
// unset and reported back as warnings.
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var aj factory.AssignmentJSON
	if err := json.NewDecoder(r.Body).Decode(&aj); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if aj.ID == "" || aj.EmployeeID == "" || aj.RubricID == "" {
		writeError(w, http.StatusBadRequest, "id, employee_id and rubric_id are required", nil)
		return
	}

	a, warnings, err := factory.FromJSON(aj)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid assignment", err)
		return
	}

	if err := h.Store.Save(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save assignment", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateAssignmentResponse{
		Assignment: factory.ToJSON(a),
		Warnings:   toWarningDTOs(warnings),
	})
}

// DeleteAssignment removes an assignment.
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := rubric.AssignmentID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteAssignment(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete assignment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// VOUCHER HANDLERS
// =============================================================================

// CreateVoucher issues a voucher receipt, replacing any previous
// receipt of the same kind for the employee and period.
func (h *Handler) CreateVoucher(w http.ResponseWriter, r *http.Request) {
	var req CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id is required", nil)
		return
	}
	kind := voucher.Kind(req.Kind)
	if kind != voucher.KindTransport && kind != voucher.KindMeal {
		writeError(w, http.StatusBadRequest, "kind must be \"transport\" or \"meal\"", nil)
		return
	}
	if !rubric.ValidPeriod(req.Month, req.Year) {
		writeError(w, http.StatusBadRequest, "Invalid period", &rubric.InvalidPeriodError{Month: req.Month, Year: req.Year})
		return
	}
	if req.UnitValue == nil || req.UnitValue.Err != nil {
		writeError(w, http.StatusBadRequest, "unit_value is required and must be a valid amount", nil)
		return
	}

	ctx := r.Context()

	emp, err := h.Store.GetEmployee(ctx, rubric.EmployeeID(req.EmployeeID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}

	receipt := voucher.Receipt{
		EmployeeID: emp.ID,
		Kind:       kind,
		Month:      req.Month,
		Year:       req.Year,
		Days:       req.Days,
		UnitValue:  rubric.MoneyFromDecimal(req.UnitValue.Value),
	}

	if err := h.Store.SaveReceipt(ctx, receipt); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save receipt", err)
		return
	}

	writeJSON(w, http.StatusCreated, toReceiptDTO(receipt))
}

// GetEmployeeVouchers lists an employee's voucher receipts for ?month=&year=.
func (h *Handler) GetEmployeeVouchers(w http.ResponseWriter, r *http.Request) {
	id := rubric.EmployeeID(chi.URLParam(r, "id"))
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	receipts, err := h.Store.ListReceipts(r.Context(), id, month, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list receipts", err)
		return
	}

	dtos := make([]ReceiptDTO, len(receipts))
	for i, receipt := range receipts {
		dtos[i] = toReceiptDTO(receipt)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// RunPayroll computes payslips for a period, stores them, and returns
// the per-employee outcomes. One employee's failure never aborts the
// run; it is reported in that employee's result.
func (h *Handler) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !rubric.ValidPeriod(req.Month, req.Year) {
		writeError(w, http.StatusBadRequest, "Invalid period", &rubric.InvalidPeriodError{Month: req.Month, Year: req.Year})
		return
	}

	ctx := r.Context()

	employees, err := h.selectEmployees(w, r, req.EmployeeIDs)
	if err != nil {
		return // response already written
	}

	inputs := make([]payslip.BatchInput, len(employees))
	for i, emp := range employees {
		inputs[i] = payslip.BatchInput{
			Employee:  emp,
			Statutory: statutoryFor(req.Statutory, string(emp.ID)),
		}
	}

	results := h.Runner.Run(ctx, inputs, req.Month, req.Year)

	dtos := make([]RunResultDTO, len(results))
	for i, res := range results {
		dto := RunResultDTO{EmployeeID: string(res.Employee.ID)}
		if res.Err != nil {
			dto.Error = res.Err.Error()
		} else {
			if err := h.Store.SavePayslip(ctx, res.Payslip); err != nil {
				dto.Error = err.Error()
			} else {
				dto.Payslip = toPayslipDTO(res.Payslip)
			}
		}
		dtos[i] = dto
	}

	writeJSON(w, http.StatusOK, dtos)
}

// ListPayslips returns all stored payslips for ?month=&year=.
func (h *Handler) ListPayslips(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodParams(w, r)
	if !ok {
		return
	}

	slips, err := h.Store.ListPayslips(r.Context(), month, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payslips", err)
		return
	}

	dtos := make([]*PayslipDTO, len(slips))
	for i, slip := range slips {
		dtos[i] = toPayslipDTO(slip)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// selectEmployees resolves the run roster: the named IDs, or everyone.
// Writes the error response itself on failure.
func (h *Handler) selectEmployees(w http.ResponseWriter, r *http.Request, ids []string) ([]payslip.Employee, error) {
	ctx := r.Context()

	if len(ids) == 0 {
		employees, err := h.Store.ListEmployees(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
			return nil, err
		}
		return employees, nil
	}

	employees := make([]payslip.Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := h.Store.GetEmployee(ctx, rubric.EmployeeID(id))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
			return nil, err
		}
		if emp == nil {
			writeError(w, http.StatusNotFound, "Employee not found: "+id, rubric.ErrEmployeeNotFound)
			return nil, rubric.ErrEmployeeNotFound
		}
		employees = append(employees, *emp)
	}
	return employees, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func toEmployeeDTO(e payslip.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:         string(e.ID),
		Name:       e.Name,
		Position:   e.Position,
		BaseSalary: e.BaseSalary.String(),
	}
	if e.HireDate != nil {
		dto.HireDate = e.HireDate.String()
	}
	return dto
}

func statutoryFor(m map[string]StatutoryDTO, employeeID string) payslip.StatutoryDiscounts {
	dto, ok := m[employeeID]
	if !ok {
		return payslip.StatutoryDiscounts{}
	}
	var s payslip.StatutoryDiscounts
	if dto.INSS != nil && dto.INSS.Err == nil {
		s.INSS = rubric.MoneyFromDecimal(dto.INSS.Value)
	}
	if dto.IRRF != nil && dto.IRRF.Err == nil {
		s.IRRF = rubric.MoneyFromDecimal(dto.IRRF.Value)
	}
	if dto.FGTS != nil && dto.FGTS.Err == nil {
		s.FGTS = rubric.MoneyFromDecimal(dto.FGTS.Value)
	}
	return s
}

// periodParams reads ?month=&year= query params. Writes a 400 and
// returns ok=false when missing or invalid.
func periodParams(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, err1 := strconv.Atoi(r.URL.Query().Get("month"))
	year, err2 := strconv.Atoi(r.URL.Query().Get("year"))
	if err1 != nil || err2 != nil || !rubric.ValidPeriod(month, year) {
		writeError(w, http.StatusBadRequest, "month and year query params are required and must form a valid period", nil)
		return 0, 0, false
	}
	return month, year, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]any{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}
