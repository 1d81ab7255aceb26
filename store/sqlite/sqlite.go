/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Implements persistence for the payroll engine (rubric catalog,
  assignments, employees, generated payslips) using SQLite. In
  production, the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

INTERFACES IMPLEMENTED:
  rubric.Catalog:         Rubric definition lookups
  rubric.AssignmentStore: Employee-to-rubric links

KEY TABLES:
  rubrics:          Catalog of benefit/discount definitions
  assignments:      Employee-rubric links with amounts and validity windows
  employees:        Employee records with base salary
  payslips:         Generated payslip documents (JSON blob per run)
  voucher_receipts: Transport/meal voucher receipts per period

DEFENSIVE READS:
  Amounts are stored as canonical decimal TEXT and dates as ISO
  YYYY-MM-DD TEXT. A row with an unparseable amount or date is not an
  error at read time: the bad field comes back unset (nil), matching
  how the calculation engine treats absent data, and the read reports
  a rubric.Warning naming the field. Legacy imports with dirty values
  therefore degrade to operator-visible warnings instead of breaking
  payroll runs.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  engine := rubric.NewEngine(store)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - rubric/catalog.go: Interface definitions
  - rubric/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/rubric"
	"github.com/warp/payroll-engine/voucher"
)

// Store implements the storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Rubric catalog (benefit/discount definitions)
	CREATE TABLE IF NOT EXISTS rubrics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		code TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rubrics_type ON rubrics(type);

	-- Assignments (employee-rubric links)
	CREATE TABLE IF NOT EXISTS assignments (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		rubric_id TEXT NOT NULL,
		custom_name TEXT,
		custom_value TEXT,
		custom_percentage TEXT,
		installment_total TEXT,
		installment_count INTEGER,
		installment_current INTEGER,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		start_date TEXT,
		end_date TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_assignments_employee
		ON assignments(employee_id);
	CREATE INDEX IF NOT EXISTS idx_assignments_rubric
		ON assignments(rubric_id);

	-- Composite index for active assignment lookups (hot path)
	CREATE INDEX IF NOT EXISTS idx_assignments_employee_active
		ON assignments(employee_id, is_active);

	-- Employees
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT,
		base_salary TEXT NOT NULL,
		hire_date TEXT,
		created_at TEXT NOT NULL
	);

	-- Payslips (one document per employee and period)
	CREATE TABLE IF NOT EXISTS payslips (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		document_json TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(employee_id, month, year)
	);

	CREATE INDEX IF NOT EXISTS idx_payslips_period
		ON payslips(year, month);

	-- Voucher receipts (one per employee, kind and period)
	CREATE TABLE IF NOT EXISTS voucher_receipts (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		days INTEGER NOT NULL DEFAULT 0,
		unit_value TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(employee_id, kind, month, year)
	);

	CREATE INDEX IF NOT EXISTS idx_voucher_receipts_period
		ON voucher_receipts(year, month);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RUBRIC CATALOG (rubric.Catalog interface)
// =============================================================================

// SaveRubric saves a rubric definition, upserting by ID.
func (s *Store) SaveRubric(ctx context.Context, def rubric.RubricDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO rubrics (id, name, type, code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			code = excluded.code,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, query,
		string(def.ID), def.Name, string(def.Type), def.Code, now, now,
	)
	return err
}

// Definition retrieves a rubric by ID. Returns (nil, nil) when the ID
// is unknown so callers can treat dangling references as data-quality
// warnings rather than errors.
func (s *Store) Definition(ctx context.Context, id rubric.RubricID) (*rubric.RubricDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var def rubric.RubricDefinition
	var rubricType string
	var code sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, type, code FROM rubrics WHERE id = ?",
		string(id),
	).Scan(&def.ID, &def.Name, &rubricType, &code)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	def.Type = rubric.RubricType(rubricType)
	def.Code = code.String
	return &def, nil
}

// ListDefinitions returns all rubrics ordered by name.
func (s *Store) ListDefinitions(ctx context.Context) ([]rubric.RubricDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, type, code FROM rubrics ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []rubric.RubricDefinition
	for rows.Next() {
		var def rubric.RubricDefinition
		var rubricType string
		var code sql.NullString
		if err := rows.Scan(&def.ID, &def.Name, &rubricType, &code); err != nil {
			return nil, err
		}
		def.Type = rubric.RubricType(rubricType)
		def.Code = code.String
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// DeleteRubric removes a rubric. Assignments referencing it survive and
// surface as dangling-reference warnings at calculation time.
func (s *Store) DeleteRubric(ctx context.Context, id rubric.RubricID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM rubrics WHERE id = ?", string(id))
	return err
}

// =============================================================================
// ASSIGNMENT STORE (rubric.AssignmentStore interface)
// =============================================================================

// Save saves an assignment, upserting by ID.
func (s *Store) Save(ctx context.Context, a rubric.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO assignments
		(id, employee_id, rubric_id, custom_name, custom_value, custom_percentage,
		 installment_total, installment_count, installment_current,
		 is_active, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			employee_id = excluded.employee_id,
			rubric_id = excluded.rubric_id,
			custom_name = excluded.custom_name,
			custom_value = excluded.custom_value,
			custom_percentage = excluded.custom_percentage,
			installment_total = excluded.installment_total,
			installment_count = excluded.installment_count,
			installment_current = excluded.installment_current,
			is_active = excluded.is_active,
			start_date = excluded.start_date,
			end_date = excluded.end_date
	`

	var customValue, customPct, instTotal *string
	var instCount, instCurrent *int
	if a.CustomValue != nil {
		v := a.CustomValue.Value.String()
		customValue = &v
	}
	if a.CustomPercentage != nil {
		v := a.CustomPercentage.String()
		customPct = &v
	}
	if a.Installments != nil {
		v := a.Installments.TotalAmount.Value.String()
		instTotal = &v
		instCount = &a.Installments.TotalInstallments
		instCurrent = &a.Installments.CurrentInstallment
	}

	_, err := s.db.ExecContext(ctx, query,
		string(a.ID), string(a.EmployeeID), string(a.RubricID),
		nullString(a.CustomName),
		customValue, customPct,
		instTotal, instCount, instCurrent,
		a.IsActive,
		dateString(a.StartDate), dateString(a.EndDate),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetByEmployee returns all assignments for an employee, active or not.
// Period filtering belongs to the calculation engine, not the store.
// Warnings report stored fields that failed the defensive parse.
func (s *Store) GetByEmployee(ctx context.Context, employeeID rubric.EmployeeID) ([]rubric.Assignment, []rubric.Warning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, employee_id, rubric_id, custom_name, custom_value, custom_percentage,
		       installment_total, installment_count, installment_current,
		       is_active, start_date, end_date
		FROM assignments
		WHERE employee_id = ?
		ORDER BY created_at ASC, id ASC
	`

	return s.queryAssignments(ctx, query, string(employeeID))
}

// GetByRubric returns all assignments referencing a rubric.
func (s *Store) GetByRubric(ctx context.Context, rubricID rubric.RubricID) ([]rubric.Assignment, []rubric.Warning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, employee_id, rubric_id, custom_name, custom_value, custom_percentage,
		       installment_total, installment_count, installment_current,
		       is_active, start_date, end_date
		FROM assignments
		WHERE rubric_id = ?
		ORDER BY employee_id
	`

	return s.queryAssignments(ctx, query, string(rubricID))
}

func (s *Store) queryAssignments(ctx context.Context, query string, args ...any) ([]rubric.Assignment, []rubric.Warning, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var assignments []rubric.Assignment
	var warnings []rubric.Warning
	for rows.Next() {
		a, rowWarnings, err := scanAssignment(rows)
		if err != nil {
			return nil, nil, err
		}
		assignments = append(assignments, a)
		warnings = append(warnings, rowWarnings...)
	}
	return assignments, warnings, rows.Err()
}

func scanAssignment(rows *sql.Rows) (rubric.Assignment, []rubric.Warning, error) {
	var (
		a           rubric.Assignment
		customName  sql.NullString
		customValue sql.NullString
		customPct   sql.NullString
		instTotal   sql.NullString
		instCount   sql.NullInt64
		instCurrent sql.NullInt64
		startDate   sql.NullString
		endDate     sql.NullString
	)

	err := rows.Scan(
		&a.ID, &a.EmployeeID, &a.RubricID, &customName,
		&customValue, &customPct,
		&instTotal, &instCount, &instCurrent,
		&a.IsActive, &startDate, &endDate,
	)
	if err != nil {
		return a, nil, fmt.Errorf("failed to scan assignment: %w", err)
	}

	a.CustomName = customName.String

	// Defensive parse: a corrupt stored value comes back as nil, with a
	// warning naming the field so the operator can repair the row. An
	// unset amount then also surfaces as missing_amount_specifier from
	// the engine; an unset date silently widens the validity window, so
	// the load warning is the only visibility there is.
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

	if customValue.Valid {
		if d, err := decimal.NewFromString(customValue.String); err == nil {
			m := rubric.MoneyFromDecimal(d)
			a.CustomValue = &m
		} else {
			quarantine(rubric.WarnUnparseableAmount,
				fmt.Sprintf("stored custom_value %q", customValue.String))
		}
	}
	if customPct.Valid {
		if d, err := decimal.NewFromString(customPct.String); err == nil {
			a.CustomPercentage = &d
		} else {
			quarantine(rubric.WarnUnparseableAmount,
				fmt.Sprintf("stored custom_percentage %q", customPct.String))
		}
	}
	if instTotal.Valid && instCount.Valid && instCurrent.Valid {
		if d, err := decimal.NewFromString(instTotal.String); err == nil {
			a.Installments = &rubric.InstallmentPlan{
				TotalAmount:        rubric.MoneyFromDecimal(d),
				TotalInstallments:  int(instCount.Int64),
				CurrentInstallment: int(instCurrent.Int64),
			}
		} else {
			quarantine(rubric.WarnUnparseableAmount,
				fmt.Sprintf("stored installment_total %q", instTotal.String))
		}
	}
	if startDate.Valid {
		if d, err := rubric.ParseDate(startDate.String); err == nil {
			a.StartDate = &d
		} else {
			quarantine(rubric.WarnUnparseableDate,
				fmt.Sprintf("stored start_date %q", startDate.String))
		}
	}
	if endDate.Valid {
		if d, err := rubric.ParseDate(endDate.String); err == nil {
			a.EndDate = &d
		} else {
			quarantine(rubric.WarnUnparseableDate,
				fmt.Sprintf("stored end_date %q", endDate.String))
		}
	}

	return a, warnings, nil
}

// DeleteAssignment removes an assignment.
func (s *Store) DeleteAssignment(ctx context.Context, id rubric.AssignmentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM assignments WHERE id = ?", string(id))
	return err
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

// SaveEmployee saves an employee, upserting by ID.
func (s *Store) SaveEmployee(ctx context.Context, emp payslip.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO employees (id, name, position, base_salary, hire_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			position = excluded.position,
			base_salary = excluded.base_salary,
			hire_date = excluded.hire_date
	`

	_, err := s.db.ExecContext(ctx, query,
		string(emp.ID), emp.Name, nullString(emp.Position),
		emp.BaseSalary.Value.String(),
		dateString(emp.HireDate),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetEmployee retrieves an employee by ID. Returns (nil, nil) when not found.
func (s *Store) GetEmployee(ctx context.Context, id rubric.EmployeeID) (*payslip.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emp payslip.Employee
	var position, hireDate sql.NullString
	var baseSalary string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, position, base_salary, hire_date FROM employees WHERE id = ?",
		string(id),
	).Scan(&emp.ID, &emp.Name, &position, &baseSalary, &hireDate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	emp.Position = position.String
	if d, err := decimal.NewFromString(baseSalary); err == nil {
		emp.BaseSalary = rubric.MoneyFromDecimal(d)
	}
	if hireDate.Valid {
		if d, err := rubric.ParseDate(hireDate.String); err == nil {
			emp.HireDate = &d
		}
	}
	return &emp, nil
}

// ListEmployees returns all employees ordered by name.
func (s *Store) ListEmployees(ctx context.Context) ([]payslip.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, position, base_salary, hire_date FROM employees ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []payslip.Employee
	for rows.Next() {
		var emp payslip.Employee
		var position, hireDate sql.NullString
		var baseSalary string
		if err := rows.Scan(&emp.ID, &emp.Name, &position, &baseSalary, &hireDate); err != nil {
			return nil, err
		}
		emp.Position = position.String
		if d, err := decimal.NewFromString(baseSalary); err == nil {
			emp.BaseSalary = rubric.MoneyFromDecimal(d)
		}
		if hireDate.Valid {
			if d, err := rubric.ParseDate(hireDate.String); err == nil {
				emp.HireDate = &d
			}
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// DeleteEmployee removes an employee.
func (s *Store) DeleteEmployee(ctx context.Context, id rubric.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", string(id))
	return err
}

// =============================================================================
// PAYSLIP STORE
// =============================================================================

// SavePayslip stores a generated payslip as a JSON document, replacing
// any previous run for the same employee and period.
func (s *Store) SavePayslip(ctx context.Context, slip *payslip.Payslip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := json.Marshal(slip)
	if err != nil {
		return fmt.Errorf("failed to encode payslip: %w", err)
	}

	query := `
		INSERT INTO payslips (id, employee_id, month, year, document_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, month, year) DO UPDATE SET
			document_json = excluded.document_json,
			created_at = excluded.created_at
	`

	id := fmt.Sprintf("%s-%04d-%02d", slip.EmployeeID, slip.Year, slip.Month)
	_, err = s.db.ExecContext(ctx, query,
		id, string(slip.EmployeeID), slip.Month, slip.Year,
		string(doc),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetPayslip retrieves a stored payslip for an employee and period.
// Returns (nil, nil) when no run has been stored.
func (s *Store) GetPayslip(ctx context.Context, employeeID rubric.EmployeeID, month, year int) (*payslip.Payslip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc string
	err := s.db.QueryRowContext(ctx,
		"SELECT document_json FROM payslips WHERE employee_id = ? AND month = ? AND year = ?",
		string(employeeID), month, year,
	).Scan(&doc)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var slip payslip.Payslip
	if err := json.Unmarshal([]byte(doc), &slip); err != nil {
		return nil, fmt.Errorf("failed to decode payslip: %w", err)
	}
	return &slip, nil
}

// ListPayslips returns all stored payslips for a period.
func (s *Store) ListPayslips(ctx context.Context, month, year int) ([]*payslip.Payslip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT document_json FROM payslips WHERE month = ? AND year = ? ORDER BY employee_id",
		month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []*payslip.Payslip
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var slip payslip.Payslip
		if err := json.Unmarshal([]byte(doc), &slip); err != nil {
			return nil, fmt.Errorf("failed to decode payslip: %w", err)
		}
		slips = append(slips, &slip)
	}
	return slips, rows.Err()
}

// =============================================================================
// VOUCHER RECEIPT STORE
// =============================================================================

// SaveReceipt stores a voucher receipt, replacing any previous receipt
// of the same kind for the employee and period.
func (s *Store) SaveReceipt(ctx context.Context, r voucher.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO voucher_receipts
		(id, employee_id, kind, month, year, days, unit_value, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, kind, month, year) DO UPDATE SET
			days = excluded.days,
			unit_value = excluded.unit_value,
			created_at = excluded.created_at
	`

	id := fmt.Sprintf("%s-%s-%04d-%02d", r.EmployeeID, r.Kind, r.Year, r.Month)
	_, err := s.db.ExecContext(ctx, query,
		id, string(r.EmployeeID), string(r.Kind), r.Month, r.Year,
		r.Days, r.UnitValue.Value.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListReceipts returns an employee's voucher receipts for a period,
// ordered by kind. Receipts are only ever written with canonical
// values, so a corrupt unit_value is a storage error, not a warning.
func (s *Store) ListReceipts(ctx context.Context, employeeID rubric.EmployeeID, month, year int) ([]voucher.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, kind, month, year, days, unit_value
		FROM voucher_receipts
		WHERE employee_id = ? AND month = ? AND year = ?
		ORDER BY kind
	`, string(employeeID), month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []voucher.Receipt
	for rows.Next() {
		var r voucher.Receipt
		var unitValue string
		if err := rows.Scan(&r.EmployeeID, &r.Kind, &r.Month, &r.Year, &r.Days, &unitValue); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(unitValue)
		if err != nil {
			return nil, fmt.Errorf("failed to decode receipt unit_value %q: %w", unitValue, err)
		}
		r.UnitValue = rubric.MoneyFromDecimal(d)
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"payslips", "voucher_receipts", "assignments", "employees", "rubrics"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// Helper functions

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func dateString(d *rubric.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
