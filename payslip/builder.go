package payslip

import (
	"context"

	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// BUILDER - Assembles a payslip for one employee and period
// =============================================================================

type Builder struct {
	Engine      *rubric.Engine
	Assignments rubric.AssignmentStore
}

func NewBuilder(engine *rubric.Engine, assignments rubric.AssignmentStore) *Builder {
	return &Builder{Engine: engine, Assignments: assignments}
}

// Build loads the employee's assignments, runs the rubric engine and
// assembles the payslip. Data-quality warnings, whether raised while
// loading stored rows or while calculating, ride along on the payslip;
// only call-level or storage errors fail the build.
func (b *Builder) Build(
	ctx context.Context,
	emp Employee,
	statutory StatutoryDiscounts,
	month, year int,
) (*Payslip, error) {
	assignments, loadWarnings, err := b.Assignments.GetByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	totals, warnings, err := b.Engine.CalculateTotals(ctx, assignments, emp.BaseSalary, month, year)
	if err != nil {
		return nil, err
	}
	warnings = append(loadWarnings, warnings...)

	return &Payslip{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Position:     emp.Position,
		Month:        month,
		Year:         year,
		BaseSalary:   emp.BaseSalary,
		Rubrics:      totals,
		Statutory:    statutory,
		Warnings:     warnings,
	}, nil
}
