package payslip_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payslip"
	"github.com/warp/payroll-engine/rubric"
	"github.com/warp/payroll-engine/rubric/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestBuilder(t *testing.T) (*payslip.Builder, *store.MemoryAssignments) {
	t.Helper()

	catalog := store.NewMemoryCatalog()
	catalog.Put(rubric.RubricDefinition{ID: "transport", Name: "Auxílio Transporte", Type: rubric.TypeBenefit, Code: "101"})
	catalog.Put(rubric.RubricDefinition{ID: "loan", Name: "Empréstimo", Type: rubric.TypeDiscount, Code: "201"})

	assignments := store.NewMemoryAssignments()
	return payslip.NewBuilder(rubric.NewEngine(catalog), assignments), assignments
}

func testEmployee(base float64) payslip.Employee {
	return payslip.Employee{
		ID:         "emp-1",
		Name:       "Maria Souza",
		Position:   "Analista",
		BaseSalary: rubric.NewMoney(base),
	}
}

func moneyPtr(f float64) *rubric.Money {
	m := rubric.NewMoney(f)
	return &m
}

func pctPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// =============================================================================
// PAYSLIP ASSEMBLY TESTS
// =============================================================================

func TestBuild_GrossAndNetTotals(t *testing.T) {
	// GIVEN: base 3000, a 220 transport benefit, an 8% loan discount,
	//        INSS 330 and IRRF 112.50 entered manually
	// WHEN: Building the April 2024 payslip
	// THEN: gross = 3220, net = 3220 - 240 - 330 - 112.50 = 2537.50

	builder, assignments := newTestBuilder(t)
	ctx := context.Background()

	require.NoError(t, assignments.Save(ctx, rubric.Assignment{
		ID: "a1", EmployeeID: "emp-1", RubricID: "transport",
		CustomValue: moneyPtr(220), IsActive: true,
	}))
	require.NoError(t, assignments.Save(ctx, rubric.Assignment{
		ID: "a2", EmployeeID: "emp-1", RubricID: "loan",
		CustomPercentage: pctPtr(8), IsActive: true,
	}))

	statutory := payslip.StatutoryDiscounts{
		INSS: rubric.NewMoney(330),
		IRRF: rubric.NewMoney(112.50),
		FGTS: rubric.NewMoney(257.60),
	}

	slip, err := builder.Build(ctx, testEmployee(3000), statutory, 4, 2024)
	require.NoError(t, err)

	assert.Equal(t, "3220.00", slip.Gross().String())
	assert.Equal(t, "682.50", slip.TotalDiscounts().String())
	assert.Equal(t, "2537.50", slip.Net().String())
	assert.Empty(t, slip.Warnings)
}

func TestBuild_FGTSIsInformativeOnly(t *testing.T) {
	// FGTS is employer-side: it must never reduce net pay.
	builder, _ := newTestBuilder(t)

	statutory := payslip.StatutoryDiscounts{FGTS: rubric.NewMoney(240)}
	slip, err := builder.Build(context.Background(), testEmployee(3000), statutory, 4, 2024)
	require.NoError(t, err)

	assert.Equal(t, "3000.00", slip.Net().String())
	assert.Equal(t, "240.00", slip.Statutory.FGTS.String())
}

func TestBuild_WarningsCarriedOnPayslip(t *testing.T) {
	// GIVEN: An assignment referencing a deleted rubric
	// WHEN: Building
	// THEN: Payslip succeeds, warning is attached for the operator

	builder, assignments := newTestBuilder(t)
	ctx := context.Background()

	require.NoError(t, assignments.Save(ctx, rubric.Assignment{
		ID: "a1", EmployeeID: "emp-1", RubricID: "deleted",
		CustomValue: moneyPtr(100), IsActive: true,
	}))

	slip, err := builder.Build(ctx, testEmployee(3000), payslip.StatutoryDiscounts{}, 4, 2024)
	require.NoError(t, err)

	require.Len(t, slip.Warnings, 1)
	assert.Equal(t, rubric.WarnDanglingRubricReference, slip.Warnings[0].Code)
	assert.Equal(t, "3000.00", slip.Net().String())
}

// flaggedAssignments wraps the memory store and reports fixed load
// warnings, the way a SQL store does for rows it could not fully decode.
type flaggedAssignments struct {
	inner    *store.MemoryAssignments
	warnings []rubric.Warning
}

func (f *flaggedAssignments) Save(ctx context.Context, a rubric.Assignment) error {
	return f.inner.Save(ctx, a)
}

func (f *flaggedAssignments) GetByEmployee(ctx context.Context, id rubric.EmployeeID) ([]rubric.Assignment, []rubric.Warning, error) {
	assignments, _, err := f.inner.GetByEmployee(ctx, id)
	return assignments, f.warnings, err
}

func TestBuild_LoadWarningsCarriedOnPayslip(t *testing.T) {
	// GIVEN: An assignment source that flags a stored date it could not
	//        decode, leaving the window unbounded
	// WHEN: Building
	// THEN: The flag reaches the payslip; an operator must never see a
	//       clean payslip computed from a degraded record

	catalog := store.NewMemoryCatalog()
	catalog.Put(rubric.RubricDefinition{ID: "transport", Name: "Auxílio Transporte", Type: rubric.TypeBenefit})

	assignments := &flaggedAssignments{
		inner: store.NewMemoryAssignments(),
		warnings: []rubric.Warning{{
			Code:         rubric.WarnUnparseableDate,
			EmployeeID:   "emp-1",
			AssignmentID: "a1",
			RubricID:     "transport",
			Detail:       `stored start_date "31/31/broken"`,
		}},
	}
	require.NoError(t, assignments.Save(context.Background(), rubric.Assignment{
		ID: "a1", EmployeeID: "emp-1", RubricID: "transport",
		CustomValue: moneyPtr(220), IsActive: true,
	}))

	builder := payslip.NewBuilder(rubric.NewEngine(catalog), assignments)
	slip, err := builder.Build(context.Background(), testEmployee(3000), payslip.StatutoryDiscounts{}, 4, 2024)
	require.NoError(t, err)

	require.Len(t, slip.Warnings, 1)
	assert.Equal(t, rubric.WarnUnparseableDate, slip.Warnings[0].Code)
	assert.Equal(t, "3220.00", slip.Gross().String(), "the degraded record still computes")
}

func TestBuild_NoAssignments_BasePassesThrough(t *testing.T) {
	builder, _ := newTestBuilder(t)

	slip, err := builder.Build(context.Background(), testEmployee(2500), payslip.StatutoryDiscounts{}, 4, 2024)
	require.NoError(t, err)

	assert.Equal(t, "2500.00", slip.Gross().String())
	assert.Equal(t, "2500.00", slip.Net().String())
	assert.Empty(t, slip.Rubrics.Benefits)
	assert.Empty(t, slip.Rubrics.Discounts)
}

// =============================================================================
// BATCH RUN TESTS
// =============================================================================

func TestBatchRun_ResultsInInputOrder(t *testing.T) {
	// GIVEN: Several employees
	// WHEN: Running a batch payroll
	// THEN: One result per employee, in input order

	builder, assignments := newTestBuilder(t)
	ctx := context.Background()

	var inputs []payslip.BatchInput
	for _, id := range []string{"emp-1", "emp-2", "emp-3", "emp-4", "emp-5"} {
		require.NoError(t, assignments.Save(ctx, rubric.Assignment{
			ID: rubric.AssignmentID("asg-" + id), EmployeeID: rubric.EmployeeID(id),
			RubricID: "transport", CustomValue: moneyPtr(220), IsActive: true,
		}))
		inputs = append(inputs, payslip.BatchInput{
			Employee: payslip.Employee{ID: rubric.EmployeeID(id), Name: id, BaseSalary: rubric.NewMoney(3000)},
		})
	}

	runner := &payslip.BatchRunner{Builder: builder, Workers: 3}
	results := runner.Run(ctx, inputs, 4, 2024)

	require.Len(t, results, len(inputs))
	for i, res := range results {
		assert.Equal(t, inputs[i].Employee.ID, res.Employee.ID, "results must preserve input order")
		require.NoError(t, res.Err)
		assert.Equal(t, "3220.00", res.Payslip.Gross().String())
	}
}

func TestBatchRun_BadPeriod_IsolatedPerEmployee(t *testing.T) {
	// A call-level error surfaces in each result rather than panicking
	// or aborting the run machinery.
	builder, _ := newTestBuilder(t)

	inputs := []payslip.BatchInput{
		{Employee: testEmployee(3000)},
	}

	runner := &payslip.BatchRunner{Builder: builder}
	results := runner.Run(context.Background(), inputs, 13, 2024)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, rubric.ErrInvalidPeriod)
	assert.Nil(t, results[0].Payslip)
}
