package rubric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func money(f float64) *rubric.Money {
	m := rubric.NewMoney(f)
	return &m
}

func pct(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func benefitDef() rubric.RubricDefinition {
	return rubric.RubricDefinition{ID: "rub-1", Name: "Auxílio Transporte", Type: rubric.TypeBenefit}
}

func discountDef() rubric.RubricDefinition {
	return rubric.RubricDefinition{ID: "rub-2", Name: "Empréstimo", Type: rubric.TypeDiscount}
}

// =============================================================================
// AMOUNT SEMANTICS
// =============================================================================

func TestCompute_FixedValue_RoundsHalfUp(t *testing.T) {
	// GIVEN: Assignment with customValue 150.005
	// WHEN: Computing against any base salary
	// THEN: value = 150.01 (half-up rounding), independent of base

	a := activeAssignment()
	a.CustomValue = money(150.005)

	for _, base := range []float64{0, 1000, 3000} {
		item, warnings, ok := rubric.Compute(a, benefitDef(), rubric.NewMoney(base))
		if !ok {
			t.Fatal("expected a line item")
		}
		if len(warnings) != 0 {
			t.Errorf("expected no warnings, got %v", warnings)
		}
		if item.Value.String() != "150.01" {
			t.Errorf("base=%v: expected 150.01, got %s", base, item.Value)
		}
		if !item.IsBenefit {
			t.Error("benefit definition should produce a benefit item")
		}
	}
}

func TestCompute_Percentage_AppliesToBaseSalary(t *testing.T) {
	// GIVEN: Assignment with customPercentage 8, base salary 3000
	// WHEN: Computing
	// THEN: value = 240.00

	a := activeAssignment()
	a.CustomPercentage = pct(8)

	item, _, ok := rubric.Compute(a, discountDef(), rubric.NewMoney(3000))
	if !ok {
		t.Fatal("expected a line item")
	}
	if item.Value.String() != "240.00" {
		t.Errorf("expected 240.00, got %s", item.Value)
	}
	if item.IsBenefit {
		t.Error("discount definition should produce a discount item")
	}

	// Recomputing with a different base changes the result: the
	// percentage is never cached or frozen.
	item2, _, _ := rubric.Compute(a, discountDef(), rubric.NewMoney(4000))
	if item2.Value.String() != "320.00" {
		t.Errorf("expected 320.00 with new base, got %s", item2.Value)
	}
}

func TestCompute_BothSpecifiers_FixedWinsWithWarning(t *testing.T) {
	// GIVEN: customValue 100 AND customPercentage 10, base 1000
	// WHEN: Computing
	// THEN: value = 100 (fixed wins), ambiguity warning recorded

	a := activeAssignment()
	a.CustomValue = money(100)
	a.CustomPercentage = pct(10)

	item, warnings, ok := rubric.Compute(a, discountDef(), rubric.NewMoney(1000))
	if !ok {
		t.Fatal("expected a line item")
	}
	if item.Value.String() != "100.00" {
		t.Errorf("expected fixed value 100.00 to win, got %s", item.Value)
	}
	if len(warnings) != 1 || warnings[0].Code != rubric.WarnAmbiguousAmountSpecifier {
		t.Errorf("expected a single ambiguity warning, got %v", warnings)
	}
}

func TestCompute_NeitherSpecifier_SkippedWithWarning(t *testing.T) {
	// GIVEN: No value, no percentage, no installment plan
	// WHEN: Computing
	// THEN: No item; MissingAmountSpecifier warning

	a := activeAssignment()

	_, warnings, ok := rubric.Compute(a, benefitDef(), rubric.NewMoney(1000))
	if ok {
		t.Error("expected no line item for a missing amount specifier")
	}
	if len(warnings) != 1 || warnings[0].Code != rubric.WarnMissingAmountSpecifier {
		t.Errorf("expected missing-amount warning, got %v", warnings)
	}
	if warnings[0].AssignmentID != a.ID || warnings[0].EmployeeID != a.EmployeeID {
		t.Error("warning should carry assignment and employee ids")
	}
}

func TestCompute_NegativeInputs_NotClamped(t *testing.T) {
	// GIVEN: Negative base salary with a positive percentage
	// WHEN: Computing
	// THEN: Negative value passes through; clamping is caller policy

	a := activeAssignment()
	a.CustomPercentage = pct(10)

	item, _, _ := rubric.Compute(a, discountDef(), rubric.NewMoney(-1000))
	if item.Value.String() != "-100.00" {
		t.Errorf("expected -100.00, got %s", item.Value)
	}
}

func TestCompute_CustomName_OverridesCatalogName(t *testing.T) {
	a := activeAssignment()
	a.CustomValue = money(50)
	a.CustomName = "Vale Combustível"

	item, _, _ := rubric.Compute(a, benefitDef(), rubric.NewMoney(1000))
	if item.Name != "Vale Combustível" {
		t.Errorf("expected custom name, got %q", item.Name)
	}

	a.CustomName = ""
	item, _, _ = rubric.Compute(a, benefitDef(), rubric.NewMoney(1000))
	if item.Name != "Auxílio Transporte" {
		t.Errorf("expected catalog name fallback, got %q", item.Name)
	}
}

// =============================================================================
// INSTALLMENT PLANS
// =============================================================================

func TestCompute_InstallmentPlan_PerInstallmentValue(t *testing.T) {
	// GIVEN: A 5000 loan over 12 installments, currently on installment 3,
	//        with no explicit amount specifier
	// WHEN: Computing
	// THEN: value = round2(5000/12) = 416.67, label carries "3/12"

	a := activeAssignment()
	a.CustomName = "Empréstimo"
	a.Installments = &rubric.InstallmentPlan{
		TotalAmount:        rubric.NewMoney(5000),
		TotalInstallments:  12,
		CurrentInstallment: 3,
	}

	item, warnings, ok := rubric.Compute(a, discountDef(), rubric.NewMoney(3000))
	if !ok {
		t.Fatal("expected a line item")
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
	if item.Value.String() != "416.67" {
		t.Errorf("expected 416.67, got %s", item.Value)
	}
	if item.Name != "Empréstimo 3/12" {
		t.Errorf("expected progress label from structured data, got %q", item.Name)
	}
}

func TestCompute_FixedValue_TakesPrecedenceOverPlan(t *testing.T) {
	// An explicit customValue overrides the plan-derived amount.
	a := activeAssignment()
	a.CustomValue = money(300)
	a.Installments = &rubric.InstallmentPlan{
		TotalAmount:        rubric.NewMoney(5000),
		TotalInstallments:  12,
		CurrentInstallment: 3,
	}

	item, _, _ := rubric.Compute(a, discountDef(), rubric.NewMoney(3000))
	if item.Value.String() != "300.00" {
		t.Errorf("expected explicit value 300.00, got %s", item.Value)
	}
}

func TestInstallmentPlan_Remaining(t *testing.T) {
	plan := rubric.InstallmentPlan{
		TotalAmount:        rubric.NewMoney(5000),
		TotalInstallments:  4,
		CurrentInstallment: 1,
	}

	// 5000/4 = 1250 per installment; after installment 1, 3750 remains.
	if got := plan.Remaining().String(); got != "3750.00" {
		t.Errorf("expected 3750.00 remaining, got %s", got)
	}

	plan.CurrentInstallment = 4
	if got := plan.Remaining().String(); got != "0.00" {
		t.Errorf("expected 0.00 remaining after last installment, got %s", got)
	}
}

func TestInstallmentPlan_Remaining_NonDivisibleTotal(t *testing.T) {
	// GIVEN: A 5000 loan over 12 installments of 416.67, which overshoots
	//        the total by 0.04 across the full schedule
	// WHEN: Asking for the balance after the final installment
	// THEN: Zero, never a negative balance

	plan := rubric.InstallmentPlan{
		TotalAmount:        rubric.NewMoney(5000),
		TotalInstallments:  12,
		CurrentInstallment: 12,
	}

	if got := plan.Remaining().String(); got != "0.00" {
		t.Errorf("expected 0.00 remaining on non-divisible total, got %s", got)
	}

	plan.CurrentInstallment = 11
	if got := plan.Remaining().String(); got != "416.63" {
		t.Errorf("expected 416.63 remaining before the final installment, got %s", got)
	}
}

func TestInstallmentPlan_Invalid_SkippedWithWarning(t *testing.T) {
	// GIVEN: A plan with zero installments and no other specifier
	// WHEN: Computing
	// THEN: Treated as a missing amount specifier

	a := activeAssignment()
	a.Installments = &rubric.InstallmentPlan{TotalAmount: rubric.NewMoney(5000)}

	_, warnings, ok := rubric.Compute(a, discountDef(), rubric.NewMoney(3000))
	if ok {
		t.Error("invalid plan should not produce a line item")
	}
	if len(warnings) != 1 || warnings[0].Code != rubric.WarnMissingAmountSpecifier {
		t.Errorf("expected missing-amount warning, got %v", warnings)
	}
}
