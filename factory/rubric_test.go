package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/rubric"
)

func TestParseRubric(t *testing.T) {
	def, err := factory.ParseRubric(`{
		"id": "transport",
		"name": "Auxílio Transporte",
		"type": "benefit",
		"code": "101"
	}`)
	require.NoError(t, err)

	assert.Equal(t, rubric.RubricID("transport"), def.ID)
	assert.Equal(t, rubric.TypeBenefit, def.Type)
	assert.True(t, def.IsBenefit())
}

func TestParseRubric_MissingID(t *testing.T) {
	_, err := factory.ParseRubric(`{"name": "Sem ID"}`)
	assert.Error(t, err)
}

func TestParseAssignment_CommaDecimalAmount(t *testing.T) {
	// GIVEN: A legacy-style assignment with a Brazilian formatted amount
	//        and a dd/mm/yyyy start date
	// WHEN: Parsing
	// THEN: Both are converted, no warnings

	a, warnings, err := factory.ParseAssignment(`{
		"id": "asg-1",
		"employee_id": "emp-1",
		"rubric_id": "meal",
		"custom_value": "1.234,56",
		"is_active": true,
		"start_date": "01/03/2024"
	}`)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, a.CustomValue)
	assert.Equal(t, "1234.56", a.CustomValue.String())
	require.NotNil(t, a.StartDate)
	assert.Equal(t, "2024-03-01", a.StartDate.String())
	assert.Nil(t, a.EndDate)
}

func TestParseAssignment_NumericAmount(t *testing.T) {
	a, warnings, err := factory.ParseAssignment(`{
		"id": "asg-1",
		"employee_id": "emp-1",
		"rubric_id": "loan",
		"custom_percentage": 8,
		"is_active": true
	}`)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, a.CustomPercentage)
	assert.Equal(t, "8", a.CustomPercentage.String())
}

func TestParseAssignment_UnparseableAmountQuarantined(t *testing.T) {
	// GIVEN: An amount string no parser accepts
	// WHEN: Parsing
	// THEN: The record survives with the field unset and a warning

	a, warnings, err := factory.ParseAssignment(`{
		"id": "asg-1",
		"employee_id": "emp-1",
		"rubric_id": "meal",
		"custom_value": "n/a",
		"is_active": true
	}`)
	require.NoError(t, err)

	assert.Nil(t, a.CustomValue)
	require.Len(t, warnings, 1)
	assert.Equal(t, rubric.WarnUnparseableAmount, warnings[0].Code)
	assert.Equal(t, rubric.AssignmentID("asg-1"), warnings[0].AssignmentID)
}

func TestParseAssignment_UnparseableDateBecomesUnbounded(t *testing.T) {
	a, warnings, err := factory.ParseAssignment(`{
		"id": "asg-1",
		"employee_id": "emp-1",
		"rubric_id": "meal",
		"custom_value": 100,
		"is_active": true,
		"end_date": "someday"
	}`)
	require.NoError(t, err)

	assert.Nil(t, a.EndDate, "unparseable end date falls back to unbounded")
	require.Len(t, warnings, 1)
	assert.Equal(t, rubric.WarnUnparseableDate, warnings[0].Code)
}

func TestParseAssignment_Installments(t *testing.T) {
	a, warnings, err := factory.ParseAssignment(`{
		"id": "asg-1",
		"employee_id": "emp-1",
		"rubric_id": "loan",
		"is_active": true,
		"installments": {
			"total_amount": "5.000,00",
			"total_installments": 12,
			"current_installment": 3
		}
	}`)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, a.Installments)
	assert.Equal(t, "5000.00", a.Installments.TotalAmount.String())
	assert.Equal(t, "3/12", a.Installments.Progress())
	assert.Equal(t, "416.67", a.Installments.PerInstallment().String())
}

func TestRoundTrip(t *testing.T) {
	original := `{
		"id": "asg-1",
		"employee_id": "emp-1",
		"rubric_id": "meal",
		"custom_value": "220,00",
		"is_active": true,
		"start_date": "2024-03-01",
		"end_date": "2024-05-31"
	}`

	a, warnings, err := factory.ParseAssignment(original)
	require.NoError(t, err)
	require.Empty(t, warnings)

	aj := factory.ToJSON(a)
	assert.Equal(t, "asg-1", aj.ID)
	assert.Equal(t, "2024-03-01", aj.StartDate)
	assert.Equal(t, "2024-05-31", aj.EndDate)

	back, warnings, err := factory.FromJSON(aj)
	require.NoError(t, err)
	require.Empty(t, warnings)
	assert.Equal(t, a.CustomValue.String(), back.CustomValue.String())
	assert.True(t, a.StartDate.Equal(*back.StartDate))
}
