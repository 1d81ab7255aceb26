package voucher_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/rubric"
	"github.com/warp/payroll-engine/voucher"
)

func TestReceipt_Total_DefaultWorkdays(t *testing.T) {
	// GIVEN: A transport receipt with no explicit day count
	// WHEN: Totaling
	// THEN: 22 workdays at 8.80 = 193.60

	r := voucher.Receipt{
		EmployeeID: "emp-1",
		Kind:       voucher.KindTransport,
		Month:      4,
		Year:       2024,
		UnitValue:  rubric.NewMoney(8.80),
	}

	assert.Equal(t, "193.60", r.Total().String())
}

func TestReceipt_Total_ExplicitDays(t *testing.T) {
	r := voucher.Receipt{
		EmployeeID: "emp-1",
		Kind:       voucher.KindMeal,
		Month:      4,
		Year:       2024,
		Days:       20,
		UnitValue:  rubric.NewMoney(25.375),
	}

	// 20 * 25.375 = 507.50, rounded once.
	assert.Equal(t, "507.50", r.Total().String())
}

func TestWorkdaysInMonth(t *testing.T) {
	cases := []struct {
		month, year int
		want        int
	}{
		{4, 2024, 22},  // April 2024: 30 days, starts Monday
		{2, 2024, 21},  // February 2024: leap month, starts Thursday
		{12, 2023, 21}, // December 2023: starts Friday, 31 days
	}
	for _, c := range cases {
		assert.Equal(t, c.want, voucher.WorkdaysInMonth(c.month, c.year),
			"workdays for %d/%d", c.month, c.year)
	}
}

func TestParseReceipt(t *testing.T) {
	r, err := voucher.ParseReceipt(voucher.TransportVoucherJSON("emp-1", 4, 2024, 8.80))
	require.NoError(t, err)
	assert.Equal(t, voucher.KindTransport, r.Kind)
	assert.Equal(t, rubric.EmployeeID("emp-1"), r.EmployeeID)
	assert.Equal(t, "193.60", r.Total().String())

	// Comma-decimal unit values parse the same as assignment amounts
	r, err = voucher.ParseReceipt(`{"employee_id":"emp-1","kind":"meal","month":4,"year":2024,"days":20,"unit_value":"27,50"}`)
	require.NoError(t, err)
	assert.Equal(t, "550.00", r.Total().String())

	_, err = voucher.ParseReceipt(`{"employee_id":"emp-1","kind":"fuel","month":4,"year":2024,"unit_value":5}`)
	assert.Error(t, err, "unknown kinds are rejected")

	_, err = voucher.ParseReceipt(`{"employee_id":"emp-1","kind":"meal","month":4,"year":2024}`)
	assert.Error(t, err, "a receipt without a unit value has nothing to compute")
}

func TestVoucherJSONSeeds(t *testing.T) {
	var seed struct {
		EmployeeID string  `json:"employee_id"`
		Kind       string  `json:"kind"`
		Days       int     `json:"days"`
		UnitValue  float64 `json:"unit_value"`
	}

	require.NoError(t, json.Unmarshal(
		[]byte(voucher.TransportVoucherJSON("emp-1", 4, 2024, 8.80)), &seed))
	assert.Equal(t, string(voucher.KindTransport), seed.Kind)
	assert.Equal(t, 8.80, seed.UnitValue)

	require.NoError(t, json.Unmarshal(
		[]byte(voucher.MealVoucherJSON("emp-1", 4, 2024, 20, 25.375)), &seed))
	assert.Equal(t, string(voucher.KindMeal), seed.Kind)
	assert.Equal(t, 20, seed.Days)
}
