package voucher

import (
	"encoding/json"
	"fmt"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/rubric"
)

// receiptJSON is the JSON shape of a voucher receipt. unit_value accepts
// numbers or comma-decimal strings, the same as assignment amounts.
type receiptJSON struct {
	EmployeeID string                  `json:"employee_id"`
	Kind       string                  `json:"kind"`
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Days       int                     `json:"days,omitempty"`
	UnitValue  *factory.FlexibleAmount `json:"unit_value"`
}

// ParseReceipt parses a JSON voucher receipt. Unlike assignments, a
// receipt with a bad unit value has nothing left to compute, so parse
// failures are errors rather than warnings.
func ParseReceipt(jsonStr string) (Receipt, error) {
	var rj receiptJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return Receipt{}, fmt.Errorf("failed to parse receipt JSON: %w", err)
	}
	if rj.EmployeeID == "" {
		return Receipt{}, fmt.Errorf("receipt requires employee_id")
	}

	kind := Kind(rj.Kind)
	if kind != KindTransport && kind != KindMeal {
		return Receipt{}, fmt.Errorf("unknown voucher kind %q", rj.Kind)
	}
	if rj.UnitValue == nil || rj.UnitValue.Err != nil {
		return Receipt{}, fmt.Errorf("receipt requires a parseable unit_value")
	}

	return Receipt{
		EmployeeID: rubric.EmployeeID(rj.EmployeeID),
		Kind:       kind,
		Month:      rj.Month,
		Year:       rj.Year,
		Days:       rj.Days,
		UnitValue:  rubric.MoneyFromDecimal(rj.UnitValue.Value),
	}, nil
}

// TransportVoucherJSON returns JSON for a monthly transport voucher
// receipt seed.
func TransportVoucherJSON(employeeID string, month, year int, unitValue float64) string {
	vj := map[string]interface{}{
		"employee_id": employeeID,
		"kind":        string(KindTransport),
		"month":       month,
		"year":        year,
		"unit_value":  unitValue,
	}
	b, _ := json.MarshalIndent(vj, "", "  ")
	return string(b)
}

// MealVoucherJSON returns JSON for a monthly meal voucher receipt seed.
func MealVoucherJSON(employeeID string, month, year int, days int, unitValue float64) string {
	vj := map[string]interface{}{
		"employee_id": employeeID,
		"kind":        string(KindMeal),
		"month":       month,
		"year":        year,
		"days":        days,
		"unit_value":  unitValue,
	}
	b, _ := json.MarshalIndent(vj, "", "  ")
	return string(b)
}
