/*
calculator.go - Per-assignment amount semantics

PURPOSE:
  Converts one applicable assignment into a monetary line item.

AMOUNT RESOLUTION (in order):
  1. CustomValue set:              value = round2(CustomValue)
  2. CustomPercentage set:         value = round2(base * pct / 100)
  3. Valid InstallmentPlan:        value = round2(total / installments)
  4. None of the above:            no item, MissingAmountSpecifier warning

  When both CustomValue and CustomPercentage are set the fixed value
  wins and an AmbiguousAmountSpecifier warning is recorded.

  Negative base salaries or percentages produce negative values; the
  calculator does not clamp. Clamping is caller policy.

DETERMINISM:
  No I/O, no state. Same inputs always produce the same output.
*/
package rubric

// Compute resolves the monetary value and classification for one
// assignment that has already passed period filtering. The boolean
// reports whether a line item was produced; either way any recorded
// warnings are returned.
func Compute(a Assignment, def RubricDefinition, baseSalary Money) (LineItem, []Warning, bool) {
	item := LineItem{
		Name:      displayName(a, def),
		IsBenefit: def.IsBenefit(),
	}

	switch {
	case a.CustomValue != nil && a.CustomPercentage != nil:
		item.Value = a.CustomValue.Round2()
		return item, []Warning{warn(a, WarnAmbiguousAmountSpecifier,
			"both fixed value and percentage set; fixed value wins")}, true

	case a.CustomValue != nil:
		item.Value = a.CustomValue.Round2()
		return item, nil, true

	case a.CustomPercentage != nil:
		item.Value = baseSalary.Percent(*a.CustomPercentage)
		return item, nil, true

	case a.Installments != nil && a.Installments.IsValid():
		item.Value = a.Installments.PerInstallment()
		item.Name = item.Name + " " + a.Installments.Progress()
		return item, nil, true

	default:
		return LineItem{}, []Warning{warn(a, WarnMissingAmountSpecifier,
			"neither fixed value nor percentage present")}, false
	}
}

func displayName(a Assignment, def RubricDefinition) string {
	if a.CustomName != "" {
		return a.CustomName
	}
	return def.Name
}
