package rubric

// =============================================================================
// AGGREGATOR - Reporting-ready totals from computed line items
// =============================================================================

// Aggregate partitions line items by classification and sums each side.
// Sums are computed on the unrounded decimals and rounded once at the
// end, so per-item rounding error does not compound. Empty input yields
// zero totals with empty (non-nil) slices.
func Aggregate(items []LineItem) Totals {
	totals := Totals{
		Benefits:  []LineItem{},
		Discounts: []LineItem{},
	}

	for _, item := range items {
		if item.IsBenefit {
			totals.Benefits = append(totals.Benefits, item)
			totals.TotalBenefits = totals.TotalBenefits.Add(item.Value)
		} else {
			totals.Discounts = append(totals.Discounts, item)
			totals.TotalDiscounts = totals.TotalDiscounts.Add(item.Value)
		}
	}

	totals.TotalBenefits = totals.TotalBenefits.Round2()
	totals.TotalDiscounts = totals.TotalDiscounts.Round2()
	return totals
}
