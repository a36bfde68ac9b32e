package services

// ApplyMarginTarget rewrites client prices so the realized gross margin
// matches target, then re-derives subtotals, the payment-term premium,
// margin and integrity flags from the adjusted items. Costs never move:
// every non-travel line item with a positive upteam cost gets
// clientPrice = upteamCost / (1 - target); travel and zero-cost items are
// left untouched. The input result is not mutated; a brand-new value is
// returned so the pre-adjustment quote stays inspectable.
//
// Targets at or above 1 would divide by zero or flip prices negative and
// are rejected outright.
func ApplyMarginTarget(result QuoteResult, target float64, rt RateTable) (QuoteResult, error) {
	if target < 0 {
		return QuoteResult{}, validationErrorf("margin_target", "must not be negative, got %v", target)
	}
	if target >= 1 {
		return QuoteResult{}, validationErrorf("margin_target", "must be below 1, got %v", target)
	}

	adjusted := make([]LineItem, len(result.LineItems))
	for i, item := range result.LineItems {
		if item.Category != CategoryTravel && item.UpteamCost > 0 {
			item.ClientPrice = item.UpteamCost / (1 - target)
		}
		adjusted[i] = item
	}

	out := assembleQuote(adjusted, result.PaymentTerms, rt)
	out.Travel = result.Travel
	out.IsTierA = result.IsTierA
	return out, nil
}
