package services

// RiskMultiplier folds a set of risk tags into a single multiplicative
// premium: 1 + the sum of the configured premiums. Unknown tags contribute 0
// and duplicates are counted once.
func RiskMultiplier(risks []RiskTag, rt RateTable) float64 {
	mult := 1.0
	seen := make(map[RiskTag]bool, len(risks))
	for _, tag := range risks {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		mult += rt.RiskPremiums[tag]
	}
	return mult
}

// ApplyRiskPremium scales an amount by the risk multiplier, but only for
// architecture work. Risk surcharges must never leak into MEPF, structure or
// site line items; for every other discipline this is the identity function.
func ApplyRiskPremium(d Discipline, amount float64, risks []RiskTag, rt RateTable) float64 {
	if d != DisciplineArchitecture {
		return amount
	}
	return amount * RiskMultiplier(risks, rt)
}

// MergeRisks combines area-level and project-level risk tags, deduplicated,
// preserving first-seen order.
func MergeRisks(areaRisks, projectRisks []RiskTag) []RiskTag {
	var merged []RiskTag
	seen := make(map[RiskTag]bool, len(areaRisks)+len(projectRisks))
	for _, tags := range [][]RiskTag{areaRisks, projectRisks} {
		for _, tag := range tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	return merged
}
