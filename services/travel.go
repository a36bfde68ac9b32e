package services

import "strings"

// Metro travel tier names carried on TravelResult for display.
const (
	MetroTierA = "tier_a"
	MetroTierB = "tier_b"
	MetroTierC = "tier_c"
)

// IsMetroDispatch reports whether the dispatch location selects the metro
// flat-fee strategy. Matching is exact but case-insensitive after trimming.
func IsMetroDispatch(location string, tr TravelRates) bool {
	return strings.EqualFold(strings.TrimSpace(location), tr.MetroLocation)
}

// CalcTravel computes the single per-quote travel cost. The two strategies
// are mutually exclusive:
//
//   - Standard: per-mile base cost, plus a flat scan-day fee once the
//     distance reaches the threshold.
//   - Metro: flat base fee tiered by TOTAL PROJECT square footage (not
//     distance), plus a per-mile charge beyond the included radius. The
//     metro branch never charges a scan-day fee.
func CalcTravel(location string, distanceMiles, totalProjectSqft float64, tr TravelRates) TravelResult {
	if distanceMiles < 0 {
		distanceMiles = 0
	}

	if IsMetroDispatch(location, tr) {
		return calcMetroTravel(distanceMiles, totalProjectSqft, tr)
	}
	return calcStandardTravel(distanceMiles, tr)
}

func calcStandardTravel(distanceMiles float64, tr TravelRates) TravelResult {
	base := distanceMiles * tr.StandardRatePerMile

	var scanDayFee float64
	if distanceMiles >= tr.ScanDayFeeThreshold {
		scanDayFee = tr.ScanDayFee
	}

	return TravelResult{
		BaseCost:   base,
		ScanDayFee: scanDayFee,
		TotalCost:  base + scanDayFee,
		Label:      "Standard mileage travel",
	}
}

func calcMetroTravel(distanceMiles, totalProjectSqft float64, tr TravelRates) TravelResult {
	var base float64
	var tier string
	switch {
	case totalProjectSqft >= tr.MetroTierASqft:
		base, tier = tr.MetroTierAFee, MetroTierA
	case totalProjectSqft >= tr.MetroTierBSqft:
		base, tier = tr.MetroTierBFee, MetroTierB
	default:
		base, tier = tr.MetroTierCFee, MetroTierC
	}

	var extra float64
	if over := distanceMiles - tr.MetroIncludedMiles; over > 0 {
		extra = over * tr.MetroRatePerMile
	}

	return TravelResult{
		BaseCost:       base,
		ExtraMilesCost: extra,
		TotalCost:      base + extra,
		Label:          "Metro flat-tier travel",
		Tier:           tier,
	}
}
