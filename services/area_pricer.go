package services

// AreaPriceParams are the inputs for pricing one (discipline, area) pair.
// ClientRatePerSqft and UpteamRatePerSqft are optional vendor/DB overrides;
// nil falls back to the rate table.
type AreaPriceParams struct {
	Sqft              float64
	Discipline        Discipline
	LOD               string
	ScopePortion      float64
	ClientRatePerSqft *float64
	UpteamRatePerSqft *float64
}

// AreaPrice is the priced outcome for one (discipline, area) pair before
// any risk premium is applied.
type AreaPrice struct {
	ClientPrice   float64
	UpteamCost    float64
	EffectiveSqft float64
}

// EffectiveSqft applies the minimum billable square footage floor.
func EffectiveSqft(sqft, minSqft float64) float64 {
	if sqft < minSqft {
		return minSqft
	}
	return sqft
}

// CalcAreaPrice prices one discipline over one area. All inputs are clamped
// or defaulted rather than rejected: unrecognized disciplines use the
// generic base rate and unrecognized LOD codes use multiplier 1.0.
func CalcAreaPrice(p AreaPriceParams, rt RateTable) AreaPrice {
	effective := EffectiveSqft(p.Sqft, rt.MinSqft)

	portion := p.ScopePortion
	if portion <= 0 {
		portion = 1.0
	}

	var clientPrice float64
	if p.ClientRatePerSqft != nil {
		clientPrice = effective * *p.ClientRatePerSqft * portion
	} else {
		clientPrice = rt.BaseRateFor(p.Discipline) * rt.LODMultiplierFor(p.LOD) * effective * portion
	}

	var upteamCost float64
	if p.UpteamRatePerSqft != nil {
		upteamCost = effective * *p.UpteamRatePerSqft * portion
	} else {
		upteamCost = clientPrice * rt.UpteamCostRatio
	}

	return AreaPrice{
		ClientPrice:   clientPrice,
		UpteamCost:    upteamCost,
		EffectiveSqft: effective,
	}
}
