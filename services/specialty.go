package services

// CalcLandscapePrice prices a landscape area. The area's SquareFeet field is
// read as acres for landscape building types; the acreage tier indexes the
// per-acre rate matrix by LOD. A missing matrix row prices at 0: incomplete
// rate data is an expected operating condition, not an error.
func CalcLandscapePrice(acres float64, lod string, rt RateTable) AreaPrice {
	if lod == "" {
		lod = DefaultLOD
	}

	var rate float64
	if byTier, ok := rt.LandscapeRates[lod]; ok {
		rate = byTier[AcreageTierFor(acres)]
	}

	clientPrice := acres * rate
	return AreaPrice{
		ClientPrice:   clientPrice,
		UpteamCost:    clientPrice * rt.UpteamCostRatio,
		EffectiveSqft: acres,
	}
}

// CalcACTPrice prices an above-ceiling-tile-only area at a flat per-sqft
// rate. The minimum-sqft floor and the scope portion both apply.
func CalcACTPrice(sqft float64, scopePortion float64, rt RateTable) AreaPrice {
	effective := EffectiveSqft(sqft, rt.MinSqft)
	if scopePortion <= 0 {
		scopePortion = 1.0
	}
	clientPrice := effective * rt.ACTRatePerSqft * scopePortion
	return AreaPrice{
		ClientPrice:   clientPrice,
		UpteamCost:    clientPrice * rt.UpteamCostRatio,
		EffectiveSqft: effective,
	}
}

// CalcMatterportPrice prices Matterport capture at a flat per-sqft rate over
// the FULL raw square footage. No scope portion and no minimum floor apply:
// capture effort is linear in walked area regardless of modeling scope.
func CalcMatterportPrice(sqft float64, rt RateTable) AreaPrice {
	clientPrice := sqft * rt.MatterportRatePerSqft
	return AreaPrice{
		ClientPrice:   clientPrice,
		UpteamCost:    clientPrice * rt.UpteamCostRatio,
		EffectiveSqft: sqft,
	}
}
