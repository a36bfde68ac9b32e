package services

import "fmt"

// DefaultLOD is assumed when neither the area nor a discipline override
// names a level of detail.
const DefaultLOD = "300"

// Subtotal map keys, one per line-item category.
const (
	SubtotalModeling   = "modeling"
	SubtotalServices   = "services"
	SubtotalElevations = "elevations"
	SubtotalTravel     = "travel"
)

// ComputeQuote is the engine's single entry point: it validates the input,
// prices every area, computes travel once for the whole quote, rolls up
// totals and margin, runs the integrity check, and, when the caller set a
// margin target, replaces the result with the back-solved one.
func ComputeQuote(input QuoteInput, rt RateTable) (QuoteResult, error) {
	if err := ValidateQuoteInput(input); err != nil {
		return QuoteResult{}, err
	}

	totalSqftEquiv := totalProjectSqftEquivalent(input.Areas)

	var items []LineItem
	for _, area := range input.Areas {
		risks := MergeRisks(area.Risks, input.ProjectRisks)
		items = append(items, priceArea(area, risks, rt)...)
	}

	travel := CalcTravel(input.DispatchLocation, input.DistanceMiles, totalSqftEquiv, rt.Travel)
	if travel.TotalCost > 0 {
		// Travel is a pass-through: cost equals price, zero margin.
		items = append(items, LineItem{
			Category:       CategoryTravel,
			Description:    travel.Label,
			ClientPrice:    travel.TotalCost,
			UpteamCost:     travel.TotalCost,
			RiskMultiplier: 1,
		})
	}

	result := assembleQuote(items, input.PaymentTerms, rt)
	result.Travel = travel
	result.IsTierA = totalSqftEquiv >= rt.TierAThresholdSqft

	if input.MarginTarget > 0 {
		return ApplyMarginTarget(result, input.MarginTarget, rt)
	}
	return result, nil
}

// totalProjectSqftEquivalent sums raw area square footage, converting
// landscape acres to their sqft equivalent. The equivalent feeds only the
// Tier-A flag and metro travel tiering, never landscape pricing itself.
func totalProjectSqftEquivalent(areas []Area) float64 {
	var total float64
	for _, area := range areas {
		if area.BuildingType == BuildingLandscape {
			total += area.SquareFeet * AcresToSqft
			continue
		}
		total += area.SquareFeet
	}
	return total
}

// priceArea dispatches one area to its pricer(s) and returns the resulting
// line items. Dispatch on building type is exhaustive: validation has
// already rejected unknown codes.
func priceArea(area Area, risks []RiskTag, rt RateTable) []LineItem {
	var items []LineItem

	switch area.BuildingType {
	case BuildingLandscape:
		price := CalcLandscapePrice(area.SquareFeet, area.LOD, rt)
		items = append(items, LineItem{
			AreaID:         area.ID,
			AreaName:       area.Name,
			BuildingType:   area.BuildingType,
			Category:       CategoryModeling,
			Sqft:           area.SquareFeet,
			EffectiveSqft:  price.EffectiveSqft,
			LOD:            resolveLOD(area.LOD),
			Scope:          ScopeFull,
			Description:    fmt.Sprintf("%s — landscape modeling (%.1f acres)", area.Name, area.SquareFeet),
			ClientPrice:    price.ClientPrice,
			UpteamCost:     price.UpteamCost,
			RiskMultiplier: 1,
		})

	case BuildingACTOnly:
		scope := resolveScope(area.Scope)
		price := CalcACTPrice(area.SquareFeet, rt.ScopePortionFor(scope), rt)
		items = append(items, LineItem{
			AreaID:         area.ID,
			AreaName:       area.Name,
			BuildingType:   area.BuildingType,
			Category:       CategoryService,
			Sqft:           area.SquareFeet,
			EffectiveSqft:  price.EffectiveSqft,
			Scope:          scope,
			Description:    area.Name + " — above-ceiling-tile scan",
			ClientPrice:    price.ClientPrice,
			UpteamCost:     price.UpteamCost,
			RiskMultiplier: 1,
		})

	case BuildingMatterportOnly:
		price := CalcMatterportPrice(area.SquareFeet, rt)
		items = append(items, LineItem{
			AreaID:         area.ID,
			AreaName:       area.Name,
			BuildingType:   area.BuildingType,
			Category:       CategoryService,
			Sqft:           area.SquareFeet,
			EffectiveSqft:  price.EffectiveSqft,
			Scope:          ScopeFull,
			Description:    area.Name + " — Matterport capture",
			ClientPrice:    price.ClientPrice,
			UpteamCost:     price.UpteamCost,
			RiskMultiplier: 1,
		})

	default:
		for _, d := range area.Disciplines {
			items = append(items, priceDiscipline(area, d, risks, rt)...)
		}
	}

	if area.AdditionalElevations > 0 {
		price := CalcElevationCost(area.AdditionalElevations, rt.ElevationTiers)
		items = append(items, LineItem{
			AreaID:         area.ID,
			AreaName:       area.Name,
			BuildingType:   area.BuildingType,
			Category:       CategoryElevation,
			Description:    fmt.Sprintf("%s — additional elevations (%d)", area.Name, area.AdditionalElevations),
			ClientPrice:    price,
			UpteamCost:     price * rt.UpteamCostRatio,
			RiskMultiplier: 1,
		})
	}

	if area.IncludeMatterport && area.BuildingType != BuildingMatterportOnly {
		price := CalcMatterportPrice(area.SquareFeet, rt)
		items = append(items, LineItem{
			AreaID:         area.ID,
			AreaName:       area.Name,
			BuildingType:   area.BuildingType,
			Category:       CategoryService,
			Sqft:           area.SquareFeet,
			EffectiveSqft:  price.EffectiveSqft,
			Scope:          ScopeFull,
			Description:    area.Name + " — Matterport add-on",
			ClientPrice:    price.ClientPrice,
			UpteamCost:     price.UpteamCost,
			RiskMultiplier: 1,
		})
	}

	return items
}

// priceDiscipline emits the modeling line item(s) for one discipline within
// a standard-building area. A resolved scope of "mixed" expands into an
// interior item and an exterior item, each billed at its own portion and
// each independently risk-adjusted.
func priceDiscipline(area Area, d Discipline, risks []RiskTag, rt RateTable) []LineItem {
	lod, scope := resolveDisciplineSpec(area, d)

	scopes := []Scope{scope}
	if scope == ScopeMixed {
		scopes = []Scope{ScopeInterior, ScopeExterior}
	}

	items := make([]LineItem, 0, len(scopes))
	for _, s := range scopes {
		price := CalcAreaPrice(AreaPriceParams{
			Sqft:         area.SquareFeet,
			Discipline:   d,
			LOD:          lod,
			ScopePortion: rt.ScopePortionFor(s),
		}, rt)

		riskMult := 1.0
		if d == DisciplineArchitecture {
			riskMult = RiskMultiplier(risks, rt)
		}

		items = append(items, LineItem{
			AreaID:         area.ID,
			AreaName:       area.Name,
			Discipline:     d,
			BuildingType:   area.BuildingType,
			Category:       CategoryModeling,
			Sqft:           area.SquareFeet,
			EffectiveSqft:  price.EffectiveSqft,
			LOD:            lod,
			Scope:          s,
			Description:    fmt.Sprintf("%s — %s modeling, LOD %s, %s scope", area.Name, d, lod, s),
			ClientPrice:    ApplyRiskPremium(d, price.ClientPrice, risks, rt),
			UpteamCost:     price.UpteamCost,
			RiskMultiplier: riskMult,
		})
	}
	return items
}

// resolveDisciplineSpec resolves the effective LOD and scope for one
// discipline: per-discipline override first, then the area default, then
// the engine defaults ("300", full).
func resolveDisciplineSpec(area Area, d Discipline) (string, Scope) {
	lod := area.LOD
	scope := area.Scope

	if spec, ok := area.DisciplineSpecs[d]; ok {
		if spec.LOD != "" {
			lod = spec.LOD
		}
		if spec.Scope != "" {
			scope = spec.Scope
		}
	}

	return resolveLOD(lod), resolveScope(scope)
}

func resolveLOD(lod string) string {
	if lod == "" {
		return DefaultLOD
	}
	return lod
}

func resolveScope(scope Scope) Scope {
	if scope == "" {
		return ScopeFull
	}
	return scope
}

// subtotalKey maps a line-item category to its subtotal bucket.
func subtotalKey(c LineItemCategory) string {
	switch c {
	case CategoryService:
		return SubtotalServices
	case CategoryElevation:
		return SubtotalElevations
	case CategoryTravel:
		return SubtotalTravel
	default:
		return SubtotalModeling
	}
}

// assembleQuote runs the roll-up stages over a final set of line items:
// category subtotals, totals, payment-term premium, margin and integrity.
// Both the first pass and the margin-target pass go through here so the two
// can never disagree on downstream math.
func assembleQuote(items []LineItem, paymentTerms string, rt RateTable) QuoteResult {
	subtotals := map[string]float64{
		SubtotalModeling:   0,
		SubtotalServices:   0,
		SubtotalElevations: 0,
		SubtotalTravel:     0,
	}

	var totalClient, totalUpteam float64
	for _, item := range items {
		subtotals[subtotalKey(item.Category)] += item.ClientPrice
		totalClient += item.ClientPrice
		totalUpteam += item.UpteamCost
	}

	premiumRate := rt.PaymentTermPremiumFor(paymentTerms)
	grandTotal := totalClient * (1 + premiumRate)
	premium := grandTotal - totalClient

	margin := grossMarginFor(grandTotal, totalUpteam)
	status, flags := CheckIntegrity(margin, rt)

	return QuoteResult{
		LineItems:          items,
		Subtotals:          subtotals,
		TotalClientPrice:   totalClient,
		TotalUpteamCost:    totalUpteam,
		PaymentTerms:       paymentTerms,
		PaymentTermPremium: premium,
		GrandTotal:         grandTotal,
		GrossMargin:        margin,
		GrossMarginPercent: margin * 100,
		IntegrityStatus:    status,
		IntegrityFlags:     flags,
	}
}

// grossMarginFor computes (grandTotal - upteamCost) / grandTotal, defined as
// 0 when there is nothing to invoice.
func grossMarginFor(grandTotal, upteamCost float64) float64 {
	if grandTotal <= 0 {
		return 0
	}
	return (grandTotal - upteamCost) / grandTotal
}
