package services

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.001 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestComputeQuoteSingleArchitectureArea(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Office Tower",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture},
			LOD:          "300",
			Scope:        ScopeFull,
		}},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	if len(result.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(result.LineItems))
	}

	item := result.LineItems[0]
	almostEqual(t, "ClientPrice", item.ClientPrice, 4200)
	almostEqual(t, "UpteamCost", item.UpteamCost, 2310)

	almostEqual(t, "TotalClientPrice", result.TotalClientPrice, 4200)
	almostEqual(t, "GrandTotal", result.GrandTotal, 4200)
	almostEqual(t, "PaymentTermPremium", result.PaymentTermPremium, 0)
	almostEqual(t, "GrossMargin", result.GrossMargin, 0.45)

	if result.IntegrityStatus != IntegrityPassed {
		t.Errorf("IntegrityStatus = %v, want passed", result.IntegrityStatus)
	}
	if result.IsTierA {
		t.Error("10,000 sqft project should not be Tier A")
	}
	almostEqual(t, "Subtotals[modeling]", result.Subtotals[SubtotalModeling], 4200)
}

func TestComputeQuoteRiskPremiumArchitectureOnly(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Plant",
			BuildingType: BuildingIndustrial,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture, DisciplineMEPF},
			LOD:          "300",
			Scope:        ScopeFull,
			Risks:        []RiskTag{RiskOccupied, RiskHazardous},
		}},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	if len(result.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(result.LineItems))
	}

	var arch, mepf *LineItem
	for i := range result.LineItems {
		switch result.LineItems[i].Discipline {
		case DisciplineArchitecture:
			arch = &result.LineItems[i]
		case DisciplineMEPF:
			mepf = &result.LineItems[i]
		}
	}
	if arch == nil || mepf == nil {
		t.Fatal("expected one architecture and one mepf line item")
	}

	// Architecture carries the 25% premium on price only; the cost stays
	// derived from the pre-risk price.
	almostEqual(t, "arch ClientPrice", arch.ClientPrice, 5250)
	almostEqual(t, "arch UpteamCost", arch.UpteamCost, 2310)
	almostEqual(t, "arch RiskMultiplier", arch.RiskMultiplier, 1.25)

	// MEPF is never risk-adjusted.
	almostEqual(t, "mepf ClientPrice", mepf.ClientPrice, 5500)
	almostEqual(t, "mepf RiskMultiplier", mepf.RiskMultiplier, 1.0)
}

func TestComputeQuoteProjectRisksMergeWithAreaRisks(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Wing A",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture},
			Risks:        []RiskTag{RiskOccupied},
		}},
		ProjectRisks: []RiskTag{RiskOccupied, RiskNoPower},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	// occupied counted once plus no_power: 1 + 0.10 + 0.05.
	almostEqual(t, "RiskMultiplier", result.LineItems[0].RiskMultiplier, 1.15)
	almostEqual(t, "ClientPrice", result.LineItems[0].ClientPrice, 4830)
}

func TestComputeQuoteMixedScopeExpands(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Mixed Building",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture},
			LOD:          "300",
			Scope:        ScopeMixed,
		}},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	if len(result.LineItems) != 2 {
		t.Fatalf("mixed scope should expand to 2 line items, got %d", len(result.LineItems))
	}

	byScope := map[Scope]LineItem{}
	for _, item := range result.LineItems {
		byScope[item.Scope] = item
	}

	almostEqual(t, "interior price", byScope[ScopeInterior].ClientPrice, 2940) // 4200 * 0.70
	almostEqual(t, "exterior price", byScope[ScopeExterior].ClientPrice, 1890) // 4200 * 0.45
	almostEqual(t, "total", result.TotalClientPrice, 4830)
}

func TestComputeQuoteDisciplineSpecOverrides(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Retrofit",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture, DisciplineMEPF},
			LOD:          "300",
			Scope:        ScopeFull,
			DisciplineSpecs: map[Discipline]DisciplineSpec{
				DisciplineMEPF: {LOD: "350", Scope: ScopeInterior},
			},
		}},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	for _, item := range result.LineItems {
		switch item.Discipline {
		case DisciplineArchitecture:
			almostEqual(t, "arch price", item.ClientPrice, 4200)
			if item.LOD != "300" || item.Scope != ScopeFull {
				t.Errorf("arch resolved to LOD %s scope %s, want 300/full", item.LOD, item.Scope)
			}
		case DisciplineMEPF:
			// 0.55 * 1.30 * 10000 * 0.70
			almostEqual(t, "mepf price", item.ClientPrice, 5005)
			if item.LOD != "350" || item.Scope != ScopeInterior {
				t.Errorf("mepf resolved to LOD %s scope %s, want 350/interior", item.LOD, item.Scope)
			}
		}
	}
}

func TestComputeQuoteMetroTravelPassThrough(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Warehouse",
			BuildingType: BuildingWarehouse,
			SquareFeet:   30000,
			Disciplines:  []Discipline{DisciplineArchitecture},
		}},
		DispatchLocation: "Brooklyn",
		DistanceMiles:    25,
		PaymentTerms:     "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	if result.Travel.Tier != MetroTierB {
		t.Errorf("Travel.Tier = %q, want %q", result.Travel.Tier, MetroTierB)
	}
	almostEqual(t, "Travel.TotalCost", result.Travel.TotalCost, 625) // 600 + 10*2.50
	if result.Travel.ScanDayFee != 0 {
		t.Errorf("metro travel charged a scan-day fee: %v", result.Travel.ScanDayFee)
	}

	var travelItem *LineItem
	for i := range result.LineItems {
		if result.LineItems[i].Category == CategoryTravel {
			travelItem = &result.LineItems[i]
		}
	}
	if travelItem == nil {
		t.Fatal("expected a travel line item")
	}
	if travelItem.ClientPrice != travelItem.UpteamCost {
		t.Errorf("travel must be a pass-through: price %v != cost %v", travelItem.ClientPrice, travelItem.UpteamCost)
	}
	almostEqual(t, "Subtotals[travel]", result.Subtotals[SubtotalTravel], 625)
}

func TestComputeQuoteNoTravelItemAtZeroCost(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Local Job",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture},
		}},
		DistanceMiles: 0,
		PaymentTerms:  "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	for _, item := range result.LineItems {
		if item.Category == CategoryTravel {
			t.Error("zero-cost travel should not produce a line item")
		}
	}
}

func TestComputeQuotePaymentTermPremium(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Office",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture},
		}},
		PaymentTerms: "net60",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	almostEqual(t, "TotalClientPrice", result.TotalClientPrice, 4200)
	almostEqual(t, "GrandTotal", result.GrandTotal, 4326) // 4200 * 1.03
	almostEqual(t, "PaymentTermPremium", result.PaymentTermPremium, 126)
}

func TestComputeQuoteSpecialtyAreas(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{
			{
				ID:                   "act",
				Name:                 "Ceiling Survey",
				BuildingType:         BuildingACTOnly,
				SquareFeet:           8000,
				AdditionalElevations: 7,
			},
			{
				ID:           "mp",
				Name:         "Showroom",
				BuildingType: BuildingMatterportOnly,
				SquareFeet:   5000,
			},
		},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	if len(result.LineItems) != 3 {
		t.Fatalf("expected 3 line items (ACT, elevations, Matterport), got %d", len(result.LineItems))
	}

	almostEqual(t, "Subtotals[services]", result.Subtotals[SubtotalServices], 2000+400)   // ACT + Matterport
	almostEqual(t, "Subtotals[elevations]", result.Subtotals[SubtotalElevations], 2350) // 5*350 + 2*300
}

func TestComputeQuoteMatterportAddOn(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:                "a1",
			Name:              "HQ",
			BuildingType:      BuildingOffice,
			SquareFeet:        10000,
			Disciplines:       []Discipline{DisciplineArchitecture},
			IncludeMatterport: true,
		}},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	if len(result.LineItems) != 2 {
		t.Fatalf("expected modeling + Matterport add-on, got %d items", len(result.LineItems))
	}
	almostEqual(t, "Subtotals[services]", result.Subtotals[SubtotalServices], 800) // 10000 * 0.08
}

func TestComputeQuoteLandscapeDrivesTierA(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "l1",
			Name:         "Campus Grounds",
			BuildingType: BuildingLandscape,
			SquareFeet:   3, // acres
			LOD:          "300",
		}},
		PaymentTerms: "net30",
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	// 3 acres price at the under-5 LOD 300 rate.
	almostEqual(t, "landscape price", result.LineItems[0].ClientPrice, 5400)

	// 3 acres * 43,560 sqft/acre exceeds the 100,000 sqft Tier-A threshold.
	if !result.IsTierA {
		t.Error("3-acre landscape project should be Tier A via sqft equivalence")
	}
}

func TestComputeQuoteTierAThreshold(t *testing.T) {
	rt := DefaultRateTable()

	build := func(sqft float64) QuoteInput {
		return QuoteInput{
			Areas: []Area{{
				ID:           "a1",
				Name:         "Big Box",
				BuildingType: BuildingWarehouse,
				SquareFeet:   sqft,
				Disciplines:  []Discipline{DisciplineArchitecture},
			}},
			PaymentTerms: "net30",
		}
	}

	at, err := ComputeQuote(build(100000), rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	if !at.IsTierA {
		t.Error("project at exactly 100,000 sqft should be Tier A")
	}

	below, err := ComputeQuote(build(99999), rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	if below.IsTierA {
		t.Error("project below 100,000 sqft should not be Tier A")
	}
}

func TestComputeQuoteIntegrityVerdicts(t *testing.T) {
	tests := []struct {
		name      string
		costRatio float64
		expect    IntegrityStatus
	}{
		{"healthy margin passes", 0.55, IntegrityPassed},  // margin 0.45
		{"thin margin warns", 0.65, IntegrityWarning},     // margin 0.35
		{"margin below floor blocks", 0.80, IntegrityBlocked}, // margin 0.20
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := DefaultRateTable()
			rt.UpteamCostRatio = tt.costRatio

			input := QuoteInput{
				Areas: []Area{{
					ID:           "a1",
					Name:         "Office",
					BuildingType: BuildingOffice,
					SquareFeet:   10000,
					Disciplines:  []Discipline{DisciplineArchitecture},
				}},
				PaymentTerms: "net30",
			}

			result, err := ComputeQuote(input, rt)
			if err != nil {
				t.Fatalf("ComputeQuote returned error: %v", err)
			}
			if result.IntegrityStatus != tt.expect {
				t.Errorf("IntegrityStatus = %v, want %v (flags: %v)", result.IntegrityStatus, tt.expect, result.IntegrityFlags)
			}
		})
	}
}

func TestComputeQuoteMarginTargetApplied(t *testing.T) {
	rt := DefaultRateTable()

	input := QuoteInput{
		Areas: []Area{{
			ID:           "a1",
			Name:         "Office",
			BuildingType: BuildingOffice,
			SquareFeet:   10000,
			Disciplines:  []Discipline{DisciplineArchitecture, DisciplineMEPF},
		}},
		PaymentTerms: "net30",
		MarginTarget: 0.5,
	}

	result, err := ComputeQuote(input, rt)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}

	// With no travel and no payment premium the back-solver is exact.
	almostEqual(t, "GrossMargin", result.GrossMargin, 0.5)
	for _, item := range result.LineItems {
		almostEqual(t, "item margin", (item.ClientPrice-item.UpteamCost)/item.ClientPrice, 0.5)
	}
}

func TestComputeQuoteValidationErrors(t *testing.T) {
	rt := DefaultRateTable()

	tests := []struct {
		name  string
		input QuoteInput
	}{
		{"no areas", QuoteInput{PaymentTerms: "net30"}},
		{
			"unknown building type",
			QuoteInput{Areas: []Area{{BuildingType: "castle", SquareFeet: 100, Disciplines: []Discipline{DisciplineArchitecture}}}},
		},
		{
			"standard type without disciplines",
			QuoteInput{Areas: []Area{{BuildingType: BuildingOffice, SquareFeet: 100}}},
		},
		{
			"negative distance",
			QuoteInput{
				Areas:         []Area{{BuildingType: BuildingOffice, SquareFeet: 100, Disciplines: []Discipline{DisciplineArchitecture}}},
				DistanceMiles: -5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeQuote(tt.input, rt)
			if err == nil {
				t.Fatal("expected a validation error, got nil")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}
