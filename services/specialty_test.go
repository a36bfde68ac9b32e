package services

import (
	"math"
	"testing"
)

func TestAcreageTierFor(t *testing.T) {
	tests := []struct {
		acres  float64
		expect AcreageTier
	}{
		{0, AcreageUnder5},
		{4.99, AcreageUnder5},
		{5, Acreage5To20},
		{19.9, Acreage5To20},
		{20, Acreage20To50},
		{50, Acreage50To100},
		{99.9, Acreage50To100},
		{100, Acreage100Plus},
		{500, Acreage100Plus},
	}

	for _, tt := range tests {
		got := AcreageTierFor(tt.acres)
		if got != tt.expect {
			t.Errorf("AcreageTierFor(%v) = %v, want %v", tt.acres, got, tt.expect)
		}
	}
}

func TestCalcLandscapePrice(t *testing.T) {
	rt := DefaultRateTable()

	tests := []struct {
		name        string
		acres       float64
		lod         string
		expectPrice float64
	}{
		{"3 acres LOD 300", 3, "300", 5400},    // 3 * 1800
		{"12 acres LOD 300", 12, "300", 18000}, // 12 * 1500
		{"12 acres LOD 200", 12, "200", 14400}, // 12 * 1200
		{"30 acres LOD 300", 30, "300", 36000}, // 30 * 1200
		{"120 acres LOD 300", 120, "300", 84000},
		{"empty LOD defaults to 300", 3, "", 5400},
		{"missing matrix row prices at zero", 12, "400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLandscapePrice(tt.acres, tt.lod, rt)
			if math.Abs(got.ClientPrice-tt.expectPrice) > 0.001 {
				t.Errorf("ClientPrice = %v, want %v", got.ClientPrice, tt.expectPrice)
			}
			wantCost := tt.expectPrice * rt.UpteamCostRatio
			if math.Abs(got.UpteamCost-wantCost) > 0.001 {
				t.Errorf("UpteamCost = %v, want %v", got.UpteamCost, wantCost)
			}
			// The acreage itself is the effective quantity; no sqft floor applies.
			if got.EffectiveSqft != tt.acres {
				t.Errorf("EffectiveSqft = %v, want %v", got.EffectiveSqft, tt.acres)
			}
		})
	}
}

func TestCalcACTPrice(t *testing.T) {
	rt := DefaultRateTable()

	tests := []struct {
		name         string
		sqft         float64
		scopePortion float64
		expectPrice  float64
		expectSqft   float64
	}{
		{"full scope", 8000, 1.0, 2000, 8000},       // 8000 * 0.25
		{"interior portion", 8000, 0.70, 1400, 8000},
		{"minimum floor applies", 400, 1.0, 250, 1000}, // 1000 * 0.25
		{"zero portion treated as full", 8000, 0, 2000, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcACTPrice(tt.sqft, tt.scopePortion, rt)
			if math.Abs(got.ClientPrice-tt.expectPrice) > 0.001 {
				t.Errorf("ClientPrice = %v, want %v", got.ClientPrice, tt.expectPrice)
			}
			if got.EffectiveSqft != tt.expectSqft {
				t.Errorf("EffectiveSqft = %v, want %v", got.EffectiveSqft, tt.expectSqft)
			}
		})
	}
}

func TestCalcMatterportPrice(t *testing.T) {
	rt := DefaultRateTable()

	tests := []struct {
		name        string
		sqft        float64
		expectPrice float64
	}{
		{"standard area", 10000, 800}, // 10000 * 0.08
		{"small area, no minimum floor", 500, 40},
		{"zero sqft", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcMatterportPrice(tt.sqft, rt)
			if math.Abs(got.ClientPrice-tt.expectPrice) > 0.001 {
				t.Errorf("ClientPrice = %v, want %v", got.ClientPrice, tt.expectPrice)
			}
			if got.EffectiveSqft != tt.sqft {
				t.Errorf("EffectiveSqft = %v, want raw sqft %v", got.EffectiveSqft, tt.sqft)
			}
		})
	}
}
