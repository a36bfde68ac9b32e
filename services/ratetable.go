package services

// AcresToSqft converts landscape acreage to a square-footage equivalent.
// Used only for the Tier-A threshold and metro travel tier selection, never
// to price the landscape areas themselves.
const AcresToSqft = 43560.0

// AcreageTier buckets landscape projects by total acreage.
type AcreageTier string

const (
	AcreageUnder5  AcreageTier = "under_5"
	Acreage5To20   AcreageTier = "5_to_20"
	Acreage20To50  AcreageTier = "20_to_50"
	Acreage50To100 AcreageTier = "50_to_100"
	Acreage100Plus AcreageTier = "100_plus"
)

// AcreageTierFor returns the bucket for a total acreage.
func AcreageTierFor(acres float64) AcreageTier {
	switch {
	case acres < 5:
		return AcreageUnder5
	case acres < 20:
		return Acreage5To20
	case acres < 50:
		return Acreage20To50
	case acres < 100:
		return Acreage50To100
	default:
		return Acreage100Plus
	}
}

// ElevationTier is one step of the additional-elevation price ladder.
// MaxCount is the cumulative count the tier extends to; 0 means unbounded
// and is only valid on the final tier.
type ElevationTier struct {
	MaxCount int     `json:"max_count"`
	Rate     float64 `json:"rate"`
}

// TravelRates configures both travel strategies.
type TravelRates struct {
	// Standard strategy: per-mile, plus a flat scan-day fee on long hauls.
	StandardRatePerMile float64 `json:"standard_rate_per_mile"`
	ScanDayFeeThreshold float64 `json:"scan_day_fee_threshold_miles"`
	ScanDayFee          float64 `json:"scan_day_fee"`

	// Metro strategy: flat fee tiered by total project size, plus per-mile
	// beyond the included radius. Selected when the dispatch location matches
	// MetroLocation (case-insensitive). Never charges a scan-day fee.
	MetroLocation      string  `json:"metro_location"`
	MetroIncludedMiles float64 `json:"metro_included_miles"`
	MetroRatePerMile   float64 `json:"metro_rate_per_mile"`

	MetroTierASqft float64 `json:"metro_tier_a_sqft"`
	MetroTierBSqft float64 `json:"metro_tier_b_sqft"`
	MetroTierAFee  float64 `json:"metro_tier_a_fee"`
	MetroTierBFee  float64 `json:"metro_tier_b_fee"`
	MetroTierCFee  float64 `json:"metro_tier_c_fee"`
}

// RateTable is the full pricing configuration injected into the engine.
// It is treated as an immutable snapshot: hot edits build a new table and
// swap it whole (see RateStore), so in-flight computations stay consistent.
type RateTable struct {
	// Modeling rates per discipline per square foot, with a generic
	// fallback for unrecognized disciplines.
	BaseRates       map[Discipline]float64 `json:"base_rates"`
	GenericBaseRate float64                `json:"generic_base_rate"`

	// LOD multipliers; unknown LOD codes fall back to 1.0.
	LODMultipliers map[string]float64 `json:"lod_multipliers"`

	// Minimum billable square footage per line item.
	MinSqft float64 `json:"min_sqft"`

	// Upteam cost as a fraction of client price when no vendor rate exists.
	UpteamCostRatio float64 `json:"upteam_cost_ratio"`

	// Fraction of the full-scope price charged per scope.
	ScopePortions map[Scope]float64 `json:"scope_portions"`

	// Additive risk premiums; architecture line items only.
	RiskPremiums map[RiskTag]float64 `json:"risk_premiums"`

	// Multiplicative premium on the grand total per payment-terms code.
	PaymentTermPremiums map[string]float64 `json:"payment_term_premiums"`

	// Specialty flat rates.
	ACTRatePerSqft        float64 `json:"act_rate_per_sqft"`
	MatterportRatePerSqft float64 `json:"matterport_rate_per_sqft"`

	// Landscape per-acre rates keyed by LOD then acreage tier. A missing
	// row prices at 0: an explicit "no data" outcome, not an error.
	LandscapeRates map[string]map[AcreageTier]float64 `json:"landscape_rates"`

	// Additional-elevation price ladder, ordered by MaxCount ascending.
	ElevationTiers []ElevationTier `json:"elevation_tiers"`

	Travel TravelRates `json:"travel"`

	// Tier-A project-size threshold in sqft-equivalent. Informational only.
	TierAThresholdSqft float64 `json:"tier_a_threshold_sqft"`

	// Margin health thresholds; both boundaries are strict less-than.
	MarginFloor     float64 `json:"margin_floor"`
	MarginGuardrail float64 `json:"margin_guardrail"`
}

// DefaultRateTable returns the seeded pricing configuration. Live values are
// stored in the rate_settings collection and may be edited by an admin; the
// defaults here match what Seed writes on first boot.
func DefaultRateTable() RateTable {
	return RateTable{
		BaseRates: map[Discipline]float64{
			DisciplineArchitecture: 0.42,
			DisciplineMEPF:         0.55,
			DisciplineStructure:    0.38,
			DisciplineSite:         0.30,
		},
		GenericBaseRate: 0.40,
		LODMultipliers: map[string]float64{
			"200": 0.85,
			"300": 1.00,
			"350": 1.30,
			"400": 1.60,
		},
		MinSqft:         1000,
		UpteamCostRatio: 0.55,
		ScopePortions: map[Scope]float64{
			ScopeFull:     1.00,
			ScopeInterior: 0.70,
			ScopeExterior: 0.45,
		},
		RiskPremiums: map[RiskTag]float64{
			RiskOccupied:           0.10,
			RiskHazardous:          0.15,
			RiskNoPower:            0.05,
			RiskRestrictedAccess:   0.08,
			RiskActiveConstruction: 0.12,
		},
		PaymentTermPremiums: map[string]float64{
			"net30": 0.00,
			"net45": 0.015,
			"net60": 0.03,
			"net90": 0.05,
		},
		ACTRatePerSqft:        0.25,
		MatterportRatePerSqft: 0.08,
		LandscapeRates: map[string]map[AcreageTier]float64{
			"200": {
				AcreageUnder5:  1450,
				Acreage5To20:   1200,
				Acreage20To50:  950,
				Acreage50To100: 750,
				Acreage100Plus: 550,
			},
			"300": {
				AcreageUnder5:  1800,
				Acreage5To20:   1500,
				Acreage20To50:  1200,
				Acreage50To100: 950,
				Acreage100Plus: 700,
			},
		},
		ElevationTiers: []ElevationTier{
			{MaxCount: 5, Rate: 350},
			{MaxCount: 10, Rate: 300},
			{MaxCount: 0, Rate: 250},
		},
		Travel: TravelRates{
			StandardRatePerMile: 3.50,
			ScanDayFeeThreshold: 120,
			ScanDayFee:          650,
			MetroLocation:       "brooklyn",
			MetroIncludedMiles:  15,
			MetroRatePerMile:    2.50,
			MetroTierASqft:      100000,
			MetroTierBSqft:      25000,
			MetroTierAFee:       900,
			MetroTierBFee:       600,
			MetroTierCFee:       350,
		},
		TierAThresholdSqft: 100000,
		MarginFloor:        0.25,
		MarginGuardrail:    0.40,
	}
}

// BaseRateFor returns the per-sqft modeling rate for a discipline, falling
// back to the generic rate for unrecognized disciplines.
func (rt RateTable) BaseRateFor(d Discipline) float64 {
	if rate, ok := rt.BaseRates[d]; ok {
		return rate
	}
	return rt.GenericBaseRate
}

// LODMultiplierFor returns the multiplier for an LOD code, or 1.0 when the
// code has no configured row.
func (rt RateTable) LODMultiplierFor(lod string) float64 {
	if m, ok := rt.LODMultipliers[lod]; ok {
		return m
	}
	return 1.0
}

// ScopePortionFor returns the billed fraction for a scope. Full scope and
// any unrecognized scope string bill the whole area.
func (rt RateTable) ScopePortionFor(s Scope) float64 {
	if p, ok := rt.ScopePortions[s]; ok {
		return p
	}
	return 1.0
}

// PaymentTermPremiumFor returns the premium rate for a payment-terms code,
// or 0 for unknown terms.
func (rt RateTable) PaymentTermPremiumFor(terms string) float64 {
	return rt.PaymentTermPremiums[terms]
}
