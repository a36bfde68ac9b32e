// Package services provides the deterministic configure-price-quote engine
// and the export/formatting logic built on top of it. Engine functions are
// pure: they take a QuoteInput plus a RateTable and return priced results
// without touching storage.
package services

// Discipline identifies one modeling trade within an area.
type Discipline string

const (
	DisciplineArchitecture Discipline = "architecture"
	DisciplineMEPF         Discipline = "mepf"
	DisciplineStructure    Discipline = "structure"
	DisciplineSite         Discipline = "site"
)

// Scope describes which portion of a building a deliverable covers.
type Scope string

const (
	ScopeFull     Scope = "full"
	ScopeInterior Scope = "interior"
	ScopeExterior Scope = "exterior"
	ScopeMixed    Scope = "mixed"
)

// BuildingType selects the pricing dispatch branch for an area.
type BuildingType string

const (
	BuildingOffice      BuildingType = "office"
	BuildingResidential BuildingType = "residential"
	BuildingIndustrial  BuildingType = "industrial"
	BuildingHealthcare  BuildingType = "healthcare"
	BuildingEducation   BuildingType = "education"
	BuildingRetail      BuildingType = "retail"
	BuildingHospitality BuildingType = "hospitality"
	BuildingWorship     BuildingType = "worship"
	BuildingCivic       BuildingType = "civic"
	BuildingWarehouse   BuildingType = "warehouse"
	BuildingMixedUse    BuildingType = "mixed_use"
	BuildingParking     BuildingType = "parking"
	BuildingHistoric    BuildingType = "historic"

	// Specialty codes. These bypass per-discipline modeling rates entirely.
	BuildingLandscape      BuildingType = "landscape"
	BuildingACTOnly        BuildingType = "act_only"
	BuildingMatterportOnly BuildingType = "matterport_only"
)

// StandardBuildingTypes lists every non-specialty building type.
var StandardBuildingTypes = []BuildingType{
	BuildingOffice, BuildingResidential, BuildingIndustrial,
	BuildingHealthcare, BuildingEducation, BuildingRetail,
	BuildingHospitality, BuildingWorship, BuildingCivic,
	BuildingWarehouse, BuildingMixedUse, BuildingParking,
	BuildingHistoric,
}

// IsSpecialty reports whether the type uses one of the specialty pricers.
func (b BuildingType) IsSpecialty() bool {
	return b == BuildingLandscape || b == BuildingACTOnly || b == BuildingMatterportOnly
}

// IsKnown reports whether the type has a dispatch branch.
func (b BuildingType) IsKnown() bool {
	if b.IsSpecialty() {
		return true
	}
	for _, s := range StandardBuildingTypes {
		if b == s {
			return true
		}
	}
	return false
}

// RiskTag marks a site condition that carries a pricing premium.
type RiskTag string

const (
	RiskOccupied           RiskTag = "occupied"
	RiskHazardous          RiskTag = "hazardous"
	RiskNoPower            RiskTag = "no_power"
	RiskRestrictedAccess   RiskTag = "restricted_access"
	RiskActiveConstruction RiskTag = "active_construction"
)

// LineItemCategory buckets line items for subtotaling.
type LineItemCategory string

const (
	CategoryModeling  LineItemCategory = "modeling"
	CategoryService   LineItemCategory = "service"
	CategoryElevation LineItemCategory = "elevation"
	CategoryTravel    LineItemCategory = "travel"
)

// DisciplineSpec optionally overrides the area-level LOD and scope for a
// single discipline.
type DisciplineSpec struct {
	LOD   string `json:"lod,omitempty"`
	Scope Scope  `json:"scope,omitempty"`
}

// Area is one region of a building to be scanned and modeled. It is
// caller-constructed input and never mutated by the engine.
//
// When BuildingType is the landscape code, SquareFeet is read as ACRES.
type Area struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BuildingType BuildingType `json:"building_type"`
	SquareFeet   float64      `json:"square_feet"`

	Disciplines []Discipline `json:"disciplines,omitempty"`

	// Area-level defaults, overridable per discipline.
	LOD   string `json:"lod,omitempty"`
	Scope Scope  `json:"scope,omitempty"`

	DisciplineSpecs map[Discipline]DisciplineSpec `json:"discipline_specs,omitempty"`

	Risks []RiskTag `json:"risks,omitempty"`

	AdditionalElevations int  `json:"additional_elevations"`
	IncludeMatterport    bool `json:"include_matterport"`
}

// QuoteInput is the full structured description of a project handed to
// ComputeQuote. It may come from the scoping form or from the extraction
// layer; either way it is validated before pricing.
type QuoteInput struct {
	Areas []Area `json:"areas"`

	DispatchLocation string  `json:"dispatch_location"`
	DistanceMiles    float64 `json:"distance_miles"`

	PaymentTerms string    `json:"payment_terms"`
	ProjectRisks []RiskTag `json:"project_risks,omitempty"`

	// MarginTarget > 0 triggers the price back-solving pass.
	MarginTarget float64 `json:"margin_target,omitempty"`
}

// LineItem is one priced unit of work. Items are produced by ComputeQuote
// and treated as immutable; the margin-target pass builds new values rather
// than editing in place.
type LineItem struct {
	AreaID       string           `json:"area_id"`
	AreaName     string           `json:"area_name"`
	Discipline   Discipline       `json:"discipline,omitempty"`
	BuildingType BuildingType     `json:"building_type"`
	Category     LineItemCategory `json:"category"`

	Sqft          float64 `json:"sqft"`
	EffectiveSqft float64 `json:"effective_sqft"`
	LOD           string  `json:"lod,omitempty"`
	Scope         Scope   `json:"scope,omitempty"`

	Description string `json:"description"`

	ClientPrice    float64 `json:"client_price"`
	UpteamCost     float64 `json:"upteam_cost"`
	RiskMultiplier float64 `json:"risk_multiplier"`
}

// TravelResult is the single per-quote travel computation.
type TravelResult struct {
	BaseCost       float64 `json:"base_cost"`
	ExtraMilesCost float64 `json:"extra_miles_cost"`
	ScanDayFee     float64 `json:"scan_day_fee"`
	TotalCost      float64 `json:"total_cost"`
	Label          string  `json:"label"`
	Tier           string  `json:"tier,omitempty"`
}

// IntegritySeverity grades an integrity flag.
type IntegritySeverity string

const (
	SeverityWarning IntegritySeverity = "warning"
	SeverityError   IntegritySeverity = "error"
)

// IntegrityStatus is the overall pass/warn/block verdict for a quote.
type IntegrityStatus string

const (
	IntegrityPassed  IntegrityStatus = "passed"
	IntegrityWarning IntegrityStatus = "warning"
	IntegrityBlocked IntegrityStatus = "blocked"
)

// IntegrityFlag is a single structured finding from the integrity check.
type IntegrityFlag struct {
	Code     string            `json:"code"`
	Severity IntegritySeverity `json:"severity"`
	Message  string            `json:"message"`
}

// QuoteResult is the complete priced output for one QuoteInput.
type QuoteResult struct {
	LineItems []LineItem   `json:"line_items"`
	Travel    TravelResult `json:"travel"`

	Subtotals map[string]float64 `json:"subtotals"`

	TotalClientPrice float64 `json:"total_client_price"`
	TotalUpteamCost  float64 `json:"total_upteam_cost"`

	PaymentTerms       string  `json:"payment_terms"`
	PaymentTermPremium float64 `json:"payment_term_premium"`
	GrandTotal         float64 `json:"grand_total"`

	GrossMargin        float64 `json:"gross_margin"`
	GrossMarginPercent float64 `json:"gross_margin_percent"`

	IntegrityStatus IntegrityStatus `json:"integrity_status"`
	IntegrityFlags  []IntegrityFlag `json:"integrity_flags,omitempty"`

	IsTierA bool `json:"is_tier_a"`
}
