package services

// DisciplineOptions lists the disciplines offered on the scoping form.
var DisciplineOptions = []Discipline{
	DisciplineArchitecture,
	DisciplineMEPF,
	DisciplineStructure,
	DisciplineSite,
}

// LODOptions lists the level-of-detail codes offered on the scoping form.
var LODOptions = []string{"200", "300", "350", "400"}

// ScopeOptions lists the selectable deliverable scopes.
var ScopeOptions = []Scope{ScopeFull, ScopeInterior, ScopeExterior, ScopeMixed}

// BuildingTypeOptions lists every dispatchable building type, standard
// types first.
var BuildingTypeOptions = append(
	append([]BuildingType{}, StandardBuildingTypes...),
	BuildingLandscape, BuildingACTOnly, BuildingMatterportOnly,
)

// RiskTagOptions lists the selectable site risk tags.
var RiskTagOptions = []RiskTag{
	RiskOccupied,
	RiskHazardous,
	RiskNoPower,
	RiskRestrictedAccess,
	RiskActiveConstruction,
}

// PaymentTermOptions lists the payment terms offered on quotes.
var PaymentTermOptions = []string{"net30", "net45", "net60", "net90"}

// QuoteStatusOptions lists the production-tracking statuses a saved quote
// moves through.
var QuoteStatusOptions = []string{"draft", "sent", "won", "lost"}
