package services

import "fmt"

// ValidationError reports a malformed QuoteInput. The engine returns it
// instead of producing garbage numbers; missing rate data, by contrast, is
// handled through documented fallbacks and never errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quote input: %s: %s", e.Field, e.Message)
}

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// knownScopes covers the enum values callers may submit. An empty scope is
// allowed and resolves to the default.
var knownScopes = map[Scope]bool{
	ScopeFull:     true,
	ScopeInterior: true,
	ScopeExterior: true,
	ScopeMixed:    true,
}

// ValidateQuoteInput checks the structural constraints every QuoteInput must
// satisfy, whether it came from the scoping form or from the extraction
// layer. Rate-table gaps are NOT validated here; those resolve to documented
// pricing fallbacks.
func ValidateQuoteInput(input QuoteInput) error {
	if len(input.Areas) == 0 {
		return validationErrorf("areas", "at least one area is required")
	}
	if input.DistanceMiles < 0 {
		return validationErrorf("distance_miles", "must not be negative, got %v", input.DistanceMiles)
	}
	if input.MarginTarget < 0 {
		return validationErrorf("margin_target", "must not be negative, got %v", input.MarginTarget)
	}
	if input.MarginTarget >= 1 {
		return validationErrorf("margin_target", "must be below 1, got %v", input.MarginTarget)
	}

	for i, area := range input.Areas {
		field := fmt.Sprintf("areas[%d]", i)
		if !area.BuildingType.IsKnown() {
			return validationErrorf(field+".building_type", "unknown building type %q", area.BuildingType)
		}
		if area.SquareFeet < 0 {
			return validationErrorf(field+".square_feet", "must not be negative, got %v", area.SquareFeet)
		}
		if area.AdditionalElevations < 0 {
			return validationErrorf(field+".additional_elevations", "must not be negative, got %d", area.AdditionalElevations)
		}
		if area.Scope != "" && !knownScopes[area.Scope] {
			return validationErrorf(field+".scope", "unknown scope %q", area.Scope)
		}
		if !area.BuildingType.IsSpecialty() && len(area.Disciplines) == 0 {
			return validationErrorf(field+".disciplines", "standard building types require at least one discipline")
		}
		// Landscape areas carry acres in SquareFeet; a per-sqft Matterport
		// add-on has no meaningful unit there.
		if area.BuildingType == BuildingLandscape && area.IncludeMatterport {
			return validationErrorf(field+".include_matterport", "not available for landscape areas")
		}
		for d, spec := range area.DisciplineSpecs {
			if spec.Scope != "" && !knownScopes[spec.Scope] {
				return validationErrorf(fmt.Sprintf("%s.discipline_specs[%s].scope", field, d), "unknown scope %q", spec.Scope)
			}
		}
	}
	return nil
}
