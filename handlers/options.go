package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// HandleOptionsGet returns the option lists a scoping form or intake client
// needs to assemble a valid quote input.
func HandleOptionsGet() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"disciplines":    services.DisciplineOptions,
			"lods":           services.LODOptions,
			"scopes":         services.ScopeOptions,
			"building_types": services.BuildingTypeOptions,
			"risk_tags":      services.RiskTagOptions,
			"payment_terms":  services.PaymentTermOptions,
			"quote_statuses": services.QuoteStatusOptions,
		})
	}
}
