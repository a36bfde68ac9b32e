package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// quoteCreateRequest is the JSON body for POST /api/quotes.
type quoteCreateRequest struct {
	QuoteNumber string              `json:"quote_number"`
	ProjectName string              `json:"project_name"`
	ClientID    string              `json:"client"`
	Status      string              `json:"status"`
	Input       services.QuoteInput `json:"input"`
}

// quoteCreateResponse wraps the persisted quote ID with the priced result.
type quoteCreateResponse struct {
	ID     string               `json:"id"`
	Result services.QuoteResult `json:"result"`
}

// HandleQuoteCreate returns a handler that prices a quote and persists it
// with its line items. A blocked integrity verdict rejects the save with
// 422; the computed result is still returned so the caller can show why.
func HandleQuoteCreate(app *pocketbase.PocketBase, rates *services.RateStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req quoteCreateRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			log.Printf("quote_create: could not decode body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		}

		req.QuoteNumber = strings.TrimSpace(req.QuoteNumber)
		req.ProjectName = strings.TrimSpace(req.ProjectName)
		if req.QuoteNumber == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "quote_number is required"})
		}
		if req.ProjectName == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "project_name is required"})
		}

		existing, _ := app.FindRecordsByFilter("quotes", "quote_number = {:num}", "", 1, 0, map[string]any{"num": req.QuoteNumber})
		if len(existing) > 0 {
			return e.JSON(http.StatusConflict, map[string]string{"error": "a quote with this number already exists"})
		}

		result, err := services.ComputeQuote(req.Input, rates.Current())
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				return e.JSON(http.StatusBadRequest, map[string]string{
					"error": vErr.Error(),
					"field": vErr.Field,
				})
			}
			log.Printf("quote_create: compute failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute quote"})
		}

		if result.IntegrityStatus == services.IntegrityBlocked {
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{
				"error":  "quote blocked: gross margin below floor",
				"result": result,
			})
		}

		quoteID, err := saveQuote(app, req, result)
		if err != nil {
			log.Printf("quote_create: could not save quote: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save quote"})
		}

		log.Printf("quote_create: saved quote %s (%s)\n", req.QuoteNumber, quoteID)
		return e.JSON(http.StatusOK, quoteCreateResponse{ID: quoteID, Result: result})
	}
}

// saveQuote persists the quote record and its line items. Line items keep
// the engine ordering so the proposal and workbook render rows the same way.
func saveQuote(app *pocketbase.PocketBase, req quoteCreateRequest, result services.QuoteResult) (string, error) {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return "", err
	}

	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		return "", err
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}

	quote := core.NewRecord(quotesCol)
	quote.Set("quote_number", req.QuoteNumber)
	quote.Set("project_name", req.ProjectName)
	quote.Set("client", req.ClientID)
	quote.Set("dispatch_location", req.Input.DispatchLocation)
	quote.Set("distance_miles", req.Input.DistanceMiles)
	quote.Set("payment_terms", result.PaymentTerms)
	quote.Set("margin_target", req.Input.MarginTarget)
	quote.Set("input_json", string(inputJSON))
	quote.Set("integrity_status", string(result.IntegrityStatus))
	quote.Set("gross_margin_percent", result.GrossMarginPercent)
	quote.Set("total_client_price", result.TotalClientPrice)
	quote.Set("total_upteam_cost", result.TotalUpteamCost)
	quote.Set("payment_term_premium", result.PaymentTermPremium)
	quote.Set("grand_total", result.GrandTotal)
	quote.Set("is_tier_a", result.IsTierA)
	quote.Set("status", status)

	if err := app.Save(quote); err != nil {
		return "", err
	}

	itemsCol, err := app.FindCollectionByNameOrId("quote_line_items")
	if err != nil {
		rollbackQuote(app, quote)
		return "", err
	}

	for i, item := range result.LineItems {
		record := core.NewRecord(itemsCol)
		record.Set("quote", quote.Id)
		record.Set("sort_order", i+1)
		record.Set("area_name", item.AreaName)
		record.Set("discipline", string(item.Discipline))
		record.Set("building_type", string(item.BuildingType))
		record.Set("category", string(item.Category))
		record.Set("description", item.Description)
		record.Set("sqft", item.Sqft)
		record.Set("effective_sqft", item.EffectiveSqft)
		record.Set("lod", item.LOD)
		record.Set("scope", string(item.Scope))
		record.Set("risk_multiplier", item.RiskMultiplier)
		record.Set("client_price", item.ClientPrice)
		record.Set("upteam_cost", item.UpteamCost)

		if err := app.Save(record); err != nil {
			rollbackQuote(app, quote)
			return "", fmt.Errorf("save line item %d: %w", i+1, err)
		}
	}

	return quote.Id, nil
}

// rollbackQuote removes a partially saved quote so a failed line-item write
// never leaves a stored quote that disagrees with its computed result.
func rollbackQuote(app *pocketbase.PocketBase, quote *core.Record) {
	if err := app.Delete(quote); err != nil {
		log.Printf("quote_create: could not roll back quote %s: %v", quote.Id, err)
	}
}
