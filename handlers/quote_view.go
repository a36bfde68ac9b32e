package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
	"scanquote/templates"
)

// HandleQuoteView returns a handler that renders the quote detail page with
// its line items, totals and integrity verdict.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_view: could not find quote %s: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		clientName := ""
		if clientID := quote.GetString("client"); clientID != "" {
			if client, err := app.FindRecordById("clients", clientID); err == nil {
				clientName = client.GetString("name")
			}
		}

		items, err := app.FindRecordsByFilter(
			"quote_line_items",
			"quote = {:quote}",
			"sort_order",
			0, 0,
			map[string]any{"quote": quoteID},
		)
		if err != nil {
			log.Printf("quote_view: could not query line items for %s: %v", quoteID, err)
			items = nil
		}

		var itemViews []templates.QuoteLineItemView
		for i, item := range items {
			sqft := ""
			if v := item.GetFloat("sqft"); v > 0 {
				sqft = services.FormatSqft(v)
			}
			risk := ""
			if v := item.GetFloat("risk_multiplier"); v > 1 {
				risk = fmt.Sprintf("%.2f", v)
			}

			itemViews = append(itemViews, templates.QuoteLineItemView{
				Index:       i + 1,
				Description: item.GetString("description"),
				Category:    item.GetString("category"),
				Sqft:        sqft,
				LOD:         item.GetString("lod"),
				Scope:       item.GetString("scope"),
				Risk:        risk,
				ClientPrice: services.FormatUSD(item.GetFloat("client_price")),
				UpteamCost:  services.FormatUSD(item.GetFloat("upteam_cost")),
			})
		}

		createdDate := "—"
		if dt := quote.GetDateTime("created"); !dt.IsZero() {
			createdDate = dt.Time().Format("02 Jan 2006")
		}

		data := templates.QuoteViewData{
			ID:                 quote.Id,
			QuoteNumber:        quote.GetString("quote_number"),
			ProjectName:        quote.GetString("project_name"),
			ClientName:         clientName,
			CreatedDate:        createdDate,
			Status:             quote.GetString("status"),
			IntegrityStatus:    quote.GetString("integrity_status"),
			IsTierA:            quote.GetBool("is_tier_a"),
			LineItems:          itemViews,
			TotalClientPrice:   services.FormatUSD(quote.GetFloat("total_client_price")),
			TotalUpteamCost:    services.FormatUSD(quote.GetFloat("total_upteam_cost")),
			PaymentTerms:       quote.GetString("payment_terms"),
			PaymentTermPremium: services.FormatUSD(quote.GetFloat("payment_term_premium")),
			GrandTotal:         services.FormatUSD(quote.GetFloat("grand_total")),
			MarginPercent:      fmt.Sprintf("%.1f%%", quote.GetFloat("gross_margin_percent")),
		}

		component := templates.QuoteViewPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteJSON returns a handler that serves the stored quote and its
// line items as JSON for API consumers.
func HandleQuoteJSON(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing quote ID"})
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "quote not found"})
		}

		items, err := app.FindRecordsByFilter(
			"quote_line_items",
			"quote = {:quote}",
			"sort_order",
			0, 0,
			map[string]any{"quote": quoteID},
		)
		if err != nil {
			log.Printf("quote_json: could not query line items for %s: %v", quoteID, err)
			items = nil
		}

		lineItems := make([]map[string]any, 0, len(items))
		for _, item := range items {
			lineItems = append(lineItems, map[string]any{
				"sort_order":      item.GetInt("sort_order"),
				"area_name":       item.GetString("area_name"),
				"discipline":      item.GetString("discipline"),
				"building_type":   item.GetString("building_type"),
				"category":        item.GetString("category"),
				"description":     item.GetString("description"),
				"sqft":            item.GetFloat("sqft"),
				"effective_sqft":  item.GetFloat("effective_sqft"),
				"lod":             item.GetString("lod"),
				"scope":           item.GetString("scope"),
				"risk_multiplier": item.GetFloat("risk_multiplier"),
				"client_price":    item.GetFloat("client_price"),
				"upteam_cost":     item.GetFloat("upteam_cost"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":                   quote.Id,
			"quote_number":         quote.GetString("quote_number"),
			"project_name":         quote.GetString("project_name"),
			"client":               quote.GetString("client"),
			"status":               quote.GetString("status"),
			"integrity_status":     quote.GetString("integrity_status"),
			"is_tier_a":            quote.GetBool("is_tier_a"),
			"total_client_price":   quote.GetFloat("total_client_price"),
			"total_upteam_cost":    quote.GetFloat("total_upteam_cost"),
			"payment_terms":        quote.GetString("payment_terms"),
			"payment_term_premium": quote.GetFloat("payment_term_premium"),
			"grand_total":          quote.GetFloat("grand_total"),
			"gross_margin_percent": quote.GetFloat("gross_margin_percent"),
			"line_items":           lineItems,
		})
	}
}
