package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// HandleQuoteExportPDF returns a handler that generates and downloads the
// client proposal PDF for a quote.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := services.BuildProposalData(app, quoteID)
		if err != nil {
			log.Printf("quote_export: failed to build proposal data: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		pdfBytes, err := services.GenerateProposalPDF(data)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel returns a handler that generates and downloads the
// internal quote workbook, costs and margin included.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_export: quote not found %s: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		items, err := app.FindRecordsByFilter(
			"quote_line_items",
			"quote = {:quote}",
			"sort_order",
			0, 0,
			map[string]any{"quote": quoteID},
		)
		if err != nil {
			log.Printf("quote_export: could not query line items for %s: %v", quoteID, err)
			return e.String(http.StatusInternalServerError, "Failed to load line items")
		}

		data := services.QuoteWorkbookData{
			ProjectName:        quote.GetString("project_name"),
			QuoteNumber:        quote.GetString("quote_number"),
			CreatedDate:        quote.GetDateTime("created").Time().Format("2006-01-02"),
			TotalClientPrice:   quote.GetFloat("total_client_price"),
			TotalUpteamCost:    quote.GetFloat("total_upteam_cost"),
			PaymentTermPremium: quote.GetFloat("payment_term_premium"),
			GrandTotal:         quote.GetFloat("grand_total"),
			GrossMarginPercent: quote.GetFloat("gross_margin_percent"),
			IntegrityStatus:    quote.GetString("integrity_status"),
		}
		for i, item := range items {
			data.Rows = append(data.Rows, services.QuoteWorkbookRow{
				Index:          i + 1,
				Description:    item.GetString("description"),
				Category:       item.GetString("category"),
				Sqft:           item.GetFloat("sqft"),
				EffectiveSqft:  item.GetFloat("effective_sqft"),
				LOD:            item.GetString("lod"),
				Scope:          item.GetString("scope"),
				RiskMultiplier: item.GetFloat("risk_multiplier"),
				ClientPrice:    item.GetFloat("client_price"),
				UpteamCost:     item.GetFloat("upteam_cost"),
			})
		}

		excelBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate workbook: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate workbook")
		}

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(excelBytes)
		return nil
	}
}

// previewExcelRequest is the JSON body for POST /api/quotes/preview/excel.
type previewExcelRequest struct {
	ProjectName string              `json:"project_name"`
	Input       services.QuoteInput `json:"input"`
}

// HandleQuotePreviewExcel prices the input and streams the internal workbook
// without persisting anything, so a draft can be reviewed before it gets a
// quote number.
func HandleQuotePreviewExcel(rates *services.RateStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req previewExcelRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			log.Printf("quote_preview_excel: could not decode body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
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
			log.Printf("quote_preview_excel: compute failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute quote"})
		}

		data := services.WorkbookDataFromResult(req.ProjectName, "", time.Now().Format("2006-01-02"), result)
		excelBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_preview_excel: failed to generate workbook: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate workbook")
		}

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(req.ProjectName))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(excelBytes)
		return nil
	}
}

// sanitizeFilename strips characters that are unsafe in download filenames.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "quote"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
