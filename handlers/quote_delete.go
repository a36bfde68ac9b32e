package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete returns a handler that deletes a quote. Line items are
// removed by the cascade on their quote relation.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quote ID")
		}

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_delete: could not find quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: failed to delete quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("quote_delete: deleted quote %s\n", quoteID)

		SetToast(e, "success", "Quote deleted successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes")
	}
}
