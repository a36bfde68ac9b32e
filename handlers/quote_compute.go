package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// HandleQuotePreview returns a handler that prices a quote without
// persisting anything. The client posts a QuoteInput as JSON and gets the
// full QuoteResult back, including the integrity verdict.
func HandleQuotePreview(app *pocketbase.PocketBase, rates *services.RateStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var input services.QuoteInput
		if err := json.NewDecoder(e.Request.Body).Decode(&input); err != nil {
			log.Printf("quote_preview: could not decode body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		}

		result, err := services.ComputeQuote(input, rates.Current())
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				return e.JSON(http.StatusBadRequest, map[string]string{
					"error": vErr.Error(),
					"field": vErr.Field,
				})
			}
			log.Printf("quote_preview: compute failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute quote"})
		}

		return e.JSON(http.StatusOK, result)
	}
}
