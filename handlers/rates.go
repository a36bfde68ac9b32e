package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// HandleRatesGet returns a handler that serves the active rate table.
func HandleRatesGet(rates *services.RateStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, rates.Current())
	}
}

// HandleRatesUpdate returns a handler that replaces the active rate table.
// The new table is persisted to rate_settings and swapped into the store,
// so in-flight quotes finish on the table they started with while new
// requests price on the updated one.
func HandleRatesUpdate(app *pocketbase.PocketBase, rates *services.RateStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rt services.RateTable
		if err := json.NewDecoder(e.Request.Body).Decode(&rt); err != nil {
			log.Printf("rates_update: could not decode body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		}

		raw, err := services.MarshalRateTable(rt)
		if err != nil {
			log.Printf("rates_update: could not marshal rate table: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode rate table"})
		}

		records, err := app.FindRecordsByFilter("rate_settings", "id != ''", "-updated", 1, 0, nil)
		if err == nil && len(records) > 0 {
			records[0].Set("rates_json", raw)
			if err := app.Save(records[0]); err != nil {
				log.Printf("rates_update: could not update rate settings: %v", err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to persist rate table"})
			}
		} else {
			col, err := app.FindCollectionByNameOrId("rate_settings")
			if err != nil {
				log.Printf("rates_update: rate_settings collection missing: %v", err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to persist rate table"})
			}
			record := core.NewRecord(col)
			record.Set("rates_json", raw)
			if err := app.Save(record); err != nil {
				log.Printf("rates_update: could not create rate settings: %v", err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to persist rate table"})
			}
		}

		rates.Swap(rt)
		log.Printf("rates_update: rate table replaced\n")

		return e.JSON(http.StatusOK, rates.Current())
	}
}
