package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
)

// Seed populates first-boot data: the default rate table and a sample
// client. It is idempotent; existing records are left alone.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedRateSettings(app); err != nil {
		return err
	}
	return seedSampleClient(app)
}

// seedRateSettings writes the default rate table when no settings record
// exists yet. Admin edits afterwards are authoritative.
func seedRateSettings(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("rate_settings", "id != ''", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("rate_settings")
	if err != nil {
		return fmt.Errorf("rate_settings collection missing: %w", err)
	}

	raw, err := services.MarshalRateTable(services.DefaultRateTable())
	if err != nil {
		return err
	}

	record := core.NewRecord(col)
	record.Set("rates_json", raw)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed rate settings: %w", err)
	}
	return nil
}

// seedSampleClient creates one demo client so the quote form has a
// selectable target on a fresh install.
func seedSampleClient(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("clients", "id != ''", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return fmt.Errorf("clients collection missing: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", "Harborview Development")
	record.Set("company", "Harborview Development Group")
	record.Set("contact_name", "Dana Whitfield")
	record.Set("email", "dana@harborview.example")
	record.Set("phone", "718-555-0142")
	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed sample client: %w", err)
	}
	return nil
}

// LoadRateTable reads the stored rate table, falling back to the defaults
// when no settings record exists or the blob fails to parse.
func LoadRateTable(app *pocketbase.PocketBase) services.RateTable {
	records, err := app.FindRecordsByFilter("rate_settings", "id != ''", "-updated", 1, 0, nil)
	if err != nil || len(records) == 0 {
		return services.DefaultRateTable()
	}

	rt, err := services.UnmarshalRateTable(records[0].GetString("rates_json"))
	if err != nil {
		return services.DefaultRateTable()
	}
	return rt
}
