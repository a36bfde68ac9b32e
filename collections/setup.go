// Package collections programmatically creates and seeds the PocketBase
// collections backing the quoting platform.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the clients, quotes,
// quote_line_items and rate_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "project_name", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "dispatch_location", Required: false})
		c.Fields.Add(&core.NumberField{Name: "distance_miles", Required: false})
		c.Fields.Add(&core.TextField{Name: "payment_terms", Required: false})
		c.Fields.Add(&core.NumberField{Name: "margin_target", Required: false})
		// Full QuoteInput as submitted, kept for audit and re-pricing.
		c.Fields.Add(&core.TextField{Name: "input_json", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "integrity_status",
			Required:  true,
			Values:    []string{"passed", "warning", "blocked"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "gross_margin_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_client_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_upteam_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "payment_term_premium", Required: false})
		c.Fields.Add(&core.NumberField{Name: "grand_total", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_tier_a"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "sent", "won", "lost"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "area_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "discipline", Required: false})
		c.Fields.Add(&core.TextField{Name: "building_type", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"modeling", "service", "elevation", "travel"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sqft", Required: false})
		c.Fields.Add(&core.NumberField{Name: "effective_sqft", Required: false})
		c.Fields.Add(&core.TextField{Name: "lod", Required: false})
		c.Fields.Add(&core.TextField{Name: "scope", Required: false})
		c.Fields.Add(&core.NumberField{Name: "risk_multiplier", Required: false})
		c.Fields.Add(&core.NumberField{Name: "client_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "upteam_cost", Required: false})
	})

	ensureCollection(app, "rate_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "rates_json", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
