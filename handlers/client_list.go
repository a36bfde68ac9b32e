package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/templates"
)

// HandleClientList returns a handler that renders the clients index page.
func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("clients", "id != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("client_list: could not query clients: %v", err)
			records = nil
		}

		var rows []templates.ClientRow
		for _, c := range records {
			quotes, err := app.FindRecordsByFilter(
				"quotes",
				"client = {:client}",
				"", 0, 0,
				map[string]any{"client": c.Id},
			)
			quoteCount := 0
			if err == nil {
				quoteCount = len(quotes)
			}

			rows = append(rows, templates.ClientRow{
				ID:          c.Id,
				Name:        c.GetString("name"),
				Company:     c.GetString("company"),
				ContactName: c.GetString("contact_name"),
				Email:       c.GetString("email"),
				Phone:       c.GetString("phone"),
				QuoteCount:  quoteCount,
			})
		}

		component := templates.ClientListPage(templates.ClientListData{Clients: rows})
		return component.Render(e.Request.Context(), e.Response)
	}
}
