package handlers

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/services"
	"scanquote/templates"
)

// HandleQuoteList returns a handler that renders the quotes index page.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotes", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			records = nil
		}

		clientNames := make(map[string]string)

		var rows []templates.QuoteRow
		for _, q := range records {
			clientName := ""
			if clientID := q.GetString("client"); clientID != "" {
				name, ok := clientNames[clientID]
				if !ok {
					if client, err := app.FindRecordById("clients", clientID); err == nil {
						name = client.GetString("name")
					}
					clientNames[clientID] = name
				}
				clientName = name
			}

			createdDate := "—"
			if dt := q.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}

			rows = append(rows, templates.QuoteRow{
				ID:              q.Id,
				QuoteNumber:     q.GetString("quote_number"),
				ProjectName:     q.GetString("project_name"),
				ClientName:      clientName,
				GrandTotal:      services.FormatUSD(q.GetFloat("grand_total")),
				MarginPercent:   fmt.Sprintf("%.1f%%", q.GetFloat("gross_margin_percent")),
				IntegrityStatus: q.GetString("integrity_status"),
				Status:          q.GetString("status"),
				IsTierA:         q.GetBool("is_tier_a"),
				CreatedDate:     createdDate,
			})
		}

		component := templates.QuoteListPage(templates.QuoteListData{Quotes: rows})
		return component.Render(e.Request.Context(), e.Response)
	}
}
