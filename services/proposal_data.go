package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// ProposalData holds everything needed to render the client proposal PDF.
// It is deliberately client-facing: upteam costs, margins and integrity
// flags never appear here.
type ProposalData struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string

	QuoteNumber string
	ProjectName string
	QuoteDate   string

	Client ProposalClient

	LineItems []ProposalLineItem

	SubtotalModeling   float64
	SubtotalServices   float64
	SubtotalElevations float64
	SubtotalTravel     float64

	PaymentTerms       string
	PaymentTermPremium float64
	GrandTotal         float64
}

// ProposalClient holds the client block for the proposal header.
type ProposalClient struct {
	Name        string
	Company     string
	ContactName string
	Email       string
	Phone       string
}

// ProposalLineItem is one client-facing priced row.
type ProposalLineItem struct {
	SINo        int
	Description string
	Sqft        float64
	LOD         string
	Scope       string
	Price       float64
}

// BuildProposalData assembles the proposal PDF inputs from stored records.
// Only priced line items make it into the document; zero-priced rows (e.g.
// landscape areas with no rate data) are filtered out.
func BuildProposalData(app *pocketbase.PocketBase, quoteID string) (*ProposalData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return nil, fmt.Errorf("quote not found: %w", err)
	}

	data := &ProposalData{
		CompanyName:    "Meridian Scan & Model LLC",
		CompanyAddress: "214 Atlantic Ave, Brooklyn, NY 11201",
		CompanyEmail:   "quotes@meridianscan.example",

		QuoteNumber: quote.GetString("quote_number"),
		ProjectName: quote.GetString("project_name"),
		QuoteDate:   quote.GetDateTime("created").Time().Format("2006-01-02"),

		PaymentTerms:       quote.GetString("payment_terms"),
		PaymentTermPremium: quote.GetFloat("payment_term_premium"),
		GrandTotal:         quote.GetFloat("grand_total"),
	}

	if clientID := quote.GetString("client"); clientID != "" {
		client, err := app.FindRecordById("clients", clientID)
		if err == nil {
			data.Client = ProposalClient{
				Name:        client.GetString("name"),
				Company:     client.GetString("company"),
				ContactName: client.GetString("contact_name"),
				Email:       client.GetString("email"),
				Phone:       client.GetString("phone"),
			}
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
		return nil, fmt.Errorf("load line items: %w", err)
	}

	si := 1
	for _, item := range items {
		price := item.GetFloat("client_price")
		if price <= 0 {
			continue
		}

		data.LineItems = append(data.LineItems, ProposalLineItem{
			SINo:        si,
			Description: item.GetString("description"),
			Sqft:        item.GetFloat("sqft"),
			LOD:         item.GetString("lod"),
			Scope:       item.GetString("scope"),
			Price:       price,
		})
		si++

		switch LineItemCategory(item.GetString("category")) {
		case CategoryService:
			data.SubtotalServices += price
		case CategoryElevation:
			data.SubtotalElevations += price
		case CategoryTravel:
			data.SubtotalTravel += price
		default:
			data.SubtotalModeling += price
		}
	}

	return data, nil
}
