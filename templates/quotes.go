package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuoteRow is one row in the quotes index table.
type QuoteRow struct {
	ID              string
	QuoteNumber     string
	ProjectName     string
	ClientName      string
	GrandTotal      string
	MarginPercent   string
	IntegrityStatus string
	Status          string
	IsTierA         bool
	CreatedDate     string
}

// QuoteListData drives the quotes index page.
type QuoteListData struct {
	Quotes []QuoteRow
}

// QuoteListPage renders the quotes index.
func QuoteListPage(data QuoteListData) templ.Component {
	return Layout("Quotes", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Quotes</h1>
</div>
`); err != nil {
			return err
		}

		if len(data.Quotes) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No quotes yet. Create one through the API or your scoping tool.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table">
<thead>
<tr><th>Quote #</th><th>Project</th><th>Client</th><th>Grand Total</th><th>Margin</th><th>Integrity</th><th>Status</th><th>Created</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}

		for _, q := range data.Quotes {
			tierBadge := ""
			if q.IsTierA {
				tierBadge = ` <span class="badge badge-blue">Tier A</span>`
			}
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/quotes/%s">%s</a>%s</td>
<td>%s</td>
<td>%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td><span class="%s">%s</span></td>
<td><span class="%s">%s</span></td>
<td>%s</td>
<td><button class="btn btn-danger" hx-delete="/quotes/%s" hx-confirm="Delete this quote?">Delete</button></td>
</tr>
`,
				esc(q.ID), esc(q.QuoteNumber), tierBadge,
				esc(q.ProjectName),
				esc(q.ClientName),
				esc(q.GrandTotal),
				esc(q.MarginPercent),
				badgeClass(q.IntegrityStatus), esc(q.IntegrityStatus),
				badgeClass(q.Status), esc(q.Status),
				esc(q.CreatedDate),
				esc(q.ID),
			); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	}))
}

// QuoteLineItemView is one priced row on the quote detail page.
type QuoteLineItemView struct {
	Index       int
	Description string
	Category    string
	Sqft        string
	LOD         string
	Scope       string
	Risk        string
	ClientPrice string
	UpteamCost  string
}

// QuoteViewData drives the quote detail page.
type QuoteViewData struct {
	ID              string
	QuoteNumber     string
	ProjectName     string
	ClientName      string
	CreatedDate     string
	Status          string
	IntegrityStatus string
	IsTierA         bool

	LineItems []QuoteLineItemView

	TotalClientPrice   string
	TotalUpteamCost    string
	PaymentTerms       string
	PaymentTermPremium string
	GrandTotal         string
	MarginPercent      string
}

// QuoteViewPage renders the quote detail page.
func QuoteViewPage(data QuoteViewData) templ.Component {
	return Layout("Quote "+data.QuoteNumber, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tierBadge := ""
		if data.IsTierA {
			tierBadge = ` <span class="badge badge-blue">Tier A</span>`
		}

		if _, err := fmt.Fprintf(w, `<div class="page-header">
<h1>%s%s</h1>
<div class="actions">
<a class="btn" href="/quotes/%s/export/pdf">Proposal PDF</a>
<a class="btn" href="/quotes/%s/export/excel">Workbook</a>
</div>
</div>
<dl class="meta">
<dt>Project</dt><dd>%s</dd>
<dt>Client</dt><dd>%s</dd>
<dt>Created</dt><dd>%s</dd>
<dt>Status</dt><dd><span class="%s">%s</span></dd>
<dt>Integrity</dt><dd><span class="%s">%s</span></dd>
</dl>
`,
			esc(data.QuoteNumber), tierBadge,
			esc(data.ID), esc(data.ID),
			esc(data.ProjectName),
			esc(data.ClientName),
			esc(data.CreatedDate),
			badgeClass(data.Status), esc(data.Status),
			badgeClass(data.IntegrityStatus), esc(data.IntegrityStatus),
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table">
<thead>
<tr><th>#</th><th>Description</th><th>Category</th><th>Sqft</th><th>LOD</th><th>Scope</th><th>Risk</th><th>Client Price</th><th>Upteam Cost</th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}

		for _, item := range data.LineItems {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%d</td>
<td>%s</td>
<td>%s</td>
<td class="num">%s</td>
<td>%s</td>
<td>%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
</tr>
`,
				item.Index,
				esc(item.Description),
				esc(item.Category),
				esc(item.Sqft),
				esc(item.LOD),
				esc(item.Scope),
				esc(item.Risk),
				esc(item.ClientPrice),
				esc(item.UpteamCost),
			); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</tbody>
</table>
<dl class="totals">
<dt>Total Client Price</dt><dd>%s</dd>
<dt>Total Upteam Cost</dt><dd>%s</dd>
<dt>Payment Terms (%s)</dt><dd>%s</dd>
<dt>Grand Total</dt><dd class="grand">%s</dd>
<dt>Gross Margin</dt><dd>%s</dd>
</dl>
`,
			esc(data.TotalClientPrice),
			esc(data.TotalUpteamCost),
			esc(data.PaymentTerms), esc(data.PaymentTermPremium),
			esc(data.GrandTotal),
			esc(data.MarginPercent),
		)
		return err
	}))
}
