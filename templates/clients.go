package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientRow is one row in the clients index table.
type ClientRow struct {
	ID          string
	Name        string
	Company     string
	ContactName string
	Email       string
	Phone       string
	QuoteCount  int
}

// ClientListData drives the clients index page.
type ClientListData struct {
	Clients []ClientRow
}

// ClientListPage renders the clients index.
func ClientListPage(data ClientListData) templ.Component {
	return Layout("Clients", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Clients</h1>
<div class="actions">
<a class="btn btn-primary" href="/clients/create">New Client</a>
</div>
</div>
`); err != nil {
			return err
		}

		if len(data.Clients) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No clients yet.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table">
<thead>
<tr><th>Name</th><th>Company</th><th>Contact</th><th>Email</th><th>Phone</th><th>Quotes</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}

		for _, c := range data.Clients {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td class="num">%d</td>
<td><button class="btn btn-danger" hx-delete="/clients/%s" hx-confirm="Delete this client?">Delete</button></td>
</tr>
`,
				esc(c.Name),
				esc(c.Company),
				esc(c.ContactName),
				esc(c.Email),
				esc(c.Phone),
				c.QuoteCount,
				esc(c.ID),
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

// ClientFormData drives the client creation form, carrying submitted values
// back on validation errors.
type ClientFormData struct {
	Name        string
	Company     string
	ContactName string
	Email       string
	Phone       string
	Notes       string
	Errors      map[string]string
}

// ClientFormPage renders the client creation form.
func ClientFormPage(data ClientFormData) templ.Component {
	return Layout("New Client", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>New Client</h1>
</div>
<form method="post" action="/clients" class="form">
`); err != nil {
			return err
		}

		fields := []struct {
			name     string
			label    string
			value    string
			required bool
		}{
			{"name", "Name", data.Name, true},
			{"company", "Company", data.Company, false},
			{"contact_name", "Contact Name", data.ContactName, false},
			{"email", "Email", data.Email, false},
			{"phone", "Phone", data.Phone, false},
		}

		for _, f := range fields {
			required := ""
			if f.required {
				required = " required"
			}
			if _, err := fmt.Fprintf(w, `<label for="%s">%s</label>
<input type="text" id="%s" name="%s" value="%s"%s>
`, f.name, esc(f.label), f.name, f.name, esc(f.value), required); err != nil {
				return err
			}
			if msg, ok := data.Errors[f.name]; ok {
				if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>
`, esc(msg)); err != nil {
					return err
				}
			}
		}

		_, err := fmt.Fprintf(w, `<label for="notes">Notes</label>
<textarea id="notes" name="notes" rows="3">%s</textarea>
<div class="form-actions">
<button type="submit" class="btn btn-primary">Save Client</button>
<a class="btn" href="/clients">Cancel</a>
</div>
</form>
`, esc(data.Notes))
		return err
	}))
}
