// Package templates renders the HTML pages for the quoting platform. Pages
// are built as templ components so handlers can render them straight into
// the response writer.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content with the shared chrome: head, nav and the toast
// container that HX-Trigger events write into.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<nav class="topnav">
<a href="/quotes" class="brand">Meridian Scan &amp; Model</a>
<a href="/quotes">Quotes</a>
<a href="/clients">Clients</a>
</nav>
<div id="toast-container"></div>
<main class="container">
`, html.EscapeString(title)); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>
<script>
document.body.addEventListener("showToast", function (evt) {
  var d = evt.detail || {};
  var el = document.createElement("div");
  el.className = "toast toast-" + (d.type || "info");
  el.textContent = d.message || "";
  document.getElementById("toast-container").appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
});
</script>
</body>
</html>
`)
		return err
	})
}

// badgeClass maps an integrity or quote status to its badge CSS class.
func badgeClass(status string) string {
	switch status {
	case "passed", "won":
		return "badge badge-green"
	case "warning", "sent":
		return "badge badge-amber"
	case "blocked", "lost":
		return "badge badge-red"
	default:
		return "badge"
	}
}

// esc is a shorthand for html.EscapeString used throughout the page builders.
func esc(s string) string {
	return html.EscapeString(s)
}
