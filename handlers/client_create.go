package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/templates"
)

// HandleClientCreate returns a handler that renders the client creation form.
func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ClientFormData{
			Errors: make(map[string]string),
		}
		component := templates.ClientFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleClientSave returns a handler that processes the client creation form.
func HandleClientSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("client_create: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		company := strings.TrimSpace(e.Request.FormValue("company"))
		contactName := strings.TrimSpace(e.Request.FormValue("contact_name"))
		email := strings.TrimSpace(e.Request.FormValue("email"))
		phone := strings.TrimSpace(e.Request.FormValue("phone"))
		notes := strings.TrimSpace(e.Request.FormValue("notes"))

		errors := make(map[string]string)
		if name == "" {
			errors["name"] = "Client name is required"
		}

		if name != "" {
			existing, _ := app.FindRecordsByFilter("clients", "name = {:name}", "", 1, 0, map[string]any{"name": name})
			if len(existing) > 0 {
				errors["name"] = "A client with this name already exists"
			}
		}

		if len(errors) > 0 {
			data := templates.ClientFormData{
				Name:        name,
				Company:     company,
				ContactName: contactName,
				Email:       email,
				Phone:       phone,
				Notes:       notes,
				Errors:      errors,
			}
			component := templates.ClientFormPage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_create: could not find clients collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("company", company)
		record.Set("contact_name", contactName)
		record.Set("email", email)
		record.Set("phone", phone)
		record.Set("notes", notes)

		if err := app.Save(record); err != nil {
			log.Printf("client_create: could not save client: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		SetToast(e, "success", "Client created successfully")
		return e.Redirect(http.StatusFound, "/clients")
	}
}
