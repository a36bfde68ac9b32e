package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleClientDelete returns a handler that deletes a client, refusing when
// quotes still reference it.
func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")
		if clientID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing client ID")
		}

		record, err := app.FindRecordById("clients", clientID)
		if err != nil {
			log.Printf("client_delete: could not find client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		quotes, err := app.FindRecordsByFilter(
			"quotes",
			"client = {:clientId}",
			"", 1, 0,
			map[string]any{"clientId": clientID},
		)
		if err == nil && len(quotes) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete client — it has existing quotes")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("client_delete: failed to delete client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("client_delete: deleted client %s\n", clientID)

		SetToast(e, "success", "Client deleted successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/clients")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/clients")
	}
}
