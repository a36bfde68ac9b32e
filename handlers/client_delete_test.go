package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scanquote/testhelpers"
)

func TestHandleClientDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Delete Me")
	handler := HandleClientDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+client.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/clients")

	if _, err := app.FindRecordById("clients", client.Id); err == nil {
		t.Error("expected client to be deleted")
	}
}

func TestHandleClientDelete_HasQuotes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Busy Client")
	quote := testhelpers.CreateTestQuote(t, app, "Q-KEEP-1", "Active Project")
	quote.Set("client", client.Id)
	if err := app.Save(quote); err != nil {
		t.Fatalf("failed to link quote: %v", err)
	}

	handler := HandleClientDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+client.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("clients", client.Id); err != nil {
		t.Error("client should not have been deleted")
	}
}
