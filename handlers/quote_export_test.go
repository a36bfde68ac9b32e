package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scanquote/services"
	"scanquote/testhelpers"
)

func TestHandleQuoteExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Harborview Development")
	quote := testhelpers.CreateTestQuote(t, app, "Q-2025-014", "Harborview Tower")
	quote.Set("client", client.Id)
	quote.Set("grand_total", 21734.0)
	if err := app.Save(quote); err != nil {
		t.Fatalf("failed to update quote: %v", err)
	}
	testhelpers.CreateTestQuoteLineItem(t, app, quote.Id, 1, "Tower modeling", "modeling", 19404, 9702)
	testhelpers.CreateTestQuoteLineItem(t, app, quote.Id, 2, "Standard mileage travel", "travel", 280, 280)

	handler := HandleQuoteExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/export/pdf", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Q-2025-014.pdf") {
		t.Errorf("Content-Disposition = %q, want filename Q-2025-014.pdf", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("response body is not a PDF")
	}
}

func TestHandleQuoteExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleQuoteExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Q-2025-015", "Workbook Project")
	testhelpers.CreateTestQuoteLineItem(t, app, quote.Id, 1, "Tower modeling", "modeling", 4200, 2310)

	handler := HandleQuoteExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/export/excel", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	wantCT := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if ct := rec.Header().Get("Content-Type"); ct != wantCT {
		t.Errorf("Content-Type = %q, want %q", ct, wantCT)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Q-2025-015.xlsx") {
		t.Errorf("Content-Disposition = %q, want filename Q-2025-015.xlsx", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("response body is empty")
	}
}

func TestHandleQuotePreviewExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rates := services.NewRateStore(services.DefaultRateTable())
	handler := HandleQuotePreviewExcel(rates)

	body := `{
		"project_name": "Draft Tower",
		"input": {
			"areas": [{
				"id": "a1",
				"name": "Tower",
				"building_type": "office",
				"square_feet": 10000,
				"disciplines": ["architecture"]
			}],
			"payment_terms": "net30"
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/preview/excel", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	wantCT := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if ct := rec.Header().Get("Content-Type"); ct != wantCT {
		t.Errorf("Content-Type = %q, want %q", ct, wantCT)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Draft_Tower.xlsx") {
		t.Errorf("Content-Disposition = %q, want filename Draft_Tower.xlsx", cd)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("response body is not a workbook")
	}

	// A preview never persists anything.
	quotes, _ := app.FindRecordsByFilter("quotes", "id != ''", "", 0, 0, nil)
	if len(quotes) != 0 {
		t.Errorf("preview export persisted %d quote records", len(quotes))
	}
}

func TestHandleQuotePreviewExcel_InvalidInput(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rates := services.NewRateStore(services.DefaultRateTable())
	handler := HandleQuotePreviewExcel(rates)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/preview/excel", strings.NewReader(`{"project_name": "Empty", "input": {}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"areas"`) {
		t.Errorf("response does not carry the failing field: %s", rec.Body.String())
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"Q-2025-014", "Q-2025-014"},
		{"Q 2025/014", "Q_2025_014"},
		{"", "quote"},
		{"  ", "quote"},
		{"weird\"name", "weird_name"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.expect {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
