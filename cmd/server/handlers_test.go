package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Simplici0/costboard/internal/catalog"
	"github.com/Simplici0/costboard/internal/db"
	"github.com/Simplici0/costboard/internal/migrations"
	"github.com/Simplici0/costboard/internal/pricing"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	return &server{
		estimator:   pricing.NewEstimator(catalog.Default()),
		log:         zerolog.Nop(),
		templateDir: "../../web/templates",
	}
}

func get(t *testing.T, srv *server, target string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	srv.routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeEstimate(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("expected json content type, got %q", rr.Header().Get("Content-Type"))
	}

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestParseSelection(t *testing.T) {
	query := url.Values{}
	query.Set("q", "  ddr ")
	query.Set("quantity", "12.7")
	query.Add("category", "Memory")
	query.Add("category", " ")
	query.Add("category", "Storage")
	query.Set("setup_fee", "on")

	sel := parseSelection(query)

	if sel.SearchTerm != "  ddr " || sel.Quantity != 12 || !sel.ApplySetupFee {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if strings.Join(sel.Categories, ",") != "Memory,Storage" {
		t.Fatalf("unexpected categories: %v", sel.Categories)
	}
}

func TestParseSelection_InvalidQuantityIsZero(t *testing.T) {
	for _, raw := range []string{"-5", "abc", ""} {
		sel := parseSelection(url.Values{"quantity": {raw}})
		if sel.Quantity != 0 {
			t.Fatalf("quantity %q coerced to %d, want 0", raw, sel.Quantity)
		}
	}
}

func TestHandleEstimate_MemoryScenario(t *testing.T) {
	body := decodeEstimate(t, get(t, newTestServer(t), "/api/estimate?quantity=10&category=Memory"))

	rows := body["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["id"] != "MEM-001" || first["adjusted_price_display"] != "118.09" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if body["total_display"] != "1,719.90" || body["no_results"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHandleEstimate_InvalidQuantityWithFee(t *testing.T) {
	body := decodeEstimate(t, get(t, newTestServer(t), "/api/estimate?quantity=abc&setup_fee=1"))

	if body["message"] != pricing.InvalidQuantityMessage {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["total_display"] != "500.00" || body["no_results"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHandleEstimate_NoMatch(t *testing.T) {
	body := decodeEstimate(t, get(t, newTestServer(t), "/api/estimate?quantity=50&q=zzz-no-match"))

	if body["message"] != pricing.NoMatchMessage || body["no_results"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["total_display"] != "0.00" {
		t.Fatalf("unexpected total: %v", body["total_display"])
	}
}

func TestHandleCatalog(t *testing.T) {
	body := decodeEstimate(t, get(t, newTestServer(t), "/api/catalog"))

	if parts := body["parts"].([]any); len(parts) != 10 {
		t.Fatalf("expected 10 parts, got %d", len(parts))
	}
	if body["setup_fee_display"] != "500.00" {
		t.Fatalf("unexpected setup fee: %v", body["setup_fee_display"])
	}
}

func TestHandleDashboard_RendersRowsAndTotal(t *testing.T) {
	rr := get(t, newTestServer(t), "/?quantity=50&q=CPU-001&setup_fee=1")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected html content type, got %q", rr.Header().Get("Content-Type"))
	}

	body := rr.Body.String()
	for _, expected := range []string{"CPU-001", "472.50", "23,625.00", "Total: 24,125.00", "includes setup fee"} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q", expected)
		}
	}
}

func TestHandleDashboard_DefaultsQuantityOnFirstVisit(t *testing.T) {
	body := get(t, newTestServer(t), "/").Body.String()

	if strings.Contains(body, "Please enter a valid quantity") {
		t.Fatalf("first visit should not show the quantity message")
	}
	if !strings.Contains(body, "CLR-001") {
		t.Fatalf("expected all parts on first visit")
	}
}

func TestHandleDashboard_ShowsQuantityMessage(t *testing.T) {
	body := get(t, newTestServer(t), "/?quantity=-5").Body.String()

	if !strings.Contains(body, "Please enter a valid quantity (&gt; 0) to proceed with calculation.") {
		t.Fatalf("expected quantity message, got: %s", body)
	}
}

func TestHandleHealth_ReportsSchemaVersion(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "health.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := migrations.Up(ctx, database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	srv := newTestServer(t)
	srv.db = database

	body := decodeEstimate(t, get(t, srv, "/health"))
	if body["status"] != "ok" || body["schema_version"] != float64(1) || body["parts"] != float64(10) {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	get(t, srv, "/api/estimate?quantity=1")

	rr := get(t, srv, "/metrics")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "costboard_estimates_total") {
		t.Fatalf("unexpected metrics response: %d", rr.Code)
	}
}
