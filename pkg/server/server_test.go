package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/httputil"
)

func newTestServer(d dashboard.Data) *Server {
	return New(nil, d, log.New(io.Discard))
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(dashboard.Sample()), "/healthz")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("GET /healthz = %d %s", rec.Code, rec.Body)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestSummary(t *testing.T) {
	rec := get(t, newTestServer(dashboard.Sample()), "/api/summary")
	var sum dashboard.Summary
	if err := json.NewDecoder(rec.Body).Decode(&sum); err != nil {
		t.Fatal(err)
	}
	if sum.Centers != 14 || sum.TotalYouth != 41545 || sum.TotalAlerts != 15 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestViews(t *testing.T) {
	rec := get(t, newTestServer(dashboard.Sample()), "/api/views")
	var views []viewInfo
	if err := json.NewDecoder(rec.Body).Decode(&views); err != nil {
		t.Fatal(err)
	}
	if len(views) != len(dashboard.Tabs) {
		t.Fatalf("len(views) = %d, want %d", len(views), len(dashboard.Tabs))
	}
	if views[0].Name != "overview" || views[0].Label != "Regional Overview" {
		t.Errorf("views[0] = %+v", views[0])
	}
	if _, ok := views[0].Artifacts["html"]; ok {
		t.Error("overview advertises an html artifact")
	}
	if got := views[2].Artifacts["svg"]; got != "/views/compare/svg" {
		t.Errorf("compare svg link = %q", got)
	}
}

func TestArtifact(t *testing.T) {
	s := newTestServer(dashboard.Sample())
	tests := []struct {
		target      string
		status      int
		contentType string
		contains    string
	}{
		{"/views/compare/svg", http.StatusOK, "image/svg+xml", "Communicare: 16%"},
		{"/views/trends/json", http.StatusOK, "application/json", `"primitives"`},
		{"/views/domains/html", http.StatusOK, "text/html; charset=utf-8", "echarts"},
		{"/views/overview/svg?selected=9", http.StatusOK, "image/svg+xml", "Mountain Comprehensive: Detailed View"},
		{"/views/overview/html", http.StatusNotFound, "application/json", "no html rendering"},
		{"/views/overview/svg?selected=99", http.StatusNotFound, "application/json", "NOT_FOUND"},
		{"/views/bogus/svg", http.StatusBadRequest, "application/json", "INVALID_VIEW"},
		{"/views/compare/gif", http.StatusBadRequest, "application/json", "INVALID_FORMAT"},
		{"/views/compare/svg?width=wide", http.StatusBadRequest, "application/json", "width must be a number"},
		{"/views/compare/svg?theme=neon", http.StatusBadRequest, "application/json", "INVALID_THEME"},
		{"/views/compare/svg?width=-5", http.StatusUnprocessableEntity, "application/json", "INVALID_CONFIG"},
		{"/views/compare/png?width=1e9&height=1e9", http.StatusUnprocessableEntity, "application/json", "INVALID_CONFIG"},
		{"/views/compare/svg?width=1e300", http.StatusUnprocessableEntity, "application/json", "INVALID_CONFIG"},
		{"/views/compare/svg?height=NaN", http.StatusUnprocessableEntity, "application/json", "INVALID_CONFIG"},
		{"/views/compare/png?scale=10", http.StatusUnprocessableEntity, "application/json", "INVALID_CONFIG"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestArtifactLayoutError(t *testing.T) {
	d := dashboard.Sample()
	for i := range d.Outcome {
		d.Outcome[i].Count = 0
	}
	rec := get(t, newTestServer(d), "/views/outcomes/svg")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body httputil.ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Code != cerrors.ErrCodeEmptyTotal || body.Error == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestPage(t *testing.T) {
	s := newTestServer(dashboard.Sample())

	rec := get(t, s, "/")
	body := rec.Body.String()
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	for _, want := range []string{
		`<a href="/?view=overview" class="active">Regional Overview</a>`,
		"41,545",
		"All 14 CMHCs</h2>",
		"<table>",
		"3 active alerts",
		"<svg",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("GET / missing %q", want)
		}
	}

	rec = get(t, s, "/?view=complexity&theme=light")
	body = rec.Body.String()
	if !strings.Contains(body, "Average Complexity Score by Center</h2>") || !strings.Contains(body, "#ffffff") {
		t.Errorf("GET /?view=complexity missing heading or light theme")
	}
	if !strings.Contains(body, "Eastern KY averages <strong>2.70</strong>") {
		t.Error("complexity description missing Eastern comparison")
	}

	if rec := get(t, s, "/?view=nope"); rec.Code != http.StatusBadRequest {
		t.Errorf("GET /?view=nope = %d, want 400", rec.Code)
	}
}

func TestPageLayoutPlaceholder(t *testing.T) {
	d := dashboard.Sample()
	for i := range d.Outcome {
		d.Outcome[i].Count = 0
	}
	rec := get(t, newTestServer(d), "/?view=outcomes")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `class="placeholder"`) || strings.Contains(body, "<svg") {
		t.Error("page does not show a placeholder in place of the chart")
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{41545, "41,545"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.n); got != tt.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	s := newTestServer(dashboard.Sample())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
