package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erazemk/ogled/internal/model"
	"github.com/erazemk/ogled/internal/report"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	router, err := NewRouter()
	if err != nil {
		t.Fatalf("setting up web router: %v", err)
	}
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func getPage(t *testing.T, url string) string {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(body)
}

func TestBuilderPage(t *testing.T) {
	server := setupTestServer(t)

	html := getPage(t, server.URL+"/")
	for _, want := range []string{"Property Inspection", "Add room", "Kitchen", "Custom Room"} {
		if !strings.Contains(html, want) {
			t.Errorf("builder page missing %q", want)
		}
	}
}

func TestReportPageWithoutData(t *testing.T) {
	server := setupTestServer(t)

	html := getPage(t, server.URL+"/report")
	if !strings.Contains(html, "No report data.") {
		t.Error("missing no-data placeholder")
	}
}

func TestReportPageInvalidData(t *testing.T) {
	server := setupTestServer(t)

	html := getPage(t, server.URL+"/report?d=not-json")
	if !strings.Contains(html, "Invalid report data.") {
		t.Error("missing invalid-data placeholder")
	}
}

func TestReportPageRendersView(t *testing.T) {
	server := setupTestServer(t)

	encoded, err := report.EncodeSnapshot(model.Inspection{
		Timestamp: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Address:   "12 High Street",
		Rooms: []model.Room{
			{Name: "Kitchen", Items: []*model.Item{
				{Label: "Walls", Status: model.ItemStatusDamaged, Notes: "Crack near window"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("encoding snapshot: %v", err)
	}

	html := getPage(t, server.URL+"/report?d="+encoded)
	for _, want := range []string{"Issues Found", "12 High Street", "Kitchen", "Crack near window"} {
		if !strings.Contains(html, want) {
			t.Errorf("report page missing %q", want)
		}
	}
}

func TestReportPageAllGood(t *testing.T) {
	server := setupTestServer(t)

	encoded, err := report.EncodeSnapshot(model.Inspection{})
	if err != nil {
		t.Fatalf("encoding snapshot: %v", err)
	}

	html := getPage(t, server.URL+"/report?d="+encoded)
	if !strings.Contains(html, "All Good") {
		t.Error("missing All Good verdict")
	}
	if !strings.Contains(html, "No issues were reported") {
		t.Error("missing all-good description")
	}
}
