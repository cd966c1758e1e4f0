package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/erazemk/ogled/internal/db"
	"github.com/erazemk/ogled/internal/model"
	"github.com/erazemk/ogled/internal/photo"
	"github.com/erazemk/ogled/internal/report"
)

func testView() report.View {
	return report.Project(model.Inspection{
		Timestamp: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Address:   "12 High Street",
		Rooms: []model.Room{
			{Name: "Kitchen", Items: []*model.Item{
				{Label: "Walls", Status: model.ItemStatusDamaged, Notes: "Crack near window", PhotoIDs: []string{"p1"}},
				{Label: "Sink", Status: model.ItemStatusOK},
			}},
		},
	})
}

func TestResolveEmbedsPhotos(t *testing.T) {
	store := &photo.Store{DB: db.NewTestDB(t)}
	ctx := context.Background()
	store.Save(ctx, "p1", []byte{0xff, 0xd8, 0xff}, "image/jpeg")

	doc, err := Resolve(ctx, store, testView())
	if err != nil {
		t.Fatalf("resolving: %v", err)
	}
	url, ok := doc.Photos["p1"]
	if !ok {
		t.Fatal("photo p1 not resolved")
	}
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Errorf("unexpected data URL: %s", url)
	}
}

func TestResolveFailsOnMissingPhoto(t *testing.T) {
	store := &photo.Store{DB: db.NewTestDB(t)}

	_, err := Resolve(context.Background(), store, testView())
	if !errors.Is(err, ErrPhotoMissing) {
		t.Errorf("expected ErrPhotoMissing, got %v", err)
	}
}

func TestWriteHTMLDocument(t *testing.T) {
	store := &photo.Store{DB: db.NewTestDB(t)}
	ctx := context.Background()
	store.Save(ctx, "p1", []byte{0xff, 0xd8, 0xff}, "image/jpeg")

	doc, err := Resolve(ctx, store, testView())
	if err != nil {
		t.Fatalf("resolving: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.WriteHTML(&buf); err != nil {
		t.Fatalf("rendering: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"Issues Found",
		"12 High Street",
		"Kitchen",
		"Walls",
		"Crack near window",
		"data:image/jpeg;base64,",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(html, "Sink") {
		t.Error("OK item leaked into the report document")
	}
	if strings.Contains(html, "Occupant / Tenant") {
		t.Error("empty tenant field rendered")
	}
}

func TestWriteHTMLAllGood(t *testing.T) {
	doc := &Document{View: report.Project(model.Inspection{})}

	var buf bytes.Buffer
	if err := doc.WriteHTML(&buf); err != nil {
		t.Fatalf("rendering: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "All Good") {
		t.Error("missing All Good verdict")
	}
	if !strings.Contains(html, "No issues were reported") {
		t.Error("missing all-good description")
	}
	if !strings.Contains(html, "Not recorded") {
		t.Error("missing timestamp fallback")
	}
}

func TestWriteHTMLEmptyNotesFallback(t *testing.T) {
	view := report.Project(model.Inspection{
		Rooms: []model.Room{
			{Name: "Hallway", Items: []*model.Item{
				{Label: "Lighting", Status: model.ItemStatusDamaged},
			}},
		},
	})
	doc := &Document{View: view}

	var buf bytes.Buffer
	if err := doc.WriteHTML(&buf); err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if !strings.Contains(buf.String(), "Damage reported") {
		t.Error("missing empty-notes fallback text")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testView()); err != nil {
		t.Fatalf("writing CSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	want := []string{"Kitchen", "Walls", "Damaged", "Crack near window", "1"}
	for i, cell := range want {
		if rows[1][i] != cell {
			t.Errorf("cell %d: expected %q, got %q", i, cell, rows[1][i])
		}
	}
}
