// Package export turns a report view into downloadable artifacts. The
// HTML document embeds every photo as a data URL: resolution against
// the photo store happens here, before handoff, so an exported document
// never contains unresolved image references.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/erazemk/ogled/internal/imaging"
	"github.com/erazemk/ogled/internal/report"
)

// PhotoGetter is the read side of the photo store.
type PhotoGetter interface {
	Get(ctx context.Context, id string) ([]byte, string, error)
}

// Document is a report view with every referenced photo resolved to an
// embeddable data URL.
type Document struct {
	View   report.View
	Photos map[string]string
}

// Resolve fetches every photo the view references and converts it to a
// data URL. A missing or unreadable photo fails the whole resolve;
// exporting with placeholder images is worse than not exporting.
func Resolve(ctx context.Context, photos PhotoGetter, view report.View) (*Document, error) {
	doc := &Document{View: view, Photos: make(map[string]string)}

	for _, room := range view.DamagedRooms {
		for _, item := range room.Items {
			for _, id := range item.PhotoIDs {
				if _, ok := doc.Photos[id]; ok {
					continue
				}
				data, mime, err := photos.Get(ctx, id)
				if err != nil {
					return nil, fmt.Errorf("resolving photo %s: %w", id, err)
				}
				if data == nil {
					return nil, fmt.Errorf("resolving photo %s: %w", id, ErrPhotoMissing)
				}
				doc.Photos[id] = imaging.DataURL(data, mime)
			}
		}
	}
	return doc, nil
}

// WriteCSV writes a damage summary as CSV: one row per damaged item.
func WriteCSV(w io.Writer, view report.View) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Room", "Item", "Status", "Notes", "Photos"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, room := range view.DamagedRooms {
		for _, item := range room.Items {
			row := []string{room.Name, item.Label, string(item.Status), item.Notes, strconv.Itoa(len(item.PhotoIDs))}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
