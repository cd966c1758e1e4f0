package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/erazemk/ogled/internal/builder"
	"github.com/erazemk/ogled/internal/export"
	"github.com/erazemk/ogled/internal/photo"
	"github.com/erazemk/ogled/internal/report"
)

// ReportHandler handles snapshot, report projection and export.
type ReportHandler struct {
	Builder *builder.Builder
	Store   *photo.Store
}

// Snapshot handles GET /api/snapshot. It returns the inspection value
// alongside its transport encoding, ready for a report URL.
func (h *ReportHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	insp := h.Builder.Snapshot()

	encoded, err := report.EncodeSnapshot(insp)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to encode snapshot")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"inspection": insp,
		"d":          encoded,
	})
}

// Report handles GET /api/report?d=..., the report side of the transport
// channel. Missing and malformed payloads map to explicit client errors.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	insp, err := report.DecodeSnapshot(r.URL.Query().Get("d"))
	switch {
	case errors.Is(err, report.ErrNoData):
		jsonError(w, http.StatusBadRequest, "no report data")
		return
	case errors.Is(err, report.ErrInvalidData):
		jsonError(w, http.StatusBadRequest, "invalid report data")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to decode snapshot")
		return
	}

	jsonResponse(w, http.StatusOK, report.Project(insp))
}

// Export handles GET /api/export?d=...&format=html|csv. The HTML document
// resolves every photo before a single byte is written.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	insp, err := report.DecodeSnapshot(r.URL.Query().Get("d"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "missing or invalid report data")
		return
	}
	view := report.Project(insp)

	filename := fmt.Sprintf("inspection-report-%s", time.Now().Format("2006-01-02"))

	switch format := r.URL.Query().Get("format"); format {
	case "", "html":
		doc, err := export.Resolve(r.Context(), h.Store, view)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".html"))
		if err := doc.WriteHTML(w); err != nil {
			// Headers are gone; all that is left is the log line.
			log.Printf("error writing report document: %v", err)
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		if err := export.WriteCSV(w, view); err != nil {
			log.Printf("error writing CSV export: %v", err)
		}
	default:
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("unknown export format %q", format))
	}
}
