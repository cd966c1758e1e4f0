// Package web serves the builder and report pages. It is a thin layer:
// all inspection state changes go through the JSON API, and the report
// page only turns a transport payload into rendered HTML.
package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/erazemk/ogled/internal/model"
	"github.com/erazemk/ogled/internal/report"
	webembed "github.com/erazemk/ogled/web"
)

// Server holds all dependencies for page handlers.
type Server struct {
	Templates *Templates
}

// NewRouter creates the web page router with all page routes registered.
func NewRouter() (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{Templates: templates}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.BuilderPage)
	mux.HandleFunc("GET /report", s.ReportPage)

	return mux, nil
}

// roomTypeOption is one entry of the room-type picker.
type roomTypeOption struct {
	Type  model.RoomType
	Label string
}

// builderData is the data for the builder page.
type builderData struct {
	Title     string
	RoomTypes []roomTypeOption
}

// BuilderPage handles GET /.
func (s *Server) BuilderPage(w http.ResponseWriter, r *http.Request) {
	data := builderData{Title: "Property Inspection"}
	for _, t := range model.RoomTypes() {
		data.RoomTypes = append(data.RoomTypes, roomTypeOption{Type: t, Label: model.RoomLabel(t)})
	}
	s.Templates.Render(w, "builder.html", data)
}

// reportData is the data for the report page. Message, when set, replaces
// the report body with a placeholder.
type reportData struct {
	Title       string
	Message     string
	View        report.View
	DownloadURL template.URL
	CSVURL      template.URL
}

// ReportPage handles GET /report?d=... and is tolerant of a missing or
// malformed payload, per the transport contract.
func (s *Server) ReportPage(w http.ResponseWriter, r *http.Request) {
	data := reportData{Title: "Inspection Report"}

	insp, err := report.DecodeSnapshot(r.URL.Query().Get("d"))
	switch {
	case errors.Is(err, report.ErrNoData):
		data.Message = "No report data."
	case errors.Is(err, report.ErrInvalidData):
		data.Message = "Invalid report data."
	case err != nil:
		data.Message = "Invalid report data."
	default:
		data.View = report.Project(insp)
		if encoded, err := report.EncodeSnapshot(insp); err == nil {
			data.DownloadURL = template.URL("/api/export?d=" + encoded)
			data.CSVURL = template.URL("/api/export?d=" + encoded + "&format=csv")
		}
	}

	s.Templates.Render(w, "report.html", data)
}
