package api

import (
	"net/http"

	"github.com/erazemk/ogled/internal/builder"
	"github.com/erazemk/ogled/internal/photo"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(b *builder.Builder, store *photo.Store, maxPhotoBytes int64) http.Handler {
	mux := http.NewServeMux()

	inspection := &InspectionHandler{Builder: b}
	photos := &PhotosHandler{Builder: b, Store: store, MaxPhotoBytes: maxPhotoBytes}
	reports := &ReportHandler{Builder: b, Store: store}

	// Session state and details.
	mux.HandleFunc("GET /api/inspection", inspection.Get)
	mux.HandleFunc("PUT /api/inspection/details", inspection.SetDetails)
	mux.HandleFunc("PUT /api/inspection/furnished", inspection.SetFurnished)
	mux.HandleFunc("POST /api/inspection/reset", inspection.Reset)
	mux.HandleFunc("GET /api/room-types", inspection.RoomTypes)

	// Rooms and items.
	mux.HandleFunc("POST /api/rooms", inspection.AddRoom)
	mux.HandleFunc("PUT /api/rooms/{id}", inspection.RenameRoom)
	mux.HandleFunc("DELETE /api/rooms/{id}", inspection.RemoveRoom)
	mux.HandleFunc("POST /api/rooms/{id}/items", inspection.AddItem)
	mux.HandleFunc("DELETE /api/rooms/{roomID}/items/{itemID}", inspection.RemoveItem)
	mux.HandleFunc("PUT /api/rooms/{roomID}/items/{itemID}/status", inspection.SetStatus)
	mux.HandleFunc("PUT /api/rooms/{roomID}/items/{itemID}/notes", inspection.SetNotes)

	// Photos.
	mux.HandleFunc("POST /api/rooms/{roomID}/items/{itemID}/photos", photos.Upload)
	mux.HandleFunc("DELETE /api/rooms/{roomID}/items/{itemID}/photos/{photoID}", photos.Delete)
	mux.HandleFunc("GET /api/photos/{id}", photos.Get)

	// Report side.
	mux.HandleFunc("GET /api/snapshot", reports.Snapshot)
	mux.HandleFunc("GET /api/report", reports.Report)
	mux.HandleFunc("GET /api/export", reports.Export)

	return mux
}
