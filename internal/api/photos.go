package api

import (
	"net/http"

	"github.com/erazemk/ogled/internal/builder"
	"github.com/erazemk/ogled/internal/imaging"
	"github.com/erazemk/ogled/internal/photo"
)

// PhotosHandler handles photo upload, fetch and delete.
type PhotosHandler struct {
	Builder       *builder.Builder
	Store         *photo.Store
	MaxPhotoBytes int64
}

// Upload handles POST /api/rooms/{roomID}/items/{itemID}/photos.
func (h *PhotosHandler) Upload(w http.ResponseWriter, r *http.Request) {
	roomID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxPhotoBytes)

	if err := r.ParseMultipartForm(h.MaxPhotoBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	// Sniffs the real format and downscales before anything is stored.
	normalized, err := imaging.Normalize(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Builder.AddPhoto(r.Context(), roomID, itemID, normalized.Data, normalized.MIME)
	if err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// Delete handles DELETE /api/rooms/{roomID}/items/{itemID}/photos/{photoID}.
func (h *PhotosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}

	if err := h.Builder.RemovePhoto(r.Context(), roomID, itemID, r.PathValue("photoID")); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo removed"})
}

// Get handles GET /api/photos/{id}.
func (h *PhotosHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.Store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "photo not found")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
