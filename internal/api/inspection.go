package api

import (
	"net/http"
	"strconv"

	"github.com/erazemk/ogled/internal/builder"
	"github.com/erazemk/ogled/internal/model"
)

// InspectionHandler handles the session-editing endpoints.
type InspectionHandler struct {
	Builder *builder.Builder
}

type detailsRequest struct {
	Address  string `json:"address"`
	Tenant   string `json:"tenant"`
	Landlord string `json:"landlord"`
	Notes    string `json:"notes"`
}

type furnishedRequest struct {
	Furnished bool `json:"furnished"`
}

type addRoomRequest struct {
	Type model.RoomType `json:"type"`
}

type renameRoomRequest struct {
	Name string `json:"name"`
}

type addItemRequest struct {
	Label string `json:"label"`
}

type statusRequest struct {
	Status model.ItemStatus `json:"status"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// Get handles GET /api/inspection.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	rooms := h.Builder.Rooms()
	if rooms == nil {
		rooms = []*model.Room{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"furnished": h.Builder.Furnished(),
		"rooms":     rooms,
	})
}

// SetDetails handles PUT /api/inspection/details.
func (h *InspectionHandler) SetDetails(w http.ResponseWriter, r *http.Request) {
	var req detailsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.Builder.SetDetails(req.Address, req.Tenant, req.Landlord, req.Notes)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "details updated"})
}

// SetFurnished handles PUT /api/inspection/furnished.
func (h *InspectionHandler) SetFurnished(w http.ResponseWriter, r *http.Request) {
	var req furnishedRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Builder.SetFurnished(r.Context(), req.Furnished); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"furnished": req.Furnished})
}

// Reset handles POST /api/inspection/reset.
func (h *InspectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Builder.Reset(r.Context()); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "session reset"})
}

// RoomTypes handles GET /api/room-types.
func (h *InspectionHandler) RoomTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]map[string]any, 0, len(model.RoomTypes()))
	for _, t := range model.RoomTypes() {
		types = append(types, map[string]any{
			"type":  t,
			"label": model.RoomLabel(t),
		})
	}
	jsonResponse(w, http.StatusOK, types)
}

// AddRoom handles POST /api/rooms.
func (h *InspectionHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req addRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.Builder.AddRoom(req.Type)
	if err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, room)
}

// RenameRoom handles PUT /api/rooms/{id}.
func (h *InspectionHandler) RenameRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req renameRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Builder.RenameRoom(id, req.Name); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "room renamed"})
}

// RemoveRoom handles DELETE /api/rooms/{id}.
func (h *InspectionHandler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := h.Builder.RemoveRoom(r.Context(), id); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "room removed"})
}

// AddItem handles POST /api/rooms/{id}/items.
func (h *InspectionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Builder.AddCustomItem(id, req.Label)
	if err != nil {
		commandError(w, err)
		return
	}
	if item == nil {
		// Blank labels are ignored, not rejected.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// RemoveItem handles DELETE /api/rooms/{roomID}/items/{itemID}.
func (h *InspectionHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	roomID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}

	if err := h.Builder.RemoveItem(r.Context(), roomID, itemID); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item removed"})
}

// SetStatus handles PUT /api/rooms/{roomID}/items/{itemID}/status.
func (h *InspectionHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	roomID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Builder.SetItemStatus(r.Context(), roomID, itemID, req.Status); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

// SetNotes handles PUT /api/rooms/{roomID}/items/{itemID}/notes.
func (h *InspectionHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	roomID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}

	var req notesRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Builder.SetItemNotes(roomID, itemID, req.Notes); err != nil {
		commandError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "notes updated"})
}

// itemPath parses the room and item ids from the request path.
func itemPath(w http.ResponseWriter, r *http.Request) (roomID, itemID int64, ok bool) {
	roomID, err := strconv.ParseInt(r.PathValue("roomID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid room id")
		return 0, 0, false
	}
	itemID, err = strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return 0, 0, false
	}
	return roomID, itemID, true
}
