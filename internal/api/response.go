package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// jsonResponse writes data as a JSON body with the given status code.
// A nil data value sends the status line and headers only.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding %T response: %v", data, err)
	}
}

// jsonError writes an error message in the {"error": ...} shape the
// builder UI expects.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into dst, closing the body.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
