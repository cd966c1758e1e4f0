package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/erazemk/ogled/internal/builder"
)

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond))
	})
}

// commandError maps a builder command error to an HTTP response. Store
// failures keep their message so the user sees what to retry.
func commandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, builder.ErrRoomNotFound), errors.Is(err, builder.ErrItemNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, builder.ErrUnknownRoomType),
		errors.Is(err, builder.ErrInvalidStatus),
		errors.Is(err, builder.ErrItemNotCustom):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, builder.ErrItemNotDamaged):
		jsonError(w, http.StatusConflict, err.Error())
	default:
		jsonError(w, http.StatusInternalServerError, err.Error())
	}
}
