package gatewayhttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coho-labs/actgate/internal/upstream"
)

// writeError maps err to the client-visible error shape and status code
// per the error kinds: *upstream.Error is surfaced with its own status and
// raw body; everything else is a 500 with a plain message. Malformed-request
// failures (400) are written directly by the caller, since by the time an
// error reaches here the request has already been decoded.
func writeError(w http.ResponseWriter, err error) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		writeJSON(w, upErr.Status, map[string]string{
			"error":   "API call failed",
			"details": upErr.Body,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMalformedRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request: " + err.Error()})
}
