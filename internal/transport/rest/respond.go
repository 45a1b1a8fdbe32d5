// Package rest contains the HTTP handlers and their request/response types.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// userIDFrom returns the authenticated user ID placed in the context by the
// auth middleware. Handlers behind that middleware can rely on it being set;
// the false case only fires on a wiring mistake.
func userIDFrom(r *http.Request) (uuid.UUID, bool) {
	return ctxutil.UserIDFromCtx(r.Context())
}
