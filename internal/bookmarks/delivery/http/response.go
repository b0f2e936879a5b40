package http

import (
	"encoding/json"
	"net/http"

	"markfy/pkg/apierror"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an API error payload with the given status code
func writeError(w http.ResponseWriter, status int, resp *apierror.Response) {
	writeJSON(w, status, resp)
}
