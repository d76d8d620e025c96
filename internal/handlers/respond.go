package handlers

import (
	"encoding/json"
	"net/http"
)

// Helpers for the plain (non-huma) handlers: multipart endpoints write JSON
// by hand.

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
