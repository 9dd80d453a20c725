package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopmate/shopmate/pkg/models"
)

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderProcessingError logs an internal fault and writes the single
// generic error response the API exposes.
func renderProcessingError(w http.ResponseWriter, err error) {
	log.Errorf("error processing query: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = encodeJSON(w, models.ErrorResponse{
		Error:   "Failed to process request",
		Message: "I encountered an error processing your request. Please try again.",
	})
}
