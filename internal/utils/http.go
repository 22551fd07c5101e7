package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a JSON Content-Type. If marshaling fails, it responds with 500 and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]any{"data": user}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an error body in the API's envelope shape:
// {"message": ..., "errors": {field: [...]}}. A nil fieldErrors map is
// omitted.
func WriteError(w http.ResponseWriter, statusCode int, message string, fieldErrors map[string][]string) (int, error) {
	body := map[string]any{"message": message}
	if fieldErrors != nil {
		body["errors"] = fieldErrors
	}
	return WriteJSON(w, body, statusCode)
}
