package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBody bounds request bodies decoded by [DecodeJSON].
const maxJSONBody = 1 << 20

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. When marshaling fails it answers 500.
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

// DecodeJSON decodes a single JSON object from the request body into v.
// Unknown fields and trailing data are rejected.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("error decoding JSON body: trailing data")
	}
	return nil
}
