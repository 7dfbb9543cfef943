package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBodyBytes bounds request bodies accepted by ReadJSON.
const maxJSONBodyBytes = 1 << 20

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// It sets "Content-Type: application/json". If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error.
//
//	WriteJSON(w, models.SubmitResponse{Success: true, Result: "started"}, http.StatusOK)
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

// ReadJSON decodes a JSON request body into dst. An empty body leaves dst
// untouched.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes)).Decode(dst)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}
