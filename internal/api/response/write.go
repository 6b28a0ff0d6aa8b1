package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Created writes a 201 with no body
func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

// OK writes a 200 with no body
func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
