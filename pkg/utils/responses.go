package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// ResponseJSON writes the payload as-is with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorBody{Error: message})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, ErrorBody{Error: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, ErrorBody{Error: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorBody{Error: message})
}
