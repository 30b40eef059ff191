package utils

import "net/http"

// APIError is an error with the HTTP status it should be reported under.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError -> malformed or missing input (400).
func ValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NotFoundError -> a referenced reservation or table does not exist (404).
func NotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// ConflictError -> an occupancy or status rule was violated (400).
func ConflictError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// PersistenceError -> a store-level failure (500).
func PersistenceError(err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: err.Error()}
}
