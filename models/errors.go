package models

import (
	"errors"
	"net/http"
)

// APIError is an error whose message is safe to show to the client.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

const GenericErrorMessage = "Something went wrong, please try again later"

var (
	ErrInvalidQuery       = &APIError{Status: http.StatusBadRequest, Message: "Invalid query: sort must be name or price and direction must be asc or desc"}
	ErrProductNotFound    = &APIError{Status: http.StatusBadRequest, Message: "Product not found"}
	ErrMissingFields      = &APIError{Status: http.StatusBadRequest, Message: "Missing required fields"}
	ErrInvalidEmail       = &APIError{Status: http.StatusBadRequest, Message: "Please provide a valid email address"}
	ErrDuplicateFeedback  = &APIError{Status: http.StatusConflict, Message: "We already have a message from this email address"}
	ErrUnauthorized       = &APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrInvalidCredentials = &APIError{Status: http.StatusUnauthorized, Message: "Invalid username or password"}
)

// StatusOf maps err to the status code and the message the client may see.
// Anything that is not an APIError is a server fault.
func StatusOf(err error) (int, string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}
	return http.StatusInternalServerError, GenericErrorMessage
}
