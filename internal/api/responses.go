// Package api defines response types shared across HTTP handlers.
package api

// ErrorResponse is the envelope for every failed request.
// It carries a single free-text message and no machine-readable codes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error builds an ErrorResponse with the given message.
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
