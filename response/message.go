// Package response contains the JSON payloads written by the handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// ClientError is returned with 400 when the number is missing or malformed.
// Number is nil when the parameter is missing or blank, and the raw input otherwise.
type ClientError struct {
	Number *string `json:"number"`
	Error  bool    `json:"error"`
}

// ServerError is returned with 500 when classification fails unexpectedly.
type ServerError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// A struct type that represents a message with a status and body.
// Message has the following properties:
// - Status: The status of the message.
// - Body: The body of the message.
type Message struct {
	Status string `json:"status"`
	Body   string `json:"body,omitempty"`
}

// NewClientError builds a ClientError echoing raw. A nil raw encodes as null.
func NewClientError(raw *string) ClientError {
	return ClientError{Number: raw, Error: true}
}

// NewServerError builds a ServerError carrying message.
func NewServerError(message string) ServerError {
	return ServerError{Error: true, Message: message}
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(res http.ResponseWriter, status int, v any) error {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	return json.NewEncoder(res).Encode(v)
}
