package models

import "encoding/json"

// Envelope is the single response contract of the API
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// RawEnvelope is the client side view of Envelope with the payload left undecoded
type RawEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// DeleteResponse is the payload of a successful delete
type DeleteResponse struct {
	ID string `json:"id"`
}
