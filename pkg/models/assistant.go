package models

import "context"

// QueryRequest is the payload for a single assistant query. All fields are
// optional: a missing query is treated as the empty string and a missing
// user id maps to the anonymous user.
type QueryRequest struct {
	Query    string     `json:"query"`
	Products []Product  `json:"products,omitempty"`
	Cart     []CartItem `json:"cart,omitempty"`
	UserID   string     `json:"user_id,omitempty"`
}

// Response is the assistant's answer to a single query. Action is an opaque
// "verb:argument" directive for the caller's UI layer; the core never
// executes it.
type Response struct {
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp string    `json:"timestamp,omitempty"`
	Product   *Product  `json:"product,omitempty"`
	Products  []Product `json:"products,omitempty"`
	Action    string    `json:"action,omitempty"`
}

// ErrorResponse is the only error shape surfaced to callers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthCheckResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Assistant runs the full query pipeline: intent detection, entity
// extraction, and response generation with the context store side effect.
// Business-level misses (product not found, unknown intent, empty cart) are
// successful responses; the error return is reserved for internal faults.
type Assistant interface {
	ProcessQuery(ctx context.Context, req *QueryRequest) (*Response, error)
}
