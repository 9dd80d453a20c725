package models

import "context"

// MaxProductsShown caps how many products a user context remembers.
const MaxProductsShown = 3

// DefaultUserID is used when a request does not carry a user id.
const DefaultUserID = "anonymous"

// UserContext is the per-user conversation state. One instance per user id,
// created lazily on first request and kept for the process lifetime.
type UserContext struct {
	LastProductsShown []Product `json:"last_products_shown"`
	LastIntent        string    `json:"last_intent,omitempty"`
	History           []string  `json:"conversation_history"`
	Sentiment         string    `json:"sentiment"`
}

// NewUserContext returns a context with default values.
func NewUserContext() *UserContext {
	return &UserContext{
		LastProductsShown: []Product{},
		History:           []string{},
		Sentiment:         "neutral",
	}
}

// Clone returns a deep-enough copy: slices are copied so callers can't
// mutate stored state through a returned snapshot.
func (uc *UserContext) Clone() *UserContext {
	clone := *uc
	clone.LastProductsShown = append([]Product(nil), uc.LastProductsShown...)
	clone.History = append([]string(nil), uc.History...)
	return &clone
}

// ContextStore persists UserContext keyed by user id.
type ContextStore interface {
	// Get retrieves the context for userID, returning a fresh default
	// context if none exists yet. The returned value is a snapshot.
	Get(ctx context.Context, userID string) (*UserContext, error)
	// Update applies fn to the stored context for userID (creating it if
	// missing) and persists the result, returning a snapshot of the updated
	// state. Implementations either serialize updates per user id or
	// document last-write-wins semantics.
	Update(ctx context.Context, userID string, fn func(*UserContext)) (*UserContext, error)
	// Close is called when the application is shutting down.
	Close() error
}
