// Package contextstore provides the pluggable per-user context storage:
// an in-memory store for tests and single-node deployments, and a redis
// store for production.
package contextstore

import (
	"fmt"

	"github.com/shopmate/shopmate/internal"
)

var log = internal.GetLogger()

type StoreError struct {
	message       string
	originalError error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("context store error: %s (original error: %v)", e.message, e.originalError)
}

func NewStoreError(message string, originalError error) *StoreError {
	return &StoreError{message: message, originalError: originalError}
}
