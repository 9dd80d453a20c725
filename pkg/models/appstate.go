package models

import (
	"github.com/shopmate/shopmate/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Assistant    Assistant
	ContextStore ContextStore
	Config       *config.Config
}
