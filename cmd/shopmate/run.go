package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopmate/shopmate/config"
	"github.com/shopmate/shopmate/pkg/assistant"
	"github.com/shopmate/shopmate/pkg/auth"
	"github.com/shopmate/shopmate/pkg/contextstore"
	"github.com/shopmate/shopmate/pkg/models"
	"github.com/shopmate/shopmate/pkg/server"
)

const (
	StoreTypeMemory = "memory"
	StoreTypeRedis  = "redis"
)

// run is the entrypoint for the shopmate server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring shopmate: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting shopmate server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV,
// initializes the context store, and wires the assistant pipeline
func NewAppState(cfg *config.Config) *models.AppState {
	store := initializeContextStore(cfg)

	svc, err := assistant.NewService(store, assistant.NewRandSelector(time.Now().UnixNano()))
	if err != nil {
		log.Fatalf("Failed to initialize assistant: %v", err)
	}

	appState := &models.AppState{
		Assistant:    svc,
		ContextStore: store,
		Config:       cfg,
	}

	setupSignalHandler(appState)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %v", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// initializeContextStore initializes the context store based on the config file / ENV
func initializeContextStore(cfg *config.Config) models.ContextStore {
	switch cfg.Store.Type {
	case "", StoreTypeMemory:
		log.Info("Using context store: memory")
		return contextstore.NewMemoryStore()
	case StoreTypeRedis:
		store, err := contextstore.NewRedisStore(cfg.Store.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		log.Info("Using context store: redis")
		return store
	default:
		log.Fatalf("store.type (%s) is not supported", cfg.Store.Type)
		return nil
	}
}

// setupSignalHandler sets up a signal handler to close the ContextStore connection on termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		if err := appState.ContextStore.Close(); err != nil {
			log.Errorf("Error closing ContextStore connection: %v", err)
		}
		os.Exit(0)
	}()
}
