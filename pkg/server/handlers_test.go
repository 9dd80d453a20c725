package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmate/shopmate/config"
	"github.com/shopmate/shopmate/pkg/assistant"
	"github.com/shopmate/shopmate/pkg/auth"
	"github.com/shopmate/shopmate/pkg/contextstore"
	"github.com/shopmate/shopmate/pkg/models"
	"github.com/shopmate/shopmate/pkg/testutils"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 5000
	return cfg
}

func newTestAppState(t *testing.T, cfg *config.Config) *models.AppState {
	t.Helper()
	store := contextstore.NewMemoryStore()
	svc, err := assistant.NewService(store, assistant.NewRandSelector(1))
	require.NoError(t, err)
	return &models.AppState{
		Assistant:    svc,
		ContextStore: store,
		Config:       cfg,
	}
}

func postAssistant(t *testing.T, router http.Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostAssistantHandler(t *testing.T) {
	router := setupRouter(newTestAppState(t, testConfig()))

	payload, err := json.Marshal(models.QueryRequest{
		Query:    "What's in my cart?",
		Cart:     []models.CartItem{{Price: 10.00, Quantity: 2}},
		UserID:   testutils.RandomUserID(),
		Products: testutils.TestProducts,
	})
	require.NoError(t, err)

	w := postAssistant(t, router, payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cart_status", resp.Type)
	assert.Equal(t, "suggestCheckout", resp.Action)
	assert.Equal(t, "You have 2 items in your cart with a total of $20.00. Would you like to checkout or continue shopping?", resp.Message)

	_, err = time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err, "timestamp should be RFC3339")
}

func TestPostAssistantHandlerMalformedBody(t *testing.T) {
	router := setupRouter(newTestAppState(t, testConfig()))

	w := postAssistant(t, router, []byte("{not json"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp.Type)
	assert.NotEmpty(t, resp.Message)
}

func TestPostAssistantHandlerEmptyBody(t *testing.T) {
	router := setupRouter(newTestAppState(t, testConfig()))

	w := postAssistant(t, router, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp.Type)
}

type failingAssistant struct{}

func (failingAssistant) ProcessQuery(context.Context, *models.QueryRequest) (*models.Response, error) {
	return nil, errors.New("boom")
}

func TestPostAssistantHandlerInternalError(t *testing.T) {
	appState := newTestAppState(t, testConfig())
	appState.Assistant = failingAssistant{}
	router := setupRouter(appState)

	w := postAssistant(t, router, []byte(`{"query":"hello"}`))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to process request", resp.Error)
	assert.Equal(t, "I encountered an error processing your request. Please try again.", resp.Message)
}

func TestGetHealthHandler(t *testing.T) {
	router := setupRouter(newTestAppState(t, testConfig()))

	// Health must be idempotent.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.HealthCheckResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, config.VersionString, resp.Version)
	}
}

func TestHeartbeat(t *testing.T) {
	router := setupRouter(newTestAppState(t, testConfig()))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendVersionHeader(t *testing.T) {
	router := setupRouter(newTestAppState(t, testConfig()))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, config.VersionString, w.Header().Get(versionHeader))
}

func TestAuthRequired(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Required = true
	cfg.Auth.Secret = "test-secret"
	router := setupRouter(newTestAppState(t, cfg))

	t.Run("missing token", func(t *testing.T) {
		w := postAssistant(t, router, []byte(`{"query":"hello"}`))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewReader([]byte(`{"query":"hello"}`)))
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewReader([]byte(`{"query":"hello"}`)))
		req.Header.Set("Authorization", "Bearer "+auth.GenerateJWT(cfg))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	router := setupRouter(newTestAppState(t, cfg))

	req := httptest.NewRequest(http.MethodOptions, "/api/assistant", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
