package server

import (
	"net/http"
	"time"

	"github.com/shopmate/shopmate/config"
	"github.com/shopmate/shopmate/internal"
	"github.com/shopmate/shopmate/pkg/models"
)

var log = internal.GetLogger()

// PostAssistantHandler godoc
//
//	@Summary		Process a single assistant query
//	@Description	detect intent, extract entities, and generate a response
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.QueryRequest	true	"Query payload"
//	@Success		200		{object}	models.Response
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/assistant [post]
func PostAssistantHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.QueryRequest
		// A malformed or empty body degrades to an empty query rather than
		// an error; the pipeline never rejects input up front.
		if err := decodeJSON(r, &payload); err != nil {
			log.Debugf("assistant request body not decoded: %v", err)
			payload = models.QueryRequest{}
		}

		response, err := appState.Assistant.ProcessQuery(r.Context(), &payload)
		if err != nil {
			renderProcessingError(w, err)
			return
		}
		response.Timestamp = time.Now().Format(time.RFC3339)

		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, response); err != nil {
			log.Errorf("error encoding assistant response: %v", err)
		}
	}
}

// GetHealthHandler godoc
//
//	@Summary		Health check
//	@Description	returns a fixed status payload
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	models.HealthCheckResponse
//	@Router			/api/health [get]
func GetHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, models.HealthCheckResponse{
			Status:  "ok",
			Version: config.VersionString,
		}); err != nil {
			log.Errorf("error encoding health response: %v", err)
		}
	}
}
