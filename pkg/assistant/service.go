package assistant

import (
	"context"

	"github.com/shopmate/shopmate/internal"
	"github.com/shopmate/shopmate/pkg/models"
	"github.com/shopmate/shopmate/pkg/nlp"
)

var log = internal.GetLogger()

// Force compiler to validate that Service implements the Assistant interface.
var _ models.Assistant = &Service{}

// Service runs the assistant pipeline against an injected context store.
// Use NewService to correctly initialize it.
type Service struct {
	store      models.ContextStore
	normalizer *nlp.Normalizer
	sentiment  *nlp.SentimentScorer
	selector   Selector
}

func NewService(store models.ContextStore, selector Selector) (*Service, error) {
	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:      store,
		normalizer: normalizer,
		sentiment:  nlp.NewSentimentScorer(),
		selector:   selector,
	}, nil
}

// ProcessQuery runs detection, extraction, and response generation for a
// single request.
func (s *Service) ProcessQuery(
	ctx context.Context,
	req *models.QueryRequest,
) (*models.Response, error) {
	userID := req.UserID
	if userID == "" {
		userID = models.DefaultUserID
	}

	intent := DetectIntent(req.Query)
	entities := ExtractEntities(req.Query, intent)

	log.Debugf(
		"query %q: intent=%s entities=%v tokens=%v",
		req.Query, intent, entities, s.normalizer.Tokens(req.Query),
	)

	return s.Respond(ctx, intent, entities, userID, req.Products, req.Cart)
}
