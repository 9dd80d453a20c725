package contextstore

import (
	"context"
	"sync"

	"github.com/shopmate/shopmate/pkg/models"
)

// Force compiler to validate that MemoryStore implements the ContextStore interface.
var _ models.ContextStore = &MemoryStore{}

// MemoryStore keeps user contexts in process memory for the process
// lifetime. Read-modify-write is serialized per user id, so concurrent
// requests for the same user never interleave their updates. Contexts are
// never evicted; unbounded growth is an accepted limitation.
type MemoryStore struct {
	contexts sync.Map // userID -> *models.UserContext
	locks    sync.Map // userID -> *sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) userLock(userID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*models.UserContext, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if v, ok := s.contexts.Load(userID); ok {
		return v.(*models.UserContext).Clone(), nil
	}
	return models.NewUserContext(), nil
}

func (s *MemoryStore) Update(
	_ context.Context,
	userID string,
	fn func(*models.UserContext),
) (*models.UserContext, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	uc := models.NewUserContext()
	if v, ok := s.contexts.Load(userID); ok {
		uc = v.(*models.UserContext)
	}
	fn(uc)
	s.contexts.Store(userID, uc)
	return uc.Clone(), nil
}

func (s *MemoryStore) Close() error {
	return nil
}
