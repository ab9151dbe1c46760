package memory

import (
	"time"

	"procure-ai-be/pkg/procurement/conversation"

	"github.com/patrickmn/go-cache"
)

// StateRepository keeps live conversation snapshots in memory so active
// sessions skip the database read on every turn. The database snapshot
// remains the source of truth; entries here are a best-effort fast path.
type StateRepository struct {
	cache *cache.Cache
}

func NewStateRepository() *StateRepository {
	// Idle conversations expire after an hour; purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StateRepository{
		cache: c,
	}
}

func (r *StateRepository) Save(sessionID string, state conversation.State) {
	r.cache.Set(sessionID, state, cache.DefaultExpiration)
}

func (r *StateRepository) Get(sessionID string) (conversation.State, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(conversation.State), true
	}
	return conversation.State{}, false
}

func (r *StateRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
