package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ai-strategy-agent-be/pkg/agent/state"
)

// ConversationRepository keeps live conversation state in process memory.
// Evicted or restarted conversations are rebuilt from the transcript and the
// remote store, so the cache is purely a warm path.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Idle conversations expire after an hour; expired items are purged every
	// ten minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(conv *state.Conversation) {
	r.cache.Set(conv.ID.String(), conv, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(sessionID uuid.UUID) (*state.Conversation, bool) {
	if x, found := r.cache.Get(sessionID.String()); found {
		return x.(*state.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(sessionID uuid.UUID) {
	r.cache.Delete(sessionID.String())
}
