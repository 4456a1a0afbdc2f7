package memory

import (
	"sync"
	"time"

	"neurostudy-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultSessionTTL     = 1 * time.Hour
	defaultCleanupCadence = 10 * time.Minute
)

// SessionRepository keeps chat turns in memory only. Sessions expire after
// the TTL and are gone on restart.
type SessionRepository struct {
	cache *cache.Cache
	mu    sync.Mutex // serializes read-modify-write in AppendTurns
}

func NewSessionRepository() *SessionRepository {
	return NewSessionRepositoryWithTTL(DefaultSessionTTL)
}

func NewSessionRepositoryWithTTL(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, defaultCleanupCadence),
	}
}

func (r *SessionRepository) Save(session *entity.ChatSession) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

// Get returns a copy so callers cannot race with AppendTurns.
func (r *SessionRepository) Get(sessionID string) (*entity.ChatSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	session := x.(*entity.ChatSession)
	turns := make([]entity.ChatTurn, len(session.Turns))
	copy(turns, session.Turns)
	return &entity.ChatSession{Id: session.Id, Subject: session.Subject, Turns: turns}, true
}

// AppendTurns adds turns to the session, creating it when absent, and
// refreshes its expiry.
func (r *SessionRepository) AppendTurns(sessionID string, subject entity.Subject, turns ...entity.ChatTurn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := &entity.ChatSession{Id: sessionID, Subject: subject}
	if x, found := r.cache.Get(sessionID); found {
		session = x.(*entity.ChatSession)
	}
	session.Turns = append(session.Turns, turns...)
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
