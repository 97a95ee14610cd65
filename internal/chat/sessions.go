package chat

import (
	"sync"
	"time"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds one conversation's transient state. Callers must hold
// mu while reading or mutating the fields below it.
type Session struct {
	mu sync.Mutex

	Messages      []Message
	InterestScore int
	NudgeSent     bool
	LastActivity  time.Time
}

// SessionStore is a concurrency-safe map of live sessions. The store
// lock guards the map only; each session carries its own lock so
// messages for the same session serialize while different sessions
// proceed independently.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *SessionStore) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{LastActivity: time.Now()}
		s.sessions[id] = sess
	}
	return sess
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle longer than the TTL and returns how many
// were dropped. Sessions mid-flight refresh LastActivity under their
// own lock, so an active conversation is never evicted.
func (s *SessionStore) Sweep() int {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.LastActivity.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
