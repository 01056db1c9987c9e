package data

import (
	"sync"
	"time"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
)

// sessionStore is the in-memory session store. State is advisory UX
// convenience, not correctness-critical: per-user writes are
// last-write-wins and a process restart clears everything.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	notified map[string]bool
}

// NewSessionStore creates the process-wide in-memory session store.
func NewSessionStore() repo.SessionStore {
	return &sessionStore{
		sessions: make(map[string]*domain.Session),
		notified: make(map[string]bool),
	}
}

// Get returns the user's session, deleting it first if its deadline has
// passed (lazy expiry).
func (s *sessionStore) Get(userID string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	if session.Expired(time.Now()) {
		delete(s.sessions, userID)
		return nil
	}
	return session
}

// Set replaces the user's session wholesale.
func (s *sessionStore) Set(userID string, session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
}

// Clear removes the user's session.
func (s *sessionStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Notified reports the one-shot onboarding flag.
func (s *sessionStore) Notified(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notified[userID]
}

// MarkNotified sets the one-shot onboarding flag.
func (s *sessionStore) MarkNotified(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified[userID] = true
}

// TakeExpired removes and returns every session whose deadline passed
// before now.
func (s *sessionStore) TakeExpired(now time.Time) map[string]*domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired map[string]*domain.Session
	for userID, session := range s.sessions {
		if !session.Expired(now) {
			continue
		}
		if expired == nil {
			expired = make(map[string]*domain.Session)
		}
		expired[userID] = session
		delete(s.sessions, userID)
	}
	return expired
}
