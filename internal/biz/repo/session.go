package repo

import (
	"time"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

// SessionStore is the per-user session state port.
// Implementations hold process-wide advisory state with no persistence
// guarantee; a restart is equivalent to clearing the whole store.
// Concurrent writes to the same user are last-write-wins.
type SessionStore interface {
	// Get returns the user's session, or nil when none exists. An entry
	// whose deadline has passed is deleted as a side effect and reported
	// as absent (lazy expiry).
	Get(userID string) *domain.Session

	// Set replaces the user's session wholesale.
	Set(userID string, session *domain.Session)

	// Clear removes the user's session. Idempotent.
	Clear(userID string)

	// Notified reports whether the user already received the onboarding
	// guidance while having no session.
	Notified(userID string) bool

	// MarkNotified records that the onboarding guidance was sent.
	MarkNotified(userID string)

	// TakeExpired removes and returns every session whose deadline passed
	// before now, keyed by user ID. Used by the expiry notifier so each
	// session produces at most one end-of-session notice.
	TakeExpired(now time.Time) map[string]*domain.Session
}
