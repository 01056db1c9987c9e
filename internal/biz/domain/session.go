package domain

import (
	"strings"
	"time"
)

// MaxSessionLanguages bounds the number of simultaneous target languages
// in one session or fan-out.
const MaxSessionLanguages = 4

// Session is the per-user translation state. A nil ExpiresAt means the
// session persists until an explicit /stop or replacement.
type Session struct {
	Languages []LanguageCode
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// NewSession builds a session over the given languages. A zero minutes
// value produces a session without a time bound.
func NewSession(languages []LanguageCode, minutes int) *Session {
	now := time.Now()
	s := &Session{
		Languages: languages,
		CreatedAt: now,
	}
	if minutes > 0 {
		expires := now.Add(time.Duration(minutes) * time.Minute)
		s.ExpiresAt = &expires
	}
	return s
}

// Expired reports whether the session's deadline has passed. Sessions
// without a deadline never expire by time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// LanguageList renders the session's target languages for confirmations,
// e.g. "Japanese (ja), Korean (ko)".
func (s *Session) LanguageList() string {
	return FormatLanguageList(s.Languages)
}

// FormatLanguageList renders codes with display names for user-facing text.
func FormatLanguageList(codes []LanguageCode) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		name := c.DisplayName()
		if name == string(c) {
			parts[i] = string(c)
		} else {
			parts[i] = name + " (" + string(c) + ")"
		}
	}
	return strings.Join(parts, ", ")
}
