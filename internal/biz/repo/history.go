package repo

import (
	"context"
	"time"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

// HistoryRepo is the translation audit log (SQLite). It records completed
// translations only; user preferences and sessions are never persisted.
type HistoryRepo interface {
	// Record logs one completed translation.
	Record(ctx context.Context, userID string, lang domain.LanguageCode, chars int) error

	// CountByUser returns how many translations the user has completed.
	CountByUser(ctx context.Context, userID string) (int64, error)

	// CleanupStale deletes records older than the given time and returns
	// the number removed.
	CleanupStale(ctx context.Context, before time.Time) (int64, error)

	// Close closes the underlying database.
	Close() error
}
