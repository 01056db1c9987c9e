package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// historyRepo implements the translation audit log on SQLite.
type historyRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new history repository.
func NewHistoryRepo(dbPath string) (repo.HistoryRepo, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS translations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			lang TEXT NOT NULL,
			chars INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// Create indexes
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_translations_user_id ON translations(user_id)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	_, _ = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_translations_created_at ON translations(created_at)
	`)

	return &historyRepo{db: db}, nil
}

// Record logs one completed translation.
func (r *historyRepo) Record(ctx context.Context, userID string, lang domain.LanguageCode, chars int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO translations (user_id, lang, chars, created_at)
		VALUES (?, ?, ?, ?)
	`, userID, string(lang), chars, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record translation: %w", err)
	}
	return nil
}

// CountByUser returns how many translations the user has completed.
func (r *historyRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM translations WHERE user_id = ?
	`, userID)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count translations: %w", err)
	}
	return count, nil
}

// CleanupStale deletes records older than the given time.
func (r *historyRepo) CleanupStale(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM translations WHERE created_at < ?
	`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup stale records: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the database connection.
func (r *historyRepo) Close() error {
	return r.db.Close()
}
