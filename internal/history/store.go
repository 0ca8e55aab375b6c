// Package history remembers the last commit message composed in each project so it can
// be committed again without answering every question.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/czjira/internal/database"
	"github.com/wizzomafizzo/czjira/internal/message"
	"github.com/wizzomafizzo/czjira/internal/storage"
)

// MaxEntries is how many entries Save keeps per project.
const MaxEntries = 20

// ErrNoHistory is returned when nothing was stored for a project yet.
var ErrNoHistory = errors.New("no previous commit message for this project")

// Entry is one composed commit message and the answers it was built from.
type Entry struct {
	CreatedAt time.Time
	Message   string
	Answers   message.Answers
}

// Store keeps history entries keyed by project root.
type Store struct {
	manager *database.Manager
}

// Open opens the store at dsn, creating the schema if needed.
func Open(ctx context.Context, dsn string) (*Store, error) {
	manager, err := database.NewManager(ctx, dsn)
	if err != nil {
		return nil, err //nolint:wrapcheck // manager errors already describe the step
	}
	return &Store{manager: manager}, nil
}

// OpenDefault opens the store in the XDG data directory.
func OpenDefault(ctx context.Context, fs afero.Fs) (*Store, error) {
	path, err := storage.New(fs).GetDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}
	return Open(ctx, path)
}

// Save records entry as the latest for projectRoot and drops entries beyond MaxEntries.
func (s *Store) Save(ctx context.Context, projectRoot string, entry Entry) error {
	answers, err := json.Marshal(entry.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.manager.DB().ExecContext(ctx,
		"INSERT INTO history (project_root, answers, message, created_at) VALUES (?, ?, ?, ?)",
		projectRoot, answers, entry.Message, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return s.Prune(ctx, projectRoot, MaxEntries)
}

// Last returns the most recent entry for projectRoot.
func (s *Store) Last(ctx context.Context, projectRoot string) (*Entry, error) {
	var (
		answers   []byte
		msg       string
		createdAt int64
	)
	err := s.manager.DB().QueryRowContext(ctx,
		"SELECT answers, message, created_at FROM history WHERE project_root = ? ORDER BY id DESC LIMIT 1",
		projectRoot).Scan(&answers, &msg, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoHistory
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	entry := &Entry{Message: msg, CreatedAt: time.Unix(createdAt, 0)}
	if err := json.Unmarshal(answers, &entry.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}
	return entry, nil
}

// Prune keeps only the newest keep entries of projectRoot.
func (s *Store) Prune(ctx context.Context, projectRoot string, keep int) error {
	_, err := s.manager.DB().ExecContext(ctx, `
		DELETE FROM history
		WHERE project_root = ?
		AND id NOT IN (
			SELECT id FROM history WHERE project_root = ? ORDER BY id DESC LIMIT ?
		)`, projectRoot, projectRoot, keep)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.manager.Close() //nolint:wrapcheck // already wrapped by the manager
}
