package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"jotter/m/domain"
)

const noteColumns = `id, user_id, title, content, is_completed, created_at, updated_at`

// NoteStore persists notes. Every read and write is scoped by owner.
type NoteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewNoteStore(db *sqlx.DB) *NoteStore {
	return &NoteStore{db: db, now: time.Now}
}

// WithClock returns a copy of s that stamps rows using now.
func (s *NoteStore) WithClock(now func() time.Time) *NoteStore {
	c := *s
	c.now = now
	return &c
}

func (s *NoteStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// List returns the user's notes, newest first.
func (s *NoteStore) List(ctx context.Context, userID int64) ([]domain.Note, error) {
	notes := []domain.Note{}
	err := s.db.SelectContext(ctx, &notes, s.db.Rebind(`SELECT `+noteColumns+` FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC`), userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	for i := range notes {
		normalize(&notes[i])
	}
	return notes, nil
}

func (s *NoteStore) Get(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	var n domain.Note
	err := s.db.GetContext(ctx, &n, s.db.Rebind(`SELECT `+noteColumns+` FROM notes WHERE id = ? AND user_id = ?`), noteID, userID)
	if err != nil {
		return nil, notFoundOr(err, "get note")
	}
	normalize(&n)
	return &n, nil
}

func (s *NoteStore) Create(ctx context.Context, userID int64, title, content string) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}
	now := s.timestamp()
	var id int64
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`INSERT INTO notes (user_id, title, content, is_completed, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		userID, title, content, false, now, now).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return s.Get(ctx, userID, id)
}

// Update replaces title, content and completion of a note owned by userID
// and bumps updated_at. A note that is missing or owned by someone else
// yields domain.ErrNotFound.
func (s *NoteStore) Update(ctx context.Context, userID, noteID int64, u domain.NoteUpdate) (*domain.Note, error) {
	if strings.TrimSpace(u.Title) == "" || strings.TrimSpace(u.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE notes SET title = ?, content = ?, is_completed = ?, updated_at = ?
        WHERE id = ? AND user_id = ?`),
		u.Title, u.Content, u.IsCompleted, s.timestamp(), noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if err := requireRow(res, "update note"); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, noteID)
}

func (s *NoteStore) Delete(ctx context.Context, userID, noteID int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM notes WHERE id = ? AND user_id = ?`), noteID, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return requireRow(res, "delete note")
}

// requireRow maps a statement that touched nothing to domain.ErrNotFound.
func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func normalize(n *domain.Note) {
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
}
