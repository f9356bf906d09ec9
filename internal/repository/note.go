package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/drivenpass/drivenpass-go/internal/model"
)

// NoteRepository handles secure note persistence. Note content is
// stored plaintext; titles are unique per owner.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note and sets the generated ID on the struct.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (user_id, title, content) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, note.UserID, note.Title, note.Content)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	note.ID = id
	return nil
}

// FindByLabel retrieves the owner's note with the given title, or
// (nil, nil) when none exists. The title is the note's uniqueness
// label.
func (r *NoteRepository) FindByLabel(ctx context.Context, userID int64, title string) (*model.Note, error) {
	query := `SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE user_id = ? AND title = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, title))
}

// FindByID retrieves a note by id regardless of owner, or (nil, nil)
// when none exists.
func (r *NoteRepository) FindByID(ctx context.Context, id int64) (*model.Note, error) {
	query := `SELECT id, user_id, title, content, created_at, updated_at FROM notes WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves all notes owned by the user.
func (r *NoteRepository) FindAll(ctx context.Context, userID int64) ([]model.Note, error) {
	query := `SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// Delete removes a note by id.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	return err
}

// DeleteAll removes every note owned by the user.
func (r *NoteRepository) DeleteAll(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE user_id = ?`, userID)
	return err
}

// DeleteAllTx is DeleteAll inside the given transaction.
func (r *NoteRepository) DeleteAllTx(ctx context.Context, tx *sql.Tx, userID int64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE user_id = ?`, userID)
	return err
}

func (r *NoteRepository) scanOne(row *sql.Row) (*model.Note, error) {
	n := &model.Note{}
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}
