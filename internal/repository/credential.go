package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/drivenpass/drivenpass-go/internal/model"
)

// CredentialRepository handles login credential persistence. Password
// values cross this layer already encrypted.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a credential and sets the generated ID on the struct.
func (r *CredentialRepository) Create(ctx context.Context, cred *model.Credential) error {
	query := `INSERT INTO credentials (user_id, label, url, username, password) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, cred.UserID, cred.Label, cred.URL, cred.Username, cred.Password)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	cred.ID = id
	return nil
}

// FindByLabel retrieves the owner's credential with the given label, or
// (nil, nil) when none exists. Labels are unique per owner only.
func (r *CredentialRepository) FindByLabel(ctx context.Context, userID int64, label string) (*model.Credential, error) {
	query := `SELECT id, user_id, label, url, username, password, created_at, updated_at
		FROM credentials WHERE user_id = ? AND label = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, label))
}

// FindByID retrieves a credential by id regardless of owner, or
// (nil, nil) when none exists. Ownership is checked by the caller so
// that existence and authorization stay distinct failures.
func (r *CredentialRepository) FindByID(ctx context.Context, id int64) (*model.Credential, error) {
	query := `SELECT id, user_id, label, url, username, password, created_at, updated_at
		FROM credentials WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves all credentials owned by the user.
func (r *CredentialRepository) FindAll(ctx context.Context, userID int64) ([]model.Credential, error) {
	query := `SELECT id, user_id, label, url, username, password, created_at, updated_at
		FROM credentials WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []model.Credential
	for rows.Next() {
		var c model.Credential
		if err := rows.Scan(&c.ID, &c.UserID, &c.Label, &c.URL, &c.Username, &c.Password, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		creds = append(creds, c)
	}

	return creds, rows.Err()
}

// Delete removes a credential by id.
func (r *CredentialRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ?`, id)
	return err
}

// DeleteAll removes every credential owned by the user; a no-op when
// the user owns none.
func (r *CredentialRepository) DeleteAll(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = ?`, userID)
	return err
}

// DeleteAllTx is DeleteAll inside the given transaction.
func (r *CredentialRepository) DeleteAllTx(ctx context.Context, tx *sql.Tx, userID int64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = ?`, userID)
	return err
}

func (r *CredentialRepository) scanOne(row *sql.Row) (*model.Credential, error) {
	c := &model.Credential{}
	err := row.Scan(&c.ID, &c.UserID, &c.Label, &c.URL, &c.Username, &c.Password, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}
