package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/drivenpass/drivenpass-go/internal/model"
)

const cardColumns = `id, user_id, label, number, validation_code, validation_date, password,
	is_virtual, is_credit, is_debit, created_at, updated_at`

// CardRepository handles payment card persistence. Validation code and
// password values cross this layer already encrypted.
type CardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a card and sets the generated ID on the struct.
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	query := `INSERT INTO cards (user_id, label, number, validation_code, validation_date, password,
		is_virtual, is_credit, is_debit) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		card.UserID, card.Label, card.Number, card.ValidationCode, card.ValidationDate,
		card.Password, card.IsVirtual, card.IsCredit, card.IsDebit,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	card.ID = id
	return nil
}

// FindByLabel retrieves the owner's card with the given label, or
// (nil, nil) when none exists.
func (r *CardRepository) FindByLabel(ctx context.Context, userID int64, label string) (*model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = ? AND label = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, label))
}

// FindByID retrieves a card by id regardless of owner, or (nil, nil)
// when none exists.
func (r *CardRepository) FindByID(ctx context.Context, id int64) (*model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves all cards owned by the user.
func (r *CardRepository) FindAll(ctx context.Context, userID int64) ([]model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Label, &c.Number, &c.ValidationCode, &c.ValidationDate,
			&c.Password, &c.IsVirtual, &c.IsCredit, &c.IsDebit, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

// Delete removes a card by id.
func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	return err
}

// DeleteAll removes every card owned by the user.
func (r *CardRepository) DeleteAll(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE user_id = ?`, userID)
	return err
}

// DeleteAllTx is DeleteAll inside the given transaction.
func (r *CardRepository) DeleteAllTx(ctx context.Context, tx *sql.Tx, userID int64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE user_id = ?`, userID)
	return err
}

func (r *CardRepository) scanOne(row *sql.Row) (*model.Card, error) {
	c := &model.Card{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.Label, &c.Number, &c.ValidationCode, &c.ValidationDate,
		&c.Password, &c.IsVirtual, &c.IsCredit, &c.IsDebit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}
