package model

import "time"

// Card represents a stored payment card. The validation code and
// password columns hold ciphertext.
type Card struct {
	ID             int64
	UserID         int64
	Label          string
	Number         string
	ValidationCode string
	ValidationDate string
	Password       string
	IsVirtual      bool
	IsCredit       bool
	IsDebit        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c Card) RecordID() int64 { return c.ID }
func (c Card) OwnerID() int64  { return c.UserID }

// CreateCardRequest represents a card creation request.
type CreateCardRequest struct {
	Label          string `json:"label"`
	Number         string `json:"number"`
	ValidationCode string `json:"validation_code"`
	ValidationDate string `json:"validation_date"`
	Password       string `json:"password"`
	IsVirtual      bool   `json:"is_virtual"`
	IsCredit       bool   `json:"is_credit"`
	IsDebit        bool   `json:"is_debit"`
}

// CardResponse represents a card in API responses. The creation echo
// omits the id, password and validation code; read paths include the
// decrypted values.
type CardResponse struct {
	ID             int64     `json:"id,omitempty"`
	Label          string    `json:"label"`
	Number         string    `json:"number"`
	ValidationCode string    `json:"validation_code,omitempty"`
	ValidationDate string    `json:"validation_date"`
	Password       string    `json:"password,omitempty"`
	IsVirtual      bool      `json:"is_virtual"`
	IsCredit       bool      `json:"is_credit"`
	IsDebit        bool      `json:"is_debit"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
