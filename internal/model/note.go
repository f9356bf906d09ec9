package model

import "time"

// Note represents a stored secure note. Content is kept plaintext;
// notes carry no confidentiality requirement beyond ownership.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n Note) RecordID() int64 { return n.ID }
func (n Note) OwnerID() int64  { return n.UserID }

// CreateNoteRequest represents a note creation request.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
