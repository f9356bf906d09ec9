package model

import "time"

// Credential represents a stored login credential. The password column
// holds ciphertext; it is decrypted only on owner-authorized reads.
type Credential struct {
	ID        int64
	UserID    int64
	Label     string
	URL       string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Credential) RecordID() int64 { return c.ID }
func (c Credential) OwnerID() int64  { return c.UserID }

// CreateCredentialRequest represents a credential creation request.
type CreateCredentialRequest struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialResponse represents a credential in API responses. On the
// creation echo the id and password are omitted; read paths include
// the decrypted password.
type CredentialResponse struct {
	ID        int64     `json:"id,omitempty"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
