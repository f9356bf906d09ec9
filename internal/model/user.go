package model

import "time"

// User represents an account row in the database.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignUpRequest represents an account registration request.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest represents a sign-in request.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the session token issued on sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse represents account data safe for API responses.
// The password hash is never serialized; the id is omitted on
// registration echoes.
type UserResponse struct {
	ID        int64     `json:"id,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// EraseAccountRequest carries the password confirmation required
// before full account erasure.
type EraseAccountRequest struct {
	Password string `json:"password"`
}
