package service

import (
	"context"
	"errors"
	"testing"

	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/model"
)

func TestEraseWrongConfirmationPassword(t *testing.T) {
	// Repositories are nil: any deletion attempt would panic, so a
	// clean ErrInvalidCredentials proves erasure stops at the
	// re-authentication gate with nothing deleted.
	svc := NewAccountService(nil, nil, nil, nil, newTestAuthService())

	hash, err := crypto.HashPassword("Senh4*Forte#1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	user := &model.User{ID: 1, Email: "a@x.com", PasswordHash: hash}

	err = svc.Erase(context.Background(), user, "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Erase() error = %v, want ErrInvalidCredentials", err)
	}
}
