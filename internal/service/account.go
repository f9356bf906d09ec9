package service

import (
	"context"
	"fmt"

	"github.com/drivenpass/drivenpass-go/internal/model"
	"github.com/drivenpass/drivenpass-go/internal/repository"
)

// AccountService orchestrates full-account erasure: re-authentication,
// then deletion of every owned vault record and the account itself.
type AccountService struct {
	users       *repository.UserRepository
	credentials *repository.CredentialRepository
	notes       *repository.NoteRepository
	cards       *repository.CardRepository
	auth        *AuthService
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	users *repository.UserRepository,
	credentials *repository.CredentialRepository,
	notes *repository.NoteRepository,
	cards *repository.CardRepository,
	auth *AuthService,
) *AccountService {
	return &AccountService{
		users:       users,
		credentials: credentials,
		notes:       notes,
		cards:       cards,
		auth:        auth,
	}
}

// Erase re-verifies the confirmation password, then deletes the user's
// credentials, notes, cards and account row in a single transaction so
// a crash mid-sequence cannot leave orphaned records. On a failed
// confirmation nothing is deleted. The caller's session token stays
// cryptographically valid until expiry; the session guard's
// user-existence check is what blocks its reuse.
func (s *AccountService) Erase(ctx context.Context, user *model.User, confirmationPassword string) error {
	if err := s.auth.CheckPassword(user, confirmationPassword); err != nil {
		return err
	}

	tx, err := s.users.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("starting erase transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.credentials.DeleteAllTx(ctx, tx, user.ID); err != nil {
		return fmt.Errorf("deleting credentials: %w", err)
	}
	if err := s.notes.DeleteAllTx(ctx, tx, user.ID); err != nil {
		return fmt.Errorf("deleting notes: %w", err)
	}
	if err := s.cards.DeleteAllTx(ctx, tx, user.ID); err != nil {
		return fmt.Errorf("deleting cards: %w", err)
	}
	if err := s.users.DeleteTx(ctx, tx, user.ID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return tx.Commit()
}
