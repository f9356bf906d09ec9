package service

import (
	"context"
	"errors"
	"unicode"

	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/model"
	"github.com/drivenpass/drivenpass-go/internal/repository"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrWeakPassword     = errors.New("password must be at least 10 characters with upper, lower, number and symbol")
	ErrEmailTaken       = errors.New("user already exists")
	// ErrInvalidCredentials covers unknown email, wrong password and
	// failed re-authentication alike.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

// AuthService handles identity issuance and verification.
type AuthService struct {
	users  *repository.UserRepository
	tokens *crypto.TokenManager
}

// NewAuthService creates a new AuthService on top of the user
// repository and the token manager.
func NewAuthService(users *repository.UserRepository, tokens *crypto.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUp registers a new account. The password is hashed before it
// reaches persistence; the echo carries neither the hash nor the id.
func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}
	if !strongPassword(req.Password) {
		return model.UserResponse{}, ErrWeakPassword
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return model.UserResponse{}, err
	}
	if existing != nil {
		return model.UserResponse{}, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{Email: req.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		// The schema's UNIQUE(email) backstops a concurrent sign-up
		// that slipped past the existence check.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

// SignIn verifies the credentials and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, req model.SignInRequest) (model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

// CheckPassword re-verifies a password for an already-authenticated
// user before a destructive operation.
func (s *AuthService) CheckPassword(user *model.User, password string) error {
	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

// GetUser returns the safe projection of an account.
func (s *AuthService) GetUser(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, err
	}
	return model.UserResponse{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

// strongPassword enforces the sign-up strength rule: at least 10
// characters covering upper case, lower case, number and symbol.
func strongPassword(password string) bool {
	if len(password) < 10 {
		return false
	}

	var upper, lower, number, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			number = true
		default:
			symbol = true
		}
	}
	return upper && lower && number && symbol
}
