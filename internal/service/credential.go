package service

import (
	"context"

	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/model"
)

// CredentialService handles login credential business logic. The
// credential password is the sensitive field: encrypted at rest,
// decrypted on owner-authorized reads.
type CredentialService struct {
	store recordStore[model.Credential]
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(repo vaultRepository[model.Credential], cipher *crypto.Cipher) *CredentialService {
	return &CredentialService{
		store: recordStore[model.Credential]{
			repo: repo,
			seal: func(c *model.Credential) error {
				sealed, err := cipher.Encrypt(c.Password)
				if err != nil {
					return err
				}
				c.Password = sealed
				return nil
			},
			open: func(c *model.Credential) error {
				opened, err := cipher.Decrypt(c.Password)
				if err != nil {
					return err
				}
				c.Password = opened
				return nil
			},
		},
	}
}

// Create stores a new credential for the user. The echo strips the raw
// password and internal id.
func (s *CredentialService) Create(ctx context.Context, userID int64, req model.CreateCredentialRequest) (model.CredentialResponse, error) {
	if err := validateCredential(req); err != nil {
		return model.CredentialResponse{}, err
	}

	cred := model.Credential{
		UserID:   userID,
		Label:    req.Label,
		URL:      req.URL,
		Username: req.Username,
		Password: req.Password,
	}

	if err := s.store.create(ctx, userID, req.Label, &cred); err != nil {
		return model.CredentialResponse{}, err
	}

	return model.CredentialResponse{
		Label:     cred.Label,
		URL:       cred.URL,
		Username:  cred.Username,
		CreatedAt: cred.CreatedAt,
		UpdatedAt: cred.UpdatedAt,
	}, nil
}

// FindAll returns all of the user's credentials with passwords
// decrypted.
func (s *CredentialService) FindAll(ctx context.Context, userID int64) ([]model.CredentialResponse, error) {
	creds, err := s.store.findAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.CredentialResponse, len(creds))
	for i, c := range creds {
		out[i] = credentialResponse(c)
	}
	return out, nil
}

// FindOne returns one credential by id, decrypted, enforcing existence
// before ownership.
func (s *CredentialService) FindOne(ctx context.Context, userID, id int64) (model.CredentialResponse, error) {
	cred, err := s.store.findOne(ctx, userID, id)
	if err != nil {
		return model.CredentialResponse{}, err
	}
	return credentialResponse(*cred), nil
}

// Remove deletes one credential by id with the same checks as FindOne.
func (s *CredentialService) Remove(ctx context.Context, userID, id int64) error {
	return s.store.remove(ctx, userID, id)
}

// RemoveAll deletes every credential the user owns.
func (s *CredentialService) RemoveAll(ctx context.Context, userID int64) error {
	return s.store.deleteAll(ctx, userID)
}

func validateCredential(req model.CreateCredentialRequest) error {
	switch {
	case req.Label == "":
		return missingField("label")
	case req.URL == "":
		return missingField("url")
	case req.Username == "":
		return missingField("username")
	case req.Password == "":
		return missingField("password")
	}
	return nil
}

func credentialResponse(c model.Credential) model.CredentialResponse {
	return model.CredentialResponse{
		ID:        c.ID,
		Label:     c.Label,
		URL:       c.URL,
		Username:  c.Username,
		Password:  c.Password,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
