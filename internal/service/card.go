package service

import (
	"context"

	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/model"
)

// CardService handles payment card business logic. The validation code
// and card password are the sensitive fields.
type CardService struct {
	store recordStore[model.Card]
}

// NewCardService creates a new CardService.
func NewCardService(repo vaultRepository[model.Card], cipher *crypto.Cipher) *CardService {
	return &CardService{
		store: recordStore[model.Card]{
			repo: repo,
			seal: func(c *model.Card) error {
				code, err := cipher.Encrypt(c.ValidationCode)
				if err != nil {
					return err
				}
				password, err := cipher.Encrypt(c.Password)
				if err != nil {
					return err
				}
				c.ValidationCode, c.Password = code, password
				return nil
			},
			open: func(c *model.Card) error {
				code, err := cipher.Decrypt(c.ValidationCode)
				if err != nil {
					return err
				}
				password, err := cipher.Decrypt(c.Password)
				if err != nil {
					return err
				}
				c.ValidationCode, c.Password = code, password
				return nil
			},
		},
	}
}

// Create stores a new card for the user. The echo strips the raw
// password, validation code and internal id.
func (s *CardService) Create(ctx context.Context, userID int64, req model.CreateCardRequest) (model.CardResponse, error) {
	if err := validateCard(req); err != nil {
		return model.CardResponse{}, err
	}

	card := model.Card{
		UserID:         userID,
		Label:          req.Label,
		Number:         req.Number,
		ValidationCode: req.ValidationCode,
		ValidationDate: req.ValidationDate,
		Password:       req.Password,
		IsVirtual:      req.IsVirtual,
		IsCredit:       req.IsCredit,
		IsDebit:        req.IsDebit,
	}

	if err := s.store.create(ctx, userID, req.Label, &card); err != nil {
		return model.CardResponse{}, err
	}

	return model.CardResponse{
		Label:          card.Label,
		Number:         card.Number,
		ValidationDate: card.ValidationDate,
		IsVirtual:      card.IsVirtual,
		IsCredit:       card.IsCredit,
		IsDebit:        card.IsDebit,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}, nil
}

// FindAll returns all of the user's cards with sensitive fields
// decrypted.
func (s *CardService) FindAll(ctx context.Context, userID int64) ([]model.CardResponse, error) {
	cards, err := s.store.findAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.CardResponse, len(cards))
	for i, c := range cards {
		out[i] = cardResponse(c)
	}
	return out, nil
}

// FindOne returns one card by id, decrypted, enforcing existence
// before ownership.
func (s *CardService) FindOne(ctx context.Context, userID, id int64) (model.CardResponse, error) {
	card, err := s.store.findOne(ctx, userID, id)
	if err != nil {
		return model.CardResponse{}, err
	}
	return cardResponse(*card), nil
}

// Remove deletes one card by id with the same checks as FindOne.
func (s *CardService) Remove(ctx context.Context, userID, id int64) error {
	return s.store.remove(ctx, userID, id)
}

// RemoveAll deletes every card the user owns.
func (s *CardService) RemoveAll(ctx context.Context, userID int64) error {
	return s.store.deleteAll(ctx, userID)
}

func validateCard(req model.CreateCardRequest) error {
	switch {
	case req.Label == "":
		return missingField("label")
	case req.Number == "":
		return missingField("number")
	case req.ValidationCode == "":
		return missingField("validation_code")
	case req.ValidationDate == "":
		return missingField("validation_date")
	case req.Password == "":
		return missingField("password")
	}
	return nil
}

func cardResponse(c model.Card) model.CardResponse {
	return model.CardResponse{
		ID:             c.ID,
		Label:          c.Label,
		Number:         c.Number,
		ValidationCode: c.ValidationCode,
		ValidationDate: c.ValidationDate,
		Password:       c.Password,
		IsVirtual:      c.IsVirtual,
		IsCredit:       c.IsCredit,
		IsDebit:        c.IsDebit,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
