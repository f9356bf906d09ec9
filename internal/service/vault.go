package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivenpass/drivenpass-go/internal/model"
)

var (
	// ErrMissingField marks a request with an empty required field.
	ErrMissingField = errors.New("missing required field")
	// ErrRecordExists is returned when the owner already has a record
	// with the same label or title. Uniqueness is per owner, never
	// global.
	ErrRecordExists = errors.New("record already exists")
	// ErrRecordNotFound is returned when no record has the given id.
	ErrRecordNotFound = errors.New("record does not exist")
	// ErrNotOwner is returned when the record exists but belongs to a
	// different user. Existence is always resolved before ownership.
	ErrNotOwner = errors.New("record does not belong to user")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// vaultRepository is the persistence surface shared by every vault
// record type. FindByLabel and FindByID report absence as (nil, nil).
type vaultRepository[R model.OwnedRecord] interface {
	Create(ctx context.Context, rec *R) error
	FindByLabel(ctx context.Context, userID int64, label string) (*R, error)
	FindByID(ctx context.Context, id int64) (*R, error)
	FindAll(ctx context.Context, userID int64) ([]R, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context, userID int64) error
}

// recordStore is the owned, uniquely-labeled record store shared by
// credentials, cards and notes. seal encrypts a record's sensitive
// fields before persistence; open decrypts them on reads. Either hook
// may be nil for record types without sensitive fields.
type recordStore[R model.OwnedRecord] struct {
	repo vaultRepository[R]
	seal func(*R) error
	open func(*R) error
}

// create persists a record for the owner after the per-owner label
// uniqueness check. The check and the insert are not atomic; the
// schema's UNIQUE(user_id, label) constraint backstops concurrent
// creators, surfacing as a plain persistence error.
func (s recordStore[R]) create(ctx context.Context, userID int64, label string, rec *R) error {
	existing, err := s.repo.FindByLabel(ctx, userID, label)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrRecordExists
	}

	if s.seal != nil {
		if err := s.seal(rec); err != nil {
			return err
		}
	}

	return s.repo.Create(ctx, rec)
}

// findAll returns every record owned by the user, sensitive fields
// decrypted.
func (s recordStore[R]) findAll(ctx context.Context, userID int64) ([]R, error) {
	recs, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.open != nil {
		for i := range recs {
			if err := s.open(&recs[i]); err != nil {
				return nil, err
			}
		}
	}

	return recs, nil
}

// findOne returns the record with the given id, decrypted, after the
// existence and ownership checks in that order.
func (s recordStore[R]) findOne(ctx context.Context, userID, id int64) (*R, error) {
	rec, err := s.checkOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if s.open != nil {
		if err := s.open(rec); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// remove deletes the record with the given id after the same
// existence and ownership checks as findOne.
func (s recordStore[R]) remove(ctx context.Context, userID, id int64) error {
	rec, err := s.checkOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, (*rec).RecordID())
}

// deleteAll removes every record owned by the user; idempotent.
func (s recordStore[R]) deleteAll(ctx context.Context, userID int64) error {
	return s.repo.DeleteAll(ctx, userID)
}

func (s recordStore[R]) checkOwned(ctx context.Context, userID, id int64) (*R, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	if (*rec).OwnerID() != userID {
		return nil, ErrNotOwner
	}
	return rec, nil
}
