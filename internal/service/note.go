package service

import (
	"context"

	"github.com/drivenpass/drivenpass-go/internal/model"
)

// NoteService handles secure note business logic. Notes carry no
// sensitive fields, so the store runs without cipher hooks.
type NoteService struct {
	store recordStore[model.Note]
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo vaultRepository[model.Note]) *NoteService {
	return &NoteService{store: recordStore[model.Note]{repo: repo}}
}

// Create stores a new note for the user; the title is the per-owner
// uniqueness label.
func (s *NoteService) Create(ctx context.Context, userID int64, req model.CreateNoteRequest) (model.NoteResponse, error) {
	if req.Title == "" {
		return model.NoteResponse{}, missingField("title")
	}
	if req.Content == "" {
		return model.NoteResponse{}, missingField("content")
	}

	note := model.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.store.create(ctx, userID, req.Title, &note); err != nil {
		return model.NoteResponse{}, err
	}

	return model.NoteResponse{
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}, nil
}

// FindAll returns all of the user's notes.
func (s *NoteService) FindAll(ctx context.Context, userID int64) ([]model.NoteResponse, error) {
	notes, err := s.store.findAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = noteResponse(n)
	}
	return out, nil
}

// FindOne returns one note by id, enforcing existence before
// ownership.
func (s *NoteService) FindOne(ctx context.Context, userID, id int64) (model.NoteResponse, error) {
	note, err := s.store.findOne(ctx, userID, id)
	if err != nil {
		return model.NoteResponse{}, err
	}
	return noteResponse(*note), nil
}

// Remove deletes one note by id with the same checks as FindOne.
func (s *NoteService) Remove(ctx context.Context, userID, id int64) error {
	return s.store.remove(ctx, userID, id)
}

// RemoveAll deletes every note the user owns.
func (s *NoteService) RemoveAll(ctx context.Context, userID int64) error {
	return s.store.deleteAll(ctx, userID)
}

func noteResponse(n model.Note) model.NoteResponse {
	return model.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
