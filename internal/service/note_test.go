package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivenpass/drivenpass-go/internal/model"
)

// fakeNoteRepo is an in-memory stand-in for the notes table.
type fakeNoteRepo struct {
	records map[int64]model.Note
	nextID  int64
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{records: make(map[int64]model.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, rec *model.Note) error {
	f.nextID++
	rec.ID = f.nextID
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.records[rec.ID] = *rec
	return nil
}

func (f *fakeNoteRepo) FindByLabel(_ context.Context, userID int64, title string) (*model.Note, error) {
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Title == title {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeNoteRepo) FindByID(_ context.Context, id int64) (*model.Note, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (f *fakeNoteRepo) FindAll(_ context.Context, userID int64) ([]model.Note, error) {
	var out []model.Note
	for id := int64(1); id <= f.nextID; id++ {
		if rec, ok := f.records[id]; ok && rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id int64) error {
	delete(f.records, id)
	return nil
}

func (f *fakeNoteRepo) DeleteAll(_ context.Context, userID int64) error {
	for id, rec := range f.records {
		if rec.UserID == userID {
			delete(f.records, id)
		}
	}
	return nil
}

func TestNoteCreateAndFetch(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())

	resp, err := svc.Create(context.Background(), 1, model.CreateNoteRequest{
		Title:   "Title 1",
		Content: "Content 1",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ID)
	assert.Equal(t, "Title 1", resp.Title)

	// Content is stored plaintext and comes back as written.
	fetched, err := svc.FindOne(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Content 1", fetched.Content)
}

func TestNoteDuplicateTitle(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())
	req := model.CreateNoteRequest{Title: "Title 1", Content: "Content 1"}

	_, err := svc.Create(context.Background(), 1, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrRecordExists)

	_, err = svc.Create(context.Background(), 2, req)
	assert.NoError(t, err)
}

func TestNoteOwnershipChecks(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())

	_, err := svc.Create(context.Background(), 1, model.CreateNoteRequest{Title: "Title 1", Content: "Content 1"})
	require.NoError(t, err)

	_, err = svc.FindOne(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.FindOne(context.Background(), 2, 42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestNoteRemoveAllIdempotent(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())

	// No records: still a no-op success.
	require.NoError(t, svc.RemoveAll(context.Background(), 1))

	_, err := svc.Create(context.Background(), 1, model.CreateNoteRequest{Title: "Title 1", Content: "Content 1"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAll(context.Background(), 1))
	out, err := svc.FindAll(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}
