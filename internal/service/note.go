package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saarthi-app/saarthi/internal/domain"
)

// NoteService handles note CRUD with validation and ownership enforcement.
type NoteService struct {
	notes domain.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes domain.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// NoteUpdate carries a partial update; nil fields keep their stored values.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// List returns the user's notes, newest first.
func (s *NoteService) List(ctx context.Context, userID int64) ([]domain.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

// Create creates a new note for the user with validation.
func (s *NoteService) Create(ctx context.Context, userID int64, note *domain.Note) error {
	if note.Title == "" || note.Content == "" {
		return fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	note.UserID = userID
	if err := s.notes.Create(ctx, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// Update applies a partial update to a note the user owns. Returns
// ErrNotFound for an unknown id and ErrForbidden when the note belongs to
// someone else.
func (s *NoteService) Update(ctx context.Context, userID, id int64, update NoteUpdate) (*domain.Note, error) {
	existing, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Content != nil {
		existing.Content = *update.Content
	}

	if existing.Title == "" || existing.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	if err := s.notes.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, s.resolveMissing(ctx, id)
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return existing, nil
}

// Delete removes a note the user owns, with the same error contract as
// Update.
func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.notes.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.resolveMissing(ctx, id)
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (s *NoteService) resolveMissing(ctx context.Context, id int64) error {
	if _, err := s.notes.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrForbidden
}
