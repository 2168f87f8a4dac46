package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saarthi-app/saarthi/internal/domain"
)

// AssignmentService handles assignment CRUD with validation and ownership
// enforcement.
type AssignmentService struct {
	assignments domain.AssignmentRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignments domain.AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

// AssignmentUpdate carries a partial update; nil fields keep their stored
// values.
type AssignmentUpdate struct {
	Title       *string
	Subject     *string
	DueDate     *time.Time
	Status      *string
	Priority    *string
	Description *string
}

// List returns the user's assignments, newest first.
func (s *AssignmentService) List(ctx context.Context, userID int64) ([]domain.Assignment, error) {
	return s.assignments.ListByUser(ctx, userID)
}

// Create creates a new assignment for the user with validation and defaults.
func (s *AssignmentService) Create(ctx context.Context, userID int64, a *domain.Assignment) error {
	if a.Title == "" || a.Subject == "" {
		return fmt.Errorf("%w: title and subject are required", domain.ErrInvalidInput)
	}
	if a.Status == "" {
		a.Status = domain.StatusPending
	}
	if a.Priority == "" {
		a.Priority = domain.PriorityMedium
	}
	if err := validateStatus(a.Status); err != nil {
		return err
	}
	if err := validatePriority(a.Priority); err != nil {
		return err
	}

	a.UserID = userID
	if err := s.assignments.Create(ctx, a); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// Update applies a partial update to an assignment the user owns. The write
// itself is a single statement conditioned on id and owner, so a concurrent
// owner change cannot slip between check and mutation. Returns ErrNotFound
// for an unknown id and ErrForbidden when the assignment belongs to someone
// else.
func (s *AssignmentService) Update(ctx context.Context, userID, id int64, update AssignmentUpdate) (*domain.Assignment, error) {
	existing, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Subject != nil {
		existing.Subject = *update.Subject
	}
	if update.DueDate != nil {
		existing.DueDate = update.DueDate
	}
	if update.Status != nil {
		existing.Status = *update.Status
	}
	if update.Priority != nil {
		existing.Priority = *update.Priority
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}

	if existing.Title == "" || existing.Subject == "" {
		return nil, fmt.Errorf("%w: title and subject are required", domain.ErrInvalidInput)
	}
	if err := validateStatus(existing.Status); err != nil {
		return nil, err
	}
	if err := validatePriority(existing.Priority); err != nil {
		return nil, err
	}

	if err := s.assignments.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, s.resolveMissing(ctx, id)
		}
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	return existing, nil
}

// Delete removes an assignment the user owns, with the same error contract
// as Update.
func (s *AssignmentService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.assignments.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.resolveMissing(ctx, id)
		}
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// resolveMissing decides why an owner-conditioned write matched no row: the
// record is gone (NotFound) or it now belongs to someone else (Forbidden).
func (s *AssignmentService) resolveMissing(ctx context.Context, id int64) error {
	if _, err := s.assignments.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrForbidden
}

func validateStatus(status string) error {
	if status != domain.StatusPending && status != domain.StatusCompleted {
		return fmt.Errorf("%w: status must be 'pending' or 'completed'", domain.ErrInvalidInput)
	}
	return nil
}

func validatePriority(priority string) error {
	if priority != domain.PriorityHigh && priority != domain.PriorityMedium && priority != domain.PriorityLow {
		return fmt.Errorf("%w: priority must be 'high', 'medium', or 'low'", domain.ErrInvalidInput)
	}
	return nil
}
