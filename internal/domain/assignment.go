package domain

import (
	"context"
	"time"
)

// Assignment is a piece of schoolwork owned by a single user.
type Assignment struct {
	ID          int64
	UserID      int64
	Title       string
	Subject     string
	DueDate     *time.Time
	Status      string
	Priority    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// AssignmentRepository defines persistence operations for assignments.
// Update and Delete are conditional on ownership: the statement matches both
// the assignment id and UserID in a single write, and ErrNotFound is returned
// when no row satisfied the predicate.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	GetByID(ctx context.Context, id int64) (*Assignment, error)
	ListByUser(ctx context.Context, userID int64) ([]Assignment, error)
	Update(ctx context.Context, assignment *Assignment) error
	Delete(ctx context.Context, id, userID int64) error
}
