package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saarthi-app/saarthi/internal/domain"
)

func TestAssignmentRepository_UpdateConditionedOnOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	a := &domain.Assignment{
		UserID: owner.ID, Title: "Essay", Subject: "English",
		Status: domain.StatusPending, Priority: domain.PriorityMedium,
	}
	if err := db.Assignments().Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A write carrying the wrong owner matches no row; the single statement
	// is the ownership check.
	hijack := *a
	hijack.UserID = other.ID
	hijack.Title = "Hijacked"
	if err := db.Assignments().Update(ctx, &hijack); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}

	got, err := db.Assignments().GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Essay" {
		t.Fatalf("record mutated despite owner mismatch: %q", got.Title)
	}

	// The right owner succeeds.
	a.Title = "Essay v2"
	if err := db.Assignments().Update(ctx, a); err != nil {
		t.Fatalf("owner update: %v", err)
	}
}

func TestAssignmentRepository_DeleteConditionedOnOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	a := &domain.Assignment{
		UserID: owner.ID, Title: "Essay", Subject: "English",
		Status: domain.StatusPending, Priority: domain.PriorityMedium,
	}
	if err := db.Assignments().Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Assignments().Delete(ctx, a.ID, other.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}
	if _, err := db.Assignments().GetByID(ctx, a.ID); err != nil {
		t.Fatalf("record deleted despite owner mismatch: %v", err)
	}

	if err := db.Assignments().Delete(ctx, a.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := db.Assignments().GetByID(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestAssignmentRepository_DueDateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	a := &domain.Assignment{
		UserID: owner.ID, Title: "Lab", Subject: "Chemistry", DueDate: &due,
		Status: domain.StatusPending, Priority: domain.PriorityHigh,
	}
	if err := db.Assignments().Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := db.Assignments().GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date round trip: got %v, want %v", got.DueDate, due)
	}

	// Absent due date stays nil.
	b := &domain.Assignment{
		UserID: owner.ID, Title: "Reading", Subject: "History",
		Status: domain.StatusPending, Priority: domain.PriorityLow,
	}
	if err := db.Assignments().Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	gotB, err := db.Assignments().GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotB.DueDate != nil {
		t.Fatalf("expected nil due date, got %v", gotB.DueDate)
	}
}
