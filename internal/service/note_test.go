package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saarthi-app/saarthi/internal/domain"
	"github.com/saarthi-app/saarthi/internal/service"
)

func TestNoteService_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNoteService(db.Notes())
	user := registerTestUser(t, db, "notes@example.com")
	ctx := context.Background()

	note := &domain.Note{Title: "Physics formulas", Content: "F equals m a"}
	if err := svc.Create(ctx, user.ID, note); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if note.ID == 0 {
		t.Fatal("expected note ID to be set")
	}

	notes, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "Physics formulas" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}

func TestNoteService_Create_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNoteService(db.Notes())
	user := registerTestUser(t, db, "notes@example.com")
	ctx := context.Background()

	for _, note := range []*domain.Note{
		{Title: "", Content: "body"},
		{Title: "title", Content: ""},
	} {
		if err := svc.Create(ctx, user.ID, note); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	}
}

func TestNoteService_Update_NotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNoteService(db.Notes())
	userA := registerTestUser(t, db, "a@example.com")
	userB := registerTestUser(t, db, "b@example.com")
	ctx := context.Background()

	note := &domain.Note{Title: "A's note", Content: "secret"}
	if err := svc.Create(ctx, userA.ID, note); err != nil {
		t.Fatalf("Create: %v", err)
	}

	content := "overwritten"
	_, err := svc.Update(ctx, userB.ID, note.ID, service.NoteUpdate{Content: &content})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNoteService_Delete_NotFoundVsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewNoteService(db.Notes())
	userA := registerTestUser(t, db, "a@example.com")
	userB := registerTestUser(t, db, "b@example.com")
	ctx := context.Background()

	note := &domain.Note{Title: "A's note", Content: "text"}
	if err := svc.Create(ctx, userA.ID, note); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, userB.ID, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	if err := svc.Delete(ctx, userB.ID, note.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for someone else's note, got %v", err)
	}
	if err := svc.Delete(ctx, userA.ID, note.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
