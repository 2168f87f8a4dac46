package handler

import (
	"time"

	"github.com/saarthi-app/saarthi/internal/domain"
)

// AuthDTO is the JSON shape returned by signup and login.
type AuthDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func toAuthDTO(u *domain.User, token string) AuthDTO {
	return AuthDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Token: token,
	}
}

// AssignmentDTO is the JSON representation of an assignment.
type AssignmentDTO struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Subject     string  `json:"subject"`
	DueDate     *string `json:"dueDate"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toAssignmentDTO(a *domain.Assignment) AssignmentDTO {
	var due *string
	if a.DueDate != nil {
		s := a.DueDate.Format(time.RFC3339)
		due = &s
	}
	return AssignmentDTO{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Subject:     a.Subject,
		DueDate:     due,
		Status:      a.Status,
		Priority:    a.Priority,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func toAssignmentDTOs(assignments []domain.Assignment) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(assignments))
	for i := range assignments {
		dtos[i] = toAssignmentDTO(&assignments[i])
	}
	return dtos
}

// NoteDTO is the JSON representation of a note.
type NoteDTO struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toNoteDTO(n *domain.Note) NoteDTO {
	return NoteDTO{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

func toNoteDTOs(notes []domain.Note) []NoteDTO {
	dtos := make([]NoteDTO, len(notes))
	for i := range notes {
		dtos[i] = toNoteDTO(&notes[i])
	}
	return dtos
}
