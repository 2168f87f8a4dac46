package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/saarthi-app/saarthi/internal/domain"
	"github.com/saarthi-app/saarthi/internal/service"
)

// AssignmentHandler handles assignment CRUD requests. Every route is behind
// RequireAuth; queries and writes are scoped to the acting user.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// HandleList returns the caller's assignments, newest first.
// GET /api/assignments
func (h *AssignmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	assignments, err := h.assignments.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list assignments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentDTOs(assignments))
}

// HandleCreate creates a new assignment for the caller.
// POST /api/assignments
// Request: {"title":"...","subject":"...","dueDate":"...","priority":"...","description":"..."}
func (h *AssignmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title       string  `json:"title"`
		Subject     string  `json:"subject"`
		DueDate     *string `json:"dueDate"`
		Priority    string  `json:"priority"`
		Description string  `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	due, ok := parseDueDate(req.DueDate)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid due date")
		return
	}

	assignment := &domain.Assignment{
		Title:       req.Title,
		Subject:     req.Subject,
		DueDate:     due,
		Priority:    req.Priority,
		Description: req.Description,
	}

	if err := h.assignments.Create(r.Context(), user.ID, assignment); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Please add all required fields (title, subject)")
			return
		}
		slog.Error("create assignment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, toAssignmentDTO(assignment))
}

// HandleUpdate applies a partial update to one of the caller's assignments.
// PUT /api/assignments/{id}
func (h *AssignmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Assignment not found")
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Subject     *string `json:"subject"`
		DueDate     *string `json:"dueDate"`
		Status      *string `json:"status"`
		Priority    *string `json:"priority"`
		Description *string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := service.AssignmentUpdate{
		Title:       req.Title,
		Subject:     req.Subject,
		Status:      req.Status,
		Priority:    req.Priority,
		Description: req.Description,
	}
	if req.DueDate != nil {
		due, ok := parseDueDate(req.DueDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid due date")
			return
		}
		update.DueDate = due
	}

	assignment, err := h.assignments.Update(r.Context(), user.ID, id, update)
	if err != nil {
		writeResourceError(w, err, "assignment", "update")
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentDTO(assignment))
}

// HandleDelete removes one of the caller's assignments.
// DELETE /api/assignments/{id}
func (h *AssignmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Assignment not found")
		return
	}

	if err := h.assignments.Delete(r.Context(), user.ID, id); err != nil {
		writeResourceError(w, err, "assignment", "delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "message": "Assignment deleted"})
}

// writeResourceError maps service errors on a single resource to the HTTP
// taxonomy: 404 unknown id, 403 not owner, 400 bad input, 500 otherwise.
func writeResourceError(w http.ResponseWriter, err error, resource, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, capitalize(resource)+" not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not authorized to "+op+" this "+resource)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(op+" "+resource, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// parseDueDate accepts RFC 3339 or bare dates; a nil or empty value means no
// due date.
func parseDueDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t, true
	}
	return nil, false
}
