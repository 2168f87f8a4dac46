package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/saarthi-app/saarthi/internal/domain"
	"github.com/saarthi-app/saarthi/internal/service"
)

// NoteHandler handles note CRUD requests behind RequireAuth.
type NoteHandler struct {
	notes *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// HandleList returns the caller's notes, newest first.
// GET /api/notes
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	notes, err := h.notes.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list notes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTOs(notes))
}

// HandleCreate creates a new note for the caller.
// POST /api/notes
// Request: {"title":"...","content":"..."}
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note := &domain.Note{Title: req.Title, Content: req.Content}
	if err := h.notes.Create(r.Context(), user.ID, note); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Please add all required fields (title, content)")
			return
		}
		slog.Error("create note", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, toNoteDTO(note))
}

// HandleUpdate applies a partial update to one of the caller's notes.
// PUT /api/notes/{id}
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.notes.Update(r.Context(), user.ID, id, service.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeResourceError(w, err, "note", "update")
		return
	}

	writeJSON(w, http.StatusOK, toNoteDTO(note))
}

// HandleDelete removes one of the caller's notes.
// DELETE /api/notes/{id}
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := h.notes.Delete(r.Context(), user.ID, id); err != nil {
		writeResourceError(w, err, "note", "delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "message": "Note deleted"})
}
