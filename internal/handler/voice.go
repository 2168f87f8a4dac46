package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/saarthi-app/saarthi/internal/domain"
	"github.com/saarthi-app/saarthi/internal/service"
	"github.com/saarthi-app/saarthi/internal/voice"
)

// VoiceHandler runs the voice-command interpreter against the caller's own
// data and applies any resulting mutation through the owning services.
type VoiceHandler struct {
	assignments *service.AssignmentService
	notes       *service.NoteService
}

// NewVoiceHandler creates a new VoiceHandler.
func NewVoiceHandler(assignments *service.AssignmentService, notes *service.NoteService) *VoiceHandler {
	return &VoiceHandler{assignments: assignments, notes: notes}
}

// VoiceCommandDTO is the JSON result of interpreting one utterance.
type VoiceCommandDTO struct {
	Intent string `json:"intent"`
	Arg    string `json:"arg,omitempty"`
	Speech string `json:"speech,omitempty"`
	Action string `json:"action,omitempty"`
}

// HandleCommand interprets a transcript in the context of the caller's page.
// Page-scoped commands are resolved against the caller's own assignments or
// notes; set-status and delete actions are executed before responding.
// POST /api/voice/command
// Request:  {"transcript":"...","page":"assignments"}
// Response: {"intent":"...","speech":"...","action":"..."}
func (h *VoiceHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Transcript string `json:"transcript"`
		Page       string `json:"page"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := voice.Interpret(req.Transcript, req.Page)
	dto := VoiceCommandDTO{Intent: string(cmd.Intent), Arg: cmd.Arg, Speech: cmd.Speech}

	// Read-page and unclaimed commands belong to the current page.
	if cmd.Intent == voice.IntentReadPage || cmd.Intent == voice.IntentPageCommand {
		arg := cmd.Arg
		if cmd.Intent == voice.IntentReadPage {
			arg = "read_page"
		}

		resp, err := h.respond(r, user.ID, req.Page, arg)
		if err != nil {
			slog.Error("voice page command", "page", req.Page, "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
			return
		}
		dto.Speech = resp.Speech
		if resp.Action.Type != "" && resp.Action.Type != voice.ActionNone {
			dto.Action = string(resp.Action.Type)
		}
	}

	writeJSON(w, http.StatusOK, dto)
}

func (h *VoiceHandler) respond(r *http.Request, userID int64, page, arg string) (voice.Response, error) {
	ctx := r.Context()

	switch page {
	case voice.PageDashboard:
		assignments, err := h.assignments.List(ctx, userID)
		if err != nil {
			return voice.Response{}, err
		}
		var pending, completed int
		for _, a := range assignments {
			if a.Status == domain.StatusCompleted {
				completed++
			} else {
				pending++
			}
		}
		return voice.RespondDashboard(arg, pending, completed), nil

	case voice.PageAssignments:
		assignments, err := h.assignments.List(ctx, userID)
		if err != nil {
			return voice.Response{}, err
		}
		items := make([]voice.AssignmentItem, len(assignments))
		for i, a := range assignments {
			items[i] = voice.AssignmentItem{
				ID:        a.ID,
				Title:     a.Title,
				Subject:   a.Subject,
				DueDate:   a.DueDate,
				Completed: a.Status == domain.StatusCompleted,
			}
		}

		resp := voice.RespondAssignments(arg, items)
		if resp.Action.Type == voice.ActionSetStatus {
			status := resp.Action.Status
			if _, err := h.assignments.Update(ctx, userID, resp.Action.TargetID, service.AssignmentUpdate{Status: &status}); err != nil {
				return voice.Response{}, err
			}
		}
		return resp, nil

	case voice.PageNotes:
		notes, err := h.notes.List(ctx, userID)
		if err != nil {
			return voice.Response{}, err
		}
		items := make([]voice.NoteItem, len(notes))
		for i, n := range notes {
			items[i] = voice.NoteItem{ID: n.ID, Title: n.Title, Content: n.Content}
		}

		resp := voice.RespondNotes(arg, items)
		if resp.Action.Type == voice.ActionDelete {
			if err := h.notes.Delete(ctx, userID, resp.Action.TargetID); err != nil {
				// The note may have been removed between listing and delete.
				if !errors.Is(err, domain.ErrNotFound) {
					return voice.Response{}, err
				}
			}
		}
		return resp, nil

	default:
		return voice.Response{Speech: `Command not recognized. Say "menu" to hear available options.`}, nil
	}
}
