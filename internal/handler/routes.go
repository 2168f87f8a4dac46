package handler

import (
	"net/http"

	"github.com/saarthi-app/saarthi/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, assignments *service.AssignmentService, notes *service.NoteService, environment string) {
	authHandler := NewAuthHandler(auth)
	assignmentHandler := NewAssignmentHandler(assignments)
	noteHandler := NewNoteHandler(notes)
	voiceHandler := NewVoiceHandler(assignments, notes)
	healthHandler := NewHealthHandler(environment)

	mux.HandleFunc("GET /api/health", healthHandler.HandleHealth)

	mux.HandleFunc("POST /api/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.Handle("GET /api/assignments", protected(assignmentHandler.HandleList))
	mux.Handle("POST /api/assignments", protected(assignmentHandler.HandleCreate))
	mux.Handle("PUT /api/assignments/{id}", protected(assignmentHandler.HandleUpdate))
	mux.Handle("DELETE /api/assignments/{id}", protected(assignmentHandler.HandleDelete))

	mux.Handle("GET /api/notes", protected(noteHandler.HandleList))
	mux.Handle("POST /api/notes", protected(noteHandler.HandleCreate))
	mux.Handle("PUT /api/notes/{id}", protected(noteHandler.HandleUpdate))
	mux.Handle("DELETE /api/notes/{id}", protected(noteHandler.HandleDelete))

	mux.Handle("POST /api/voice/command", protected(voiceHandler.HandleCommand))
}
