// Package voice turns transcribed speech into discrete commands for the
// accessibility layer. Interpretation is pure string work: no network, no
// storage. Page responders produce a spoken reply plus an action the caller
// executes; the interpreter itself never mutates anything.
package voice

// Intent identifies what the user asked for.
type Intent string

const (
	IntentStop             Intent = "stop"
	IntentMenu             Intent = "menu"
	IntentCreateAssignment Intent = "create_assignment"
	IntentOpenAssignments  Intent = "open_assignments"
	IntentCreateNote       Intent = "create_note"
	IntentOpenNotes        Intent = "open_notes"
	IntentOpenDashboard    Intent = "open_dashboard"
	IntentReadPage         Intent = "read_page"
	IntentLogout           Intent = "logout"

	// IntentPageCommand is the fallthrough: the normalized transcript is
	// handed to the current page's responder.
	IntentPageCommand Intent = "page_command"
)

// Page identifies the screen the user is on. Some commands are only
// meaningful in context.
const (
	PageDashboard   = "dashboard"
	PageAssignments = "assignments"
	PageNotes       = "notes"
)

// Command is the ephemeral result of interpreting one utterance.
type Command struct {
	Intent Intent
	// Arg carries the normalized transcript for page commands.
	Arg string
	// Speech is what to say back to the user, empty when the caller decides.
	Speech string
}

// ActionType classifies what a page responder wants the caller to do.
type ActionType string

const (
	ActionNone       ActionType = "none"
	ActionOpenCreate ActionType = "open_create"
	ActionSetStatus  ActionType = "set_status"
	ActionDelete     ActionType = "delete"
)

// Action is a mutation or UI request produced by a page responder. The
// responder never applies it; the caller does.
type Action struct {
	Type     ActionType
	TargetID int64
	Status   string
}

// Response is a page responder's result: something to say and, optionally,
// something to do.
type Response struct {
	Speech string
	Action Action
}
