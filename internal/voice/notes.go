package voice

import (
	"fmt"
	"strings"
)

// NoteItem is the view of a note the responder works with. List order
// decides fuzzy-match tie-breaks, as with assignments.
type NoteItem struct {
	ID      int64
	Title   string
	Content string
}

// RespondNotes resolves a page command on the notes page. Deletions are
// returned as Actions; the responder itself never mutates.
func RespondNotes(cmd string, notes []NoteItem) Response {
	switch {
	case cmd == "read_page" || strings.Contains(cmd, "list all") ||
		strings.Contains(cmd, "read all") || strings.Contains(cmd, "list notes"):
		return Response{Speech: notesSummary(notes)}

	case strings.HasPrefix(cmd, "delete "):
		title := strings.TrimSpace(strings.TrimPrefix(cmd, "delete"))
		idx, matches := MatchTitle(title, noteTitles(notes))
		if idx == -1 {
			return Response{Speech: `Note not found. Say "list notes" to hear your notes.`}
		}
		speech := fmt.Sprintf("Deleting note: %s", notes[idx].Title)
		if matches > 1 {
			speech += ". Other notes also match that title."
		}
		return Response{
			Speech: speech,
			Action: Action{Type: ActionDelete, TargetID: notes[idx].ID},
		}

	case strings.Contains(cmd, "create") || strings.Contains(cmd, "add"):
		return Response{
			Speech: "Opening create note form. Enter a title and content.",
			Action: Action{Type: ActionOpenCreate},
		}

	case len(cmd) > 2:
		idx, matches := MatchTitle(cmd, noteTitles(notes))
		if idx == -1 {
			return Response{Speech: fmt.Sprintf(`Note "%s" not found. Say "list notes" to hear your notes.`, cmd)}
		}
		speech := fmt.Sprintf(`%s. %s. Say "delete %s" to delete this note.`,
			notes[idx].Title, notes[idx].Content, notes[idx].Title)
		if matches > 1 {
			speech += " Other notes also match that title."
		}
		return Response{Speech: speech}

	default:
		return Response{Speech: `Command not recognized. Say "menu" to hear available options.`}
	}
}

func notesSummary(notes []NoteItem) string {
	if len(notes) == 0 {
		return `You have no notes. Say "create note" to add a new one.`
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You have %d notes. ", len(notes))
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s. ", i+1, n.Title)
	}
	b.WriteString("Say a note title to hear its content.")
	return b.String()
}

func noteTitles(notes []NoteItem) []string {
	titles := make([]string, len(notes))
	for i, n := range notes {
		titles[i] = n.Title
	}
	return titles
}
