package voice

import "strings"

// MenuText builds the spoken help menu for a page. The base commands are
// always announced; assignment and note pages add their contextual commands.
func MenuText(page string) string {
	var b strings.Builder
	b.WriteString(`Available commands: ` +
		`Say "create assignment" to add a new assignment. ` +
		`Say "open assignments" to view your assignments. ` +
		`Say "open notes" or "my notes" to view your notes. ` +
		`Say "create note" to add a new note. ` +
		`Say "open dashboard" to go to the dashboard. ` +
		`Say "read page" to hear the current page content. ` +
		`Say "go back" to navigate back. ` +
		`Say "logout" or "sign out" to logout.`)

	if page == PageAssignments {
		b.WriteString(` Say "mark complete" to complete first pending assignment. Say "mark pending" to undo.`)
	}
	if page == PageNotes {
		b.WriteString(` Say a note title to hear its content. Say "delete" followed by the title to delete a note.`)
	}

	b.WriteString(` Say "stop speaking" to stop audio.`)
	return b.String()
}
