package voice

import (
	"fmt"
	"strings"
	"time"
)

// AssignmentItem is the view of an assignment the responder works with.
// Callers pass their list in the order it is shown on screen (newest first);
// that order also decides fuzzy-match tie-breaks.
type AssignmentItem struct {
	ID        int64
	Title     string
	Subject   string
	DueDate   *time.Time
	Completed bool
}

// RespondAssignments resolves a page command on the assignments page. It is
// a pure function: any mutation is returned as an Action for the caller to
// execute.
func RespondAssignments(cmd string, items []AssignmentItem) Response {
	pending := filterAssignments(items, false)
	completed := filterAssignments(items, true)

	switch {
	case cmd == "read_page" || strings.Contains(cmd, "list all") || strings.Contains(cmd, "read all"):
		return Response{Speech: assignmentsSummary(items, pending, completed)}

	case strings.Contains(cmd, "mark complete") || strings.Contains(cmd, "complete assignment"):
		if len(pending) == 0 {
			return Response{Speech: "No pending assignments to mark as complete."}
		}
		first := pending[0]
		return Response{
			Speech: fmt.Sprintf("Marking %s as complete.", first.Title),
			Action: Action{Type: ActionSetStatus, TargetID: first.ID, Status: "completed"},
		}

	case strings.Contains(cmd, "mark pending") || strings.Contains(cmd, "undo complete"):
		if len(completed) == 0 {
			return Response{Speech: "No completed assignments to mark as pending."}
		}
		first := completed[0]
		return Response{
			Speech: fmt.Sprintf("Marking %s as pending.", first.Title),
			Action: Action{Type: ActionSetStatus, TargetID: first.ID, Status: "pending"},
		}

	case strings.Contains(cmd, "complete "):
		title := strings.TrimSpace(strings.Replace(cmd, "complete", "", 1))
		idx, matches := MatchTitle(title, assignmentTitles(items))
		if idx == -1 {
			return Response{Speech: `Assignment not found. Say "list all" to hear your assignments.`}
		}
		target := items[idx]
		if target.Completed {
			return Response{Speech: fmt.Sprintf("%s is already completed.", target.Title)}
		}
		speech := fmt.Sprintf("Marking %s as complete.", target.Title)
		if matches > 1 {
			speech += " Other assignments also match that title."
		}
		return Response{
			Speech: speech,
			Action: Action{Type: ActionSetStatus, TargetID: target.ID, Status: "completed"},
		}

	case strings.Contains(cmd, "create") || strings.Contains(cmd, "add"):
		return Response{
			Speech: "Opening create assignment form. Please fill in the title and subject.",
			Action: Action{Type: ActionOpenCreate},
		}

	case len(cmd) > 2:
		idx, matches := MatchTitle(cmd, assignmentTitles(items))
		if idx == -1 {
			return Response{Speech: fmt.Sprintf(`Assignment "%s" not found. Say "list all" to hear your assignments.`, cmd)}
		}
		speech := describeAssignment(items[idx])
		if matches > 1 {
			speech += " Other assignments also match that title."
		}
		return Response{Speech: speech}

	default:
		return Response{Speech: `Command not recognized. Say "menu" to hear available options.`}
	}
}

func assignmentsSummary(items, pending, completed []AssignmentItem) string {
	if len(items) == 0 {
		return `You have no assignments. Say "create assignment" to add a new one.`
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You have %d pending and %d completed assignments. ", len(pending), len(completed))
	for i, a := range pending {
		fmt.Fprintf(&b, "%d. %s, %s. ", i+1, a.Title, dueText(a.DueDate))
	}
	b.WriteString(`Say an assignment title to hear more details. Say "mark complete" to complete first pending.`)
	return b.String()
}

func describeAssignment(a AssignmentItem) string {
	status := "pending"
	if a.Completed {
		status = "completed"
	}
	speech := fmt.Sprintf("%s. %s. %s. Status: %s.", a.Title, a.Subject, dueText(a.DueDate), status)
	if a.Completed {
		speech += " This assignment is already completed."
	} else {
		speech += fmt.Sprintf(` Say "complete %s" to mark it complete.`, a.Title)
	}
	return speech
}

func dueText(due *time.Time) string {
	if due == nil {
		return "no due date"
	}
	return "due " + due.Format("January 2")
}

func filterAssignments(items []AssignmentItem, completed bool) []AssignmentItem {
	var out []AssignmentItem
	for _, a := range items {
		if a.Completed == completed {
			out = append(out, a)
		}
	}
	return out
}

func assignmentTitles(items []AssignmentItem) []string {
	titles := make([]string, len(items))
	for i, a := range items {
		titles[i] = a.Title
	}
	return titles
}
