package voice

import (
	"fmt"
	"strings"
)

// RespondDashboard resolves a page command on the dashboard. The dashboard
// only summarizes assignment counts; navigation and creation are claimed by
// the interpreter before a command reaches this responder.
func RespondDashboard(cmd string, pending, completed int) Response {
	switch {
	case cmd == "read_page":
		return Response{Speech: fmt.Sprintf(
			`Student Dashboard. You have %d pending assignments and %d completed assignments. `+
				`Say "open assignments" to view them or say "create assignment" to add new.`,
			pending, completed)}

	case strings.Contains(cmd, "how many") || strings.Contains(cmd, "status"):
		return Response{Speech: fmt.Sprintf("You have %d pending assignments and %d completed.", pending, completed)}

	default:
		return Response{Speech: `Command not recognized. Say "menu" to hear available options.`}
	}
}
