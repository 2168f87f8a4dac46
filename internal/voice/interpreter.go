package voice

import "strings"

// rule pairs a predicate with the command it produces. Rules are evaluated
// in declaration order and the first match wins; order is significant
// because predicates overlap ("note" alone is weaker than "create note").
type rule struct {
	match func(cmd string) bool
	build func(cmd, page string) Command
}

var rules = []rule{
	{
		// Halt any in-progress speech. Checked first so "stop" always works.
		match: func(cmd string) bool {
			return strings.Contains(cmd, "stop") || strings.Contains(cmd, "quiet")
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentStop}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "menu") || strings.Contains(cmd, "help")
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentMenu, Speech: MenuText(page)}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "create assignment") ||
				strings.Contains(cmd, "new assignment") ||
				strings.Contains(cmd, "add assignment")
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentCreateAssignment, Speech: "Opening create assignment form."}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "open assignment") ||
				strings.Contains(cmd, "view assignment") ||
				strings.Contains(cmd, "go to assignment") ||
				cmd == "assignments"
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentOpenAssignments, Speech: "Opening assignments"}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "open note") ||
				strings.Contains(cmd, "my note") ||
				strings.Contains(cmd, "view note") ||
				cmd == "notes"
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentOpenNotes, Speech: "Opening notes"}
		},
	},
	{
		match: func(cmd string) bool {
			if strings.Contains(cmd, "create note") ||
				strings.Contains(cmd, "new note") ||
				strings.Contains(cmd, "add note") ||
				cmd == "note" {
				return true
			}
			return strings.Contains(cmd, "note") &&
				(strings.Contains(cmd, "create") || strings.Contains(cmd, "new") || strings.Contains(cmd, "add"))
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentCreateNote, Speech: "Opening create note form."}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "dashboard") ||
				cmd == "home" || cmd == "go home" ||
				strings.Contains(cmd, "open home")
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentOpenDashboard, Speech: "Opening dashboard"}
		},
	},
	{
		match: func(cmd string) bool {
			return cmd == "go back" || cmd == "back"
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentOpenDashboard, Speech: "Going to dashboard"}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "read page") || strings.Contains(cmd, "read this")
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentReadPage}
		},
	},
	{
		match: func(cmd string) bool {
			return strings.Contains(cmd, "logout") || strings.Contains(cmd, "sign out") ||
				strings.Contains(cmd, "log out")
		},
		build: func(cmd, page string) Command {
			return Command{Intent: IntentLogout, Speech: "Signing out."}
		},
	},
}

// Interpret resolves one utterance against the ordered rule list. Anything
// no rule claims becomes a page command carrying the normalized transcript,
// to be resolved by the current page's responder.
func Interpret(transcript, page string) Command {
	cmd := strings.ToLower(strings.TrimSpace(transcript))

	for _, r := range rules {
		if r.match(cmd) {
			return r.build(cmd, page)
		}
	}

	return Command{Intent: IntentPageCommand, Arg: cmd}
}
