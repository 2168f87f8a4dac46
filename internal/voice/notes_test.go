package voice_test

import (
	"strings"
	"testing"

	"github.com/saarthi-app/saarthi/internal/voice"
)

func testNotes() []voice.NoteItem {
	return []voice.NoteItem{
		{ID: 2, Title: "Physics Formulas", Content: "Force equals mass times acceleration."},
		{ID: 1, Title: "Exam Schedule", Content: "Math on Monday, History on Thursday."},
	}
}

func TestRespondNotes_ReadPage(t *testing.T) {
	resp := voice.RespondNotes("read_page", testNotes())

	if !strings.Contains(resp.Speech, "You have 2 notes") {
		t.Fatalf("unexpected summary: %q", resp.Speech)
	}
	if !strings.Contains(resp.Speech, "1. Physics Formulas") || !strings.Contains(resp.Speech, "2. Exam Schedule") {
		t.Fatalf("summary missing titles: %q", resp.Speech)
	}
}

func TestRespondNotes_ReadPage_Empty(t *testing.T) {
	resp := voice.RespondNotes("read_page", nil)
	if !strings.Contains(resp.Speech, "no notes") {
		t.Fatalf("unexpected speech: %q", resp.Speech)
	}
}

func TestRespondNotes_DeleteByTitle(t *testing.T) {
	resp := voice.RespondNotes("delete exam schedule", testNotes())

	if resp.Action.Type != voice.ActionDelete || resp.Action.TargetID != 1 {
		t.Fatalf("expected delete action for note 1, got %+v", resp.Action)
	}
	if !strings.Contains(resp.Speech, "Deleting note: Exam Schedule") {
		t.Fatalf("unexpected speech: %q", resp.Speech)
	}
}

func TestRespondNotes_DeleteByTitle_NotFound(t *testing.T) {
	resp := voice.RespondNotes("delete shopping list", testNotes())

	if resp.Action.Type == voice.ActionDelete {
		t.Fatal("no delete action expected for unknown title")
	}
	if !strings.Contains(resp.Speech, "Note not found") {
		t.Fatalf("unexpected speech: %q", resp.Speech)
	}
}

func TestRespondNotes_TitleLookupReadsContent(t *testing.T) {
	resp := voice.RespondNotes("physics", testNotes())

	if !strings.Contains(resp.Speech, "Force equals mass times acceleration") {
		t.Fatalf("expected note content read back, got %q", resp.Speech)
	}
	if !strings.Contains(resp.Speech, `Say "delete Physics Formulas"`) {
		t.Fatalf("expected delete hint, got %q", resp.Speech)
	}
	if resp.Action.Type == voice.ActionDelete {
		t.Fatal("lookup must not delete")
	}
}

func TestRespondNotes_TitleLookup_NotFound(t *testing.T) {
	resp := voice.RespondNotes("biology", testNotes())
	if !strings.Contains(resp.Speech, "not found") {
		t.Fatalf("unexpected speech: %q", resp.Speech)
	}
}

func TestRespondNotes_Create(t *testing.T) {
	resp := voice.RespondNotes("create_note", testNotes())
	if resp.Action.Type != voice.ActionOpenCreate {
		t.Fatalf("expected open_create action, got %+v", resp.Action)
	}
}
