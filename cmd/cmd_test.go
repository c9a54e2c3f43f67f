package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nakachan-ing/dayspark/internal/model"
)

func keys(m *fieldEditor, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestFieldEditorEditAndSave(t *testing.T) {
	settings := model.DefaultSettings()
	saved := model.Settings{}
	editor := newFieldEditor("test", settingsFields(&settings), func() error {
		saved = settings
		return nil
	})

	keys(editor,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if !editor.editMode {
		t.Fatalf("editMode = false after Enter")
	}
	if editor.textInput.Value() != "#ffcc00" {
		t.Fatalf("input = %q, want current accent color", editor.textInput.Value())
	}

	editor.textInput.SetValue("#000000")
	keys(editor, tea.KeyMsg{Type: tea.KeyEnter})
	if editor.editMode || settings.AccentColor != "#000000" {
		t.Fatalf("accent = %q editMode = %v", settings.AccentColor, editor.editMode)
	}

	for i := 0; i < len(editor.fields); i++ {
		keys(editor, tea.KeyMsg{Type: tea.KeyDown})
	}
	if cmd := keys(editor, tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatalf("Enter on Save & Exit returned no quit command")
	}
	if !editor.saved || saved.AccentColor != "#000000" {
		t.Fatalf("saved = %v %+v", editor.saved, saved)
	}
	if !strings.Contains(editor.View(), saveAndExit) {
		t.Fatalf("view is missing the save row")
	}
}

func TestFieldEditorRejectsBadValue(t *testing.T) {
	config := model.DefaultConfig()
	editor := newFieldEditor("test", configFields(&config), func() error { return nil })

	for i, f := range editor.fields {
		if f.label == "Backup.Time" {
			editor.cursor = i
		}
	}
	keys(editor, tea.KeyMsg{Type: tea.KeyEnter})
	editor.textInput.SetValue("25:99")
	keys(editor, tea.KeyMsg{Type: tea.KeyEnter})

	if !editor.editMode || editor.status == "" {
		t.Fatalf("bad time accepted: editMode = %v status = %q", editor.editMode, editor.status)
	}
	if config.Backup.Time != "23:30" {
		t.Fatalf("Backup.Time = %q, want unchanged", config.Backup.Time)
	}

	keys(editor, tea.KeyMsg{Type: tea.KeyEsc})
	if editor.editMode || editor.status != "" {
		t.Fatalf("Esc did not leave edit mode")
	}
}

func TestFieldEditorSaveError(t *testing.T) {
	settings := model.DefaultSettings()
	editor := newFieldEditor("test", settingsFields(&settings), func() error {
		return errors.New("invalid input: PrimaryColor failed iscolor")
	})
	editor.cursor = len(editor.fields)
	keys(editor, tea.KeyMsg{Type: tea.KeyEnter})
	if editor.saved || !strings.Contains(editor.status, "iscolor") {
		t.Fatalf("saved = %v status = %q", editor.saved, editor.status)
	}
}

func TestConfigFieldsEngine(t *testing.T) {
	config := model.DefaultConfig()
	var engine editorField
	for _, f := range configFields(&config) {
		if f.label == "Store.Engine" {
			engine = f
		}
	}
	if err := engine.set("SQLite"); err != nil {
		t.Fatalf("set(SQLite) error = %v", err)
	}
	if config.Store.Engine != "sqlite" {
		t.Fatalf("Engine = %q", config.Store.Engine)
	}
	if err := engine.set("mongo"); err == nil {
		t.Fatalf("set(mongo) error = nil")
	}
}

func TestMemoriesMarkdown(t *testing.T) {
	if md := memoriesMarkdown(nil); !strings.Contains(md, "Nothing here yet") {
		t.Fatalf("empty feed = %q", md)
	}
	feed := []model.Memory{
		{Kind: model.KindMood, Text: "Felt 🙂 Good", Date: time.Date(2024, 2, 3, 14, 5, 0, 0, time.Local)},
		{Kind: model.KindNote, Text: "hello", Date: time.Date(2024, 2, 3, 9, 0, 0, 0, time.Local)},
	}
	md := memoriesMarkdown(feed)
	if !strings.Contains(md, "😊 Felt 🙂 Good") || !strings.Contains(md, "📝 hello") {
		t.Fatalf("markdown = %q", md)
	}
	if !strings.Contains(md, "Feb 3 2024, 2:05 PM") {
		t.Fatalf("markdown is missing the date: %q", md)
	}
}

func TestDisplayAddr(t *testing.T) {
	tests := map[string]string{
		":3000":          ":3000",
		"127.0.0.1:8080": ":8080",
		"8080":           ":8080",
	}
	for in, want := range tests {
		if got := displayAddr(in); got != want {
			t.Fatalf("displayAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLimitRows(t *testing.T) {
	items := []int{1, 2, 3}
	if got := limitRows(items, 0); len(got) != 3 {
		t.Fatalf("limitRows(0) = %v", got)
	}
	if got := limitRows(items, 2); len(got) != 2 {
		t.Fatalf("limitRows(2) = %v", got)
	}
	if got := limitRows(items, 5); len(got) != 3 {
		t.Fatalf("limitRows(5) = %v", got)
	}
}
