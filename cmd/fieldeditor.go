package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	editorTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5b8def"))
	editorCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	editorLabelStyle  = lipgloss.NewStyle().Width(22)
	editorErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	editorHelpStyle   = lipgloss.NewStyle().Faint(true)
)

const saveAndExit = "Save & Exit"

type editorField struct {
	label string
	get   func() string
	set   func(string) error
}

// fieldEditor is a small TUI listing label/value pairs; Enter edits the
// selected value, the last row saves.
type fieldEditor struct {
	title     string
	cursor    int
	fields    []editorField
	textInput textinput.Model
	editMode  bool
	status    string
	save      func() error
	saved     bool
}

func newFieldEditor(title string, fields []editorField, save func() error) *fieldEditor {
	return &fieldEditor{
		title:     title,
		fields:    fields,
		textInput: textinput.New(),
		save:      save,
	}
}

func (m *fieldEditor) Init() tea.Cmd {
	return nil
}

func (m *fieldEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editMode {
		switch key.String() {
		case "enter":
			if err := m.fields[m.cursor].set(strings.TrimSpace(m.textInput.Value())); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = ""
			m.editMode = false
			m.textInput.Blur()
		case "esc":
			m.status = ""
			m.editMode = false
			m.textInput.Blur()
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields) {
			m.cursor++
		}
	case "enter":
		if m.cursor == len(m.fields) {
			if err := m.save(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.saved = true
			return m, tea.Quit
		}
		m.editMode = true
		m.status = ""
		m.textInput.SetValue(m.fields[m.cursor].get())
		m.textInput.Focus()
	}
	return m, nil
}

func (m *fieldEditor) View() string {
	var s strings.Builder
	s.WriteString(editorTitleStyle.Render(m.title) + "\n\n")

	for i, f := range m.fields {
		s.WriteString(fmt.Sprintf("%s %s %s\n", m.pointer(i), editorLabelStyle.Render(f.label), f.get()))
	}
	s.WriteString(fmt.Sprintf("\n%s %s\n", m.pointer(len(m.fields)), saveAndExit))

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor].label + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString(editorHelpStyle.Render("(Enter to apply, ESC to cancel)") + "\n")
	} else {
		s.WriteString("\n" + editorHelpStyle.Render("↑/↓ move, Enter edit, q quit without saving") + "\n")
	}
	if m.status != "" {
		s.WriteString(editorErrorStyle.Render("❌ "+m.status) + "\n")
	}
	return s.String()
}

func (m *fieldEditor) pointer(i int) string {
	if m.cursor == i {
		return editorCursorStyle.Render("👉")
	}
	return "  "
}

// runFieldEditor runs the editor full screen and reports whether it saved.
func runFieldEditor(m *fieldEditor) (bool, error) {
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return false, fmt.Errorf("error running TUI: %w", err)
	}
	return m.saved, nil
}
