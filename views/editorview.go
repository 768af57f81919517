package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/editor"
	"github.com/CKPEIIKA/of-tui/internal/theme"
)

func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.edit.Cancel()
		return m.closeEditor("edit cancelled"), nil

	case tea.KeyEnter:
		ok, errText := m.edit.Save()
		if !ok {
			m.editNote = errText
			return m, nil
		}
		return m.closeEditor("saved " + m.editKey), nil

	case tea.KeyBackspace:
		m.edit.Backspace()
	case tea.KeyLeft:
		m.edit.CursorLeft()
	case tea.KeyRight:
		m.edit.CursorRight()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.edit.Insert(r)
		}
	case tea.KeySpace:
		m.edit.Insert(' ')
	}
	m.editNote = ""
	return m, nil
}

func (m Model) closeEditor(note string) Model {
	m.message = note
	m.edit = nil
	m.editNote = ""
	m.screen = ScreenBrowser
	return m
}

func (m Model) renderEditor() string {
	var b strings.Builder
	b.WriteString(theme.RenderTitle(theme.IconFile, m.file.Rel+" "+theme.IconChevronRight+" "+m.editKey))
	b.WriteByte('\n')

	b.WriteString(renderEditBuffer(m.edit))
	b.WriteByte('\n')

	if m.editNote != "" {
		b.WriteString(theme.ErrorStyle.Render(m.editNote))
		b.WriteByte('\n')
	} else if advice := m.edit.Advice(); advice != "" {
		b.WriteString(theme.WarnStyle.Render(advice))
		b.WriteByte('\n')
	} else {
		b.WriteString(theme.OkStyle.Render("ok"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(theme.DimStyle.Render("enter save " + theme.BorderDividerV + " esc cancel"))
	return b.String()
}

// renderEditBuffer draws the buffer with a block cursor.
func renderEditBuffer(s *editor.Session) string {
	runes := []rune(s.Text())
	cursor := s.Cursor()

	before := string(runes[:cursor])
	under := " "
	after := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		after = string(runes[cursor+1:])
	}

	return theme.InputFocusedStyle.Render(
		before + theme.MenuItemSelectedStyle.Render(under) + after)
}
