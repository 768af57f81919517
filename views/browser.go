package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/editor"
	"github.com/CKPEIIKA/of-tui/internal/theme"
	"github.com/CKPEIIKA/of-tui/internal/utils"
	"github.com/CKPEIIKA/of-tui/internal/validation"
)

func (m Model) handleBrowserKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp()
	case key.Matches(msg, m.keys.Top):
		m.nav.MoveTop()
	case key.Matches(msg, m.keys.Bottom):
		m.nav.MoveBottom()
	case key.Matches(msg, m.keys.Search):
		return m.openPrompt(PromptSearch), nil
	case key.Matches(msg, m.keys.Select):
		return m.selectEntry(false)
	case msg.String() == "e":
		// Edit a dictionary-valued entry's raw text anyway.
		return m.selectEntry(true)
	case key.Matches(msg, m.keys.Back):
		if !m.nav.Ascend() {
			m.screen = ScreenCaseMenu
			m.cache = nil
			m.nav = nil
			return m, nil
		}
	}
	m.nav.Reframe(m.browserVisibleRows())
	return m, nil
}

// selectEntry descends into a sub-dictionary or opens the editor.
// forceEdit skips the descend and edits the raw text of the entry.
func (m Model) selectEntry(forceEdit bool) (tea.Model, tea.Cmd) {
	meta := m.nav.CurrentMetadata()
	if meta.IsDict() && !forceEdit {
		m.nav.Descend()
		m.nav.Reframe(m.browserVisibleRows())
		return m, nil
	}
	m.editKey = m.nav.FullKey()
	m.edit = editor.New(m.engine, m.cache, m.file, m.editKey, meta)
	m.editNote = ""
	m.screen = ScreenEditor
	return m, nil
}

func (m Model) browserVisibleRows() int {
	// Header, detail panel and status take the rest.
	return utils.Max(1, m.height-14)
}

func (m Model) renderBrowser() string {
	var b strings.Builder
	title := m.file.Rel
	if base := m.nav.BaseKey(); base != "" {
		title += " " + theme.IconChevronRight + " " + base
	}
	b.WriteString(theme.RenderTitle(theme.IconDictionary, title))
	b.WriteByte('\n')

	keys := m.nav.Keys()
	visible := m.browserVisibleRows()
	end := utils.Min(len(keys), m.nav.ScrollOffset()+visible)
	for i := m.nav.ScrollOffset(); i < end; i++ {
		b.WriteString(m.renderBrowserRow(keys[i], i == m.nav.Index()))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.renderEntryDetail())
	return b.String()
}

func (m Model) renderBrowserRow(keyName string, focused bool) string {
	meta := m.cache.Resolve(m.nav.FullKeyOf(keyName))
	label := keyName
	if meta.IsDict() {
		label = theme.IconDictionary + " " + keyName
	} else {
		label = keyName + " = " + utils.TruncateString(meta.Value, 40)
	}
	if focused {
		return m.focusStyle.Render(label)
	}
	return theme.MenuItemStyle.Render(label)
}

// renderEntryDetail shows the selected entry's type, comments and
// info lines below the list.
func (m Model) renderEntryDetail() string {
	meta := m.nav.CurrentMetadata()
	var lines []string

	typeLine := "type: " + meta.TypeLabel
	switch meta.TypeLabel {
	case validation.TypeError:
		lines = append(lines, theme.ErrorStyle.Render(typeLine))
	case validation.TypeEnum:
		lines = append(lines, theme.WarnStyle.Render(typeLine))
	default:
		lines = append(lines, theme.DimStyle.Render(typeLine))
	}

	if meta.Value == "" && !meta.IsDict() {
		lines = append(lines, theme.DimStyle.Render("(empty value)"))
	}
	for _, comment := range meta.Comments {
		lines = append(lines, theme.DimStyle.Render(comment))
	}
	for _, info := range meta.InfoLines {
		lines = append(lines, theme.SubtitleStyle.Render(info))
	}
	return strings.Join(lines, "\n")
}
