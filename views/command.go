package views

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/internal/theme"
)

var commandNames = []string{
	"check", "diag", "diagnostics", "view", "nofoam", "foam",
	"help", "quit",
}

func (m Model) openPrompt(kind Prompt) Model {
	m.prompt = kind
	m.promptInput.SetValue("")
	if kind == PromptSearch {
		m.promptInput.Placeholder = "search"
	} else {
		m.promptInput.Placeholder = "command"
	}
	m.promptInput.Focus()
	return m
}

func (m Model) closePrompt() Model {
	m.prompt = PromptNone
	m.promptInput.Blur()
	return m
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closePrompt(), nil

	case tea.KeyEnter:
		text := strings.TrimSpace(m.promptInput.Value())
		kind := m.prompt
		m = m.closePrompt()
		if kind == PromptSearch {
			return m.runSearch(text), nil
		}
		return m.runCommand(text)

	case tea.KeyTab:
		if m.prompt == PromptCommand {
			if matches := suggest(m.promptInput.Value()); len(matches) == 1 {
				m.promptInput.SetValue(matches[0])
				m.promptInput.CursorEnd()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m Model) runSearch(query string) Model {
	if m.screen != ScreenBrowser || m.nav == nil || query == "" {
		return m
	}
	if !m.nav.Search(query, false) {
		m.message = "no match: " + query
		return m
	}
	m.nav.Reframe(m.browserVisibleRows())
	return m
}

func (m Model) runCommand(command string) (tea.Model, tea.Cmd) {
	cmd := strings.TrimPrefix(strings.TrimSpace(command), ":")
	if cmd == "" {
		return m, nil
	}
	parts := strings.Fields(cmd)
	name := strings.ToLower(parts[0])

	switch strings.ReplaceAll(strings.ReplaceAll(name, "-", ""), "_", "") {
	case "q", "quit", "exit":
		return m, tea.Quit

	case "check", "syntax":
		return m.openCheckScreen()

	case "diag", "diagnostics":
		return m.openDiagnostics()

	case "view":
		if m.screen == ScreenCaseMenu && m.menuIdx < len(m.rows) {
			if row := m.rows[m.menuIdx]; row.fileIdx >= 0 {
				return m.openViewer(m.files[row.fileIdx])
			}
		}
		if m.screen == ScreenBrowser {
			return m.openViewer(m.file)
		}
		m.message = "view: select a file first"
		return m, nil

	case "nofoam", "foam":
		return m.toggleNoFoam(parts), nil

	case "help":
		m.showHelp = true
		return m, nil
	}

	m.message = "Unknown command: " + command
	return m, nil
}

// toggleNoFoam switches the session between foam and no-foam mode.
// An explicit on/off argument wins over the toggle.
func (m Model) toggleNoFoam(parts []string) Model {
	desired := !m.noFoam
	if len(parts) > 1 {
		switch strings.ToLower(parts[1]) {
		case "on", "true", "1", "yes":
			desired = true
		case "off", "false", "0", "no":
			desired = false
		}
	}
	if !desired {
		if dict, ok := m.engine.(*foam.DictEngine); ok && !dict.Available() {
			m.message = "Cannot enable foam mode: foamDictionary not found"
			m.noFoam = true
			return m
		}
	}
	m.noFoam = desired
	if m.noFoam && m.screen == ScreenBrowser {
		m.screen = ScreenCaseMenu
		m.nav = nil
		m.cache = nil
	}
	m.message = "Mode set to " + map[bool]string{true: "no-foam", false: "foam"}[m.noFoam] + "."
	return m
}

func suggest(prefix string) []string {
	prefix = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(prefix), ":"))
	var matches []string
	for _, name := range commandNames {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

func (m Model) renderPrompt() string {
	glyph := ":"
	if m.prompt == PromptSearch {
		glyph = "/"
	}
	line := theme.FooterKeyStyle.Render(glyph) + m.promptInput.View()
	if m.prompt == PromptCommand {
		if matches := suggest(m.promptInput.Value()); len(matches) > 0 {
			line += "\n" + theme.DimStyle.Render(strings.Join(matches, "  "))
		}
	}
	return line
}
