package views

import (
	"os"
	"strings"

	"github.com/CKPEIIKA/of-tui/internal/theme"
)

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch m.screen {
	case ScreenCaseMenu:
		body = m.renderCaseMenu()
	case ScreenBrowser:
		body = m.renderBrowser()
	case ScreenEditor:
		body = m.renderEditor()
	case ScreenCheck:
		body = m.renderCheck()
	case ScreenCheckDetail:
		body = m.renderCheckDetail()
	case ScreenViewer:
		body = m.renderViewer()
	case ScreenDiagnostics:
		body = m.renderDiagnostics()
	}

	footer := m.renderStatus()
	if m.prompt != PromptNone {
		footer = m.renderPrompt()
	}
	return body + "\n" + footer
}

// renderStatus composes the bottom bar: screen context, check
// progress while a sweep runs, and the session mode.
func (m Model) renderStatus() string {
	items := []string{}
	if base := m.baseStatus(); base != "" {
		items = append(items, base)
	}
	if check := m.runner.StatusLine(); check != "" {
		items = append(items, check)
	}
	items = append(items, m.modeStatus())
	bar := theme.RenderStatusBar(items...)

	if m.message != "" {
		return theme.StatusWarningStyle.Render(m.message) + "\n" + bar
	}
	return bar
}

func (m Model) baseStatus() string {
	switch m.screen {
	case ScreenCaseMenu:
		return "select a file"
	case ScreenBrowser:
		return m.file.Rel
	case ScreenEditor:
		return "editing " + m.editKey
	case ScreenCheck, ScreenCheckDetail:
		return "Check syntax"
	case ScreenViewer:
		return m.viewerTitle
	case ScreenDiagnostics:
		return "Diagnostics"
	}
	return ""
}

func (m Model) modeStatus() string {
	if m.noFoam {
		return "mode: no-foam"
	}
	if wmDir := os.Getenv("WM_PROJECT_DIR"); wmDir != "" {
		return "mode: foam (" + wmDir + ")"
	}
	return "mode: foam"
}

func (m Model) renderHelp() string {
	lines := []string{
		theme.RenderTitle(theme.IconHelp, "of-tui "+m.version),
		"",
		helpLine(m.keys.Up.Help().Key, "move up"),
		helpLine(m.keys.Down.Help().Key, "move down"),
		helpLine(m.keys.Select.Help().Key, "open / descend / edit"),
		helpLine(m.keys.Back.Help().Key, "back / ascend"),
		helpLine("e", "edit dictionary entry as raw text"),
		helpLine(m.keys.Top.Help().Key+" / "+m.keys.Bottom.Help().Key, "jump to top / bottom"),
		helpLine(m.keys.Search.Help().Key, "search keys, values and comments"),
		helpLine(m.keys.Command.Help().Key, "command line"),
		"",
		theme.SubtitleStyle.Render("Commands: :check  :diag  :view  :nofoam  :quit"),
		"",
		theme.DimStyle.Render("press any key to close"),
	}
	return strings.Join(lines, "\n")
}

func helpLine(keys, desc string) string {
	return "  " + theme.FooterKeyStyle.Render(keys) + "  " + theme.FooterDescStyle.Render(desc)
}
