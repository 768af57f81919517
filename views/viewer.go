package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/internal/theme"
)

// openViewer loads a file into the read-only viewer with syntax
// highlighting. Dictionary files read well under the C++ lexer.
func (m Model) openViewer(file foam.CaseFile) (tea.Model, tea.Cmd) {
	content, err := os.ReadFile(file.Path())
	if err != nil {
		m.message = fmt.Sprintf("cannot read %s: %v", file.Rel, err)
		return m, nil
	}
	m.viewerTitle = file.Rel
	m.viewer.SetContent(highlight(string(content)))
	m.viewer.GotoTop()
	m.screen = ScreenViewer
	return m, nil
}

func (m Model) handleViewerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenCaseMenu
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.viewer.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewer.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.viewer.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewer.GotoBottom()
	default:
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) renderViewer() string {
	return theme.RenderTitle(theme.IconFile, m.viewerTitle) + "\n" + m.viewer.View()
}

// highlight runs the content through chroma, falling back to the raw
// text when highlighting fails.
func highlight(content string) string {
	lexer := lexers.Get("cpp")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get("native")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return content
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}
	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return content
	}
	return b.String()
}
