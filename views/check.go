package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/theme"
	"github.com/CKPEIIKA/of-tui/internal/utils"
	"github.com/CKPEIIKA/of-tui/internal/verify"
)

// openCheckScreen shows the per-file results and starts a sweep if
// none has produced results yet.
func (m Model) openCheckScreen() (tea.Model, tea.Cmd) {
	m.screen = ScreenCheck
	if !m.runner.Running() && len(m.runner.Snapshot()) == 0 {
		m.runner.Start(m.files)
	}
	if m.runner.Running() {
		return m, tickEvery()
	}
	return m, nil
}

func (m Model) handleCheckKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if len(m.files) > 0 {
			m.checkIdx = (m.checkIdx + 1) % len(m.files)
		}
	case key.Matches(msg, m.keys.Up):
		if len(m.files) > 0 {
			m.checkIdx = (m.checkIdx - 1 + len(m.files)) % len(m.files)
		}
	case key.Matches(msg, m.keys.Top):
		m.checkIdx = 0
	case key.Matches(msg, m.keys.Bottom):
		m.checkIdx = utils.Max(0, len(m.files)-1)
	case msg.String() == "r":
		m.runner.Start(m.files)
		return m, tickEvery()
	case key.Matches(msg, m.keys.Select):
		if m.checkIdx < len(m.files) {
			m.detail = m.files[m.checkIdx]
			m.screen = ScreenCheckDetail
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenCaseMenu
		return m, nil
	}
	m.checkOff = reframeOffset(m.checkIdx, m.checkOff, len(m.files), m.checkVisibleRows())
	return m, nil
}

func (m Model) handleCheckDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
		m.screen = ScreenCheck
	}
	return m, nil
}

func (m Model) checkVisibleRows() int {
	return utils.Max(1, m.height-6)
}

func (m Model) renderCheck() string {
	var b strings.Builder
	b.WriteString(theme.RenderTitle(theme.IconCheck, "Check syntax"))
	b.WriteByte('\n')

	results := m.runner.Snapshot()
	visible := m.checkVisibleRows()
	end := utils.Min(len(m.files), m.checkOff+visible)
	for i := m.checkOff; i < end; i++ {
		file := m.files[i]
		label := verify.ResultLabel(results, file)
		line := utils.PadString(file.Rel, 36, "left") + styledLabel(label)
		if i == m.checkIdx {
			line = m.focusStyle.Render(utils.PadString(file.Rel, 36, "left")) + styledLabel(label)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(theme.DimStyle.Render("r rerun " + theme.BorderDividerV + " enter details"))
	return b.String()
}

func styledLabel(label string) string {
	switch {
	case strings.HasPrefix(label, "ERROR"):
		return theme.ErrorStyle.Render(label)
	case strings.HasPrefix(label, "Warn"):
		return theme.WarnStyle.Render(label)
	case label == verify.LabelNotChecked:
		return theme.DimStyle.Render(label)
	default:
		return theme.OkStyle.Render(label)
	}
}

func (m Model) renderCheckDetail() string {
	var b strings.Builder
	b.WriteString(theme.RenderTitle(theme.IconCheck, m.detail.Rel))
	b.WriteByte('\n')

	results := m.runner.Snapshot()
	result, ok := results[m.detail]
	if !ok || !result.Checked {
		b.WriteString(theme.DimStyle.Render("not checked yet"))
		b.WriteByte('\n')
		return b.String()
	}

	for _, line := range result.Errors {
		b.WriteString(theme.ErrorStyle.Render(theme.IconCross + " " + line))
		b.WriteByte('\n')
	}
	for _, line := range result.Warnings {
		b.WriteString(theme.WarnStyle.Render(theme.IconWarn + " " + line))
		b.WriteByte('\n')
	}
	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		b.WriteString(theme.OkStyle.Render(theme.IconCheck + " no findings"))
		b.WriteByte('\n')
	}
	return b.String()
}
