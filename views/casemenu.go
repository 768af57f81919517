package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/browser"
	"github.com/CKPEIIKA/of-tui/internal/entrymeta"
	"github.com/CKPEIIKA/of-tui/internal/theme"
	"github.com/CKPEIIKA/of-tui/internal/utils"
)

func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.menuIdx = nextFileRow(m.rows, m.menuIdx, 1)
	case key.Matches(msg, m.keys.Up):
		m.menuIdx = nextFileRow(m.rows, m.menuIdx, -1)
	case key.Matches(msg, m.keys.Top):
		m.menuIdx = firstFileRow(m.rows)
	case key.Matches(msg, m.keys.Bottom):
		m.menuIdx = nextFileRow(m.rows, 0, -1)
	case key.Matches(msg, m.keys.Select):
		return m.openSelectedFile()
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	}
	m.menuOff = reframeOffset(m.menuIdx, m.menuOff, len(m.rows), m.menuVisibleRows())
	return m, nil
}

// nextFileRow moves the menu selection over file rows, skipping
// section headers and wrapping at both ends.
func nextFileRow(rows []menuRow, from, step int) int {
	if len(rows) == 0 {
		return 0
	}
	idx := from
	for i := 0; i < len(rows); i++ {
		idx = ((idx+step)%len(rows) + len(rows)) % len(rows)
		if rows[idx].fileIdx >= 0 {
			return idx
		}
	}
	return from
}

func (m Model) openSelectedFile() (tea.Model, tea.Cmd) {
	row := m.rows[m.menuIdx]
	if row.fileIdx < 0 {
		return m, nil
	}
	file := m.files[row.fileIdx]

	if m.noFoam {
		return m.openViewer(file)
	}

	keys, err := m.engine.ListTopLevelKeys(file)
	if err != nil {
		m.message = fmt.Sprintf("cannot open %s: %v", file.Rel, err)
		return m, nil
	}
	if len(keys) == 0 {
		m.message = fmt.Sprintf("%s: no entries", file.Rel)
		return m, nil
	}

	m.file = file
	m.cache = entrymeta.NewCache(m.engine, file)
	m.nav = browser.New(m.cache, keys)
	m.screen = ScreenBrowser
	return m, nil
}

func (m Model) menuVisibleRows() int {
	return utils.Max(1, m.height-6)
}

// reframeOffset keeps the selection inside the visible window.
func reframeOffset(index, offset, total, visible int) int {
	if visible <= 0 {
		return 0
	}
	if index < offset {
		offset = index
	} else if index >= offset+visible {
		offset = index - visible + 1
	}
	return utils.Clamp(offset, 0, utils.Max(0, total-visible))
}

func (m Model) renderCaseMenu() string {
	var b strings.Builder
	b.WriteString(theme.RenderTitle(theme.IconFolder, m.caseRoot))
	b.WriteByte('\n')

	visible := m.menuVisibleRows()
	end := utils.Min(len(m.rows), m.menuOff+visible)
	for i := m.menuOff; i < end; i++ {
		row := m.rows[i]
		if row.fileIdx < 0 {
			b.WriteString(theme.SectionStyle.Render(row.section + "/"))
			b.WriteByte('\n')
			continue
		}
		file := m.files[row.fileIdx]
		label := theme.IconFile + " " + file.Name()
		if i == m.menuIdx {
			b.WriteString(m.focusStyle.Render(label))
		} else {
			b.WriteString(theme.MenuItemStyle.Render(label))
		}
		b.WriteByte('\n')
	}

	if len(m.files) == 0 {
		b.WriteString(theme.DimStyle.Render("no dictionary files found"))
		b.WriteByte('\n')
	}
	return b.String()
}
