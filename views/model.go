// Package views implements the terminal UI: a single Bubble Tea model
// dispatching between the case menu, entry browser, entry editor,
// check screen, raw file viewer and diagnostics.
package views

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CKPEIIKA/of-tui/internal/browser"
	"github.com/CKPEIIKA/of-tui/internal/config"
	"github.com/CKPEIIKA/of-tui/internal/editor"
	"github.com/CKPEIIKA/of-tui/internal/entrymeta"
	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/internal/theme"
	"github.com/CKPEIIKA/of-tui/internal/verify"
)

type Screen int

const (
	ScreenCaseMenu Screen = iota
	ScreenBrowser
	ScreenEditor
	ScreenCheck
	ScreenCheckDetail
	ScreenViewer
	ScreenDiagnostics
)

// Prompt is the line-input overlay mode: command entry or search.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptCommand
	PromptSearch
)

// menuRow is one line of the case menu: a section header or a file.
type menuRow struct {
	section string
	fileIdx int // index into files; -1 for headers
}

type Model struct {
	cfg        *config.Config
	engine     foam.Engine
	caseRoot   string
	noFoam     bool
	version    string
	width      int
	height     int
	keys       keyMap
	focusStyle lipgloss.Style

	screen   Screen
	showHelp bool
	message  string

	// Case menu
	sections []foam.Section
	files    []foam.CaseFile
	rows     []menuRow
	menuIdx  int
	menuOff  int

	// Open file session
	file  foam.CaseFile
	cache *entrymeta.Cache
	nav   *browser.Navigator

	// Entry editor
	edit     *editor.Session
	editKey  string
	editNote string

	// Verification
	runner   *verify.Runner
	checkIdx int
	checkOff int
	detail   foam.CaseFile

	// Raw file viewer
	viewer      viewport.Model
	viewerReady bool
	viewerTitle string

	// Diagnostics
	diag diagInfo

	// Command / search prompt
	prompt      Prompt
	promptInput textinput.Model
	suggestions []string
}

type tickMsg time.Time

// tickEvery drives the check status line while a sweep runs.
func tickEvery() tea.Cmd {
	return tea.Every(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// New builds the root model for one case directory.
func New(cfg *config.Config, engine foam.Engine, caseRoot string, sections []foam.Section, noFoam bool, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "command"
	ti.CharLimit = 120
	ti.Width = 40

	files := foam.FlattenSections(sections)

	m := Model{
		cfg:         cfg,
		engine:      engine,
		caseRoot:    caseRoot,
		noFoam:      noFoam,
		version:     version,
		keys:        newKeyMap(cfg),
		focusStyle:  theme.FocusStyle(cfg.Colors.FocusFg, cfg.Colors.FocusBg),
		sections:    sections,
		files:       files,
		rows:        buildMenuRows(sections),
		runner:      verify.NewRunner(engine),
		promptInput: ti,
	}
	m.menuIdx = firstFileRow(m.rows)
	return m
}

// buildMenuRows interleaves section headers with their files.
func buildMenuRows(sections []foam.Section) []menuRow {
	var rows []menuRow
	idx := 0
	for _, section := range sections {
		rows = append(rows, menuRow{section: section.Name, fileIdx: -1})
		for range section.Files {
			rows = append(rows, menuRow{fileIdx: idx})
			idx++
		}
	}
	return rows
}

func firstFileRow(rows []menuRow) int {
	for i, row := range rows {
		if row.fileIdx >= 0 {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd {
	return nil
}
