package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CKPEIIKA/of-tui/internal/config"
	"github.com/CKPEIIKA/of-tui/internal/foam"
)

// stubEngine serves a one-file case for model tests.
type stubEngine struct {
	values  map[string]string
	topKeys []string
	subKeys map[string][]string
}

func newStubEngine() *stubEngine {
	return &stubEngine{
		values: map[string]string{
			"application": "simpleFoam",
			"endTime":     "100",
			"solvers":     "{...}",
			"solvers.p":   "GAMG",
		},
		topKeys: []string{"application", "endTime", "solvers"},
		subKeys: map[string][]string{"solvers": {"p"}},
	}
}

func (e *stubEngine) ReadEntry(_ foam.CaseFile, key string) (string, error) {
	if v, ok := e.values[key]; ok {
		return v, nil
	}
	return "", errors.New("no entry")
}

func (e *stubEngine) ListTopLevelKeys(foam.CaseFile) ([]string, error) { return e.topKeys, nil }
func (e *stubEngine) ListSubKeys(_ foam.CaseFile, key string) []string { return e.subKeys[key] }
func (e *stubEngine) ListEnumValues(foam.CaseFile, string) []string    { return nil }
func (e *stubEngine) Comments(foam.CaseFile, string) []string          { return nil }
func (e *stubEngine) InfoLines(foam.CaseFile, string) []string         { return nil }
func (e *stubEngine) WriteEntry(foam.CaseFile, string, string) error   { return nil }
func (e *stubEngine) CheckFile(foam.CaseFile) (foam.CheckResult, error) {
	return foam.CheckResult{Checked: true}, nil
}

func testSections() []foam.Section {
	return []foam.Section{
		{Name: "0", Files: []foam.CaseFile{{Root: "/case", Rel: "0/U"}}},
		{Name: "system", Files: []foam.CaseFile{
			{Root: "/case", Rel: "system/controlDict"},
			{Root: "/case", Rel: "system/fvSchemes"},
		}},
	}
}

func newTestModel(noFoam bool) Model {
	return New(config.Default(), newStubEngine(), "/case", testSections(), noFoam, "test")
}

func keyPress(k string) tea.KeyMsg {
	if len(k) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func update(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestBuildMenuRows(t *testing.T) {
	rows := buildMenuRows(testSections())
	require.Len(t, rows, 5)
	assert.Equal(t, "0", rows[0].section)
	assert.Equal(t, -1, rows[0].fileIdx)
	assert.Equal(t, 0, rows[1].fileIdx)
	assert.Equal(t, "system", rows[2].section)
	assert.Equal(t, 2, rows[4].fileIdx)
}

func TestMenuSelectionSkipsHeaders(t *testing.T) {
	m := newTestModel(false)
	assert.Equal(t, 1, m.menuIdx)

	m = update(t, m, "j")
	assert.Equal(t, 3, m.menuIdx)

	m = update(t, m, "j", "j")
	// Wrapped past the end back to the first file.
	assert.Equal(t, 1, m.menuIdx)

	m = update(t, m, "k")
	assert.Equal(t, 4, m.menuIdx)
}

func TestOpenFileEntersBrowser(t *testing.T) {
	m := update(t, newTestModel(false), "l")
	assert.Equal(t, ScreenBrowser, m.screen)
	require.NotNil(t, m.nav)
	assert.Equal(t, []string{"application", "endTime", "solvers"}, m.nav.Keys())

	m = update(t, m, "h")
	assert.Equal(t, ScreenCaseMenu, m.screen)
	assert.Nil(t, m.nav)
}

func TestBrowserDescendAndEdit(t *testing.T) {
	m := update(t, newTestModel(false), "l", "G", "l")
	require.Equal(t, ScreenBrowser, m.screen)
	assert.Equal(t, "solvers", m.nav.BaseKey())

	m = update(t, m, "l")
	assert.Equal(t, ScreenEditor, m.screen)
	assert.Equal(t, "solvers.p", m.editKey)
	assert.Equal(t, "GAMG", m.edit.Text())

	m = update(t, m, "esc")
	assert.Equal(t, ScreenBrowser, m.screen)
	assert.Nil(t, m.edit)
}

func TestNoFoamOpensViewerNotBrowser(t *testing.T) {
	m := newTestModel(true)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	m = update(t, m, "l")
	// The file does not exist on disk, so the viewer reports instead
	// of opening, but the browser is never entered.
	assert.NotEqual(t, ScreenBrowser, m.screen)
}

func TestModeStatus(t *testing.T) {
	t.Setenv("WM_PROJECT_DIR", "")
	assert.Equal(t, "mode: foam", newTestModel(false).modeStatus())
	assert.Equal(t, "mode: no-foam", newTestModel(true).modeStatus())

	t.Setenv("WM_PROJECT_DIR", "/opt/openfoam11")
	assert.Equal(t, "mode: foam (/opt/openfoam11)", newTestModel(false).modeStatus())
}

func TestCommandSuggestions(t *testing.T) {
	assert.Equal(t, []string{"check"}, suggest("ch"))
	assert.Equal(t, []string{"check"}, suggest(":ch"))
	assert.Contains(t, suggest(""), "quit")
	assert.Empty(t, suggest("zzz"))
}

func TestCommandDispatch(t *testing.T) {
	m := newTestModel(false)

	m = update(t, m, ":")
	require.Equal(t, PromptCommand, m.prompt)
	for _, r := range "diag" {
		m = update(t, m, string(r))
	}
	m = update(t, m, "enter")
	assert.Equal(t, ScreenDiagnostics, m.screen)
	assert.Equal(t, PromptNone, m.prompt)
}

func TestUnknownCommandMessage(t *testing.T) {
	m := update(t, newTestModel(false), ":")
	for _, r := range "bogus" {
		m = update(t, m, string(r))
	}
	m = update(t, m, "enter")
	assert.Contains(t, m.message, "Unknown command")
}

func TestSearchPromptMovesSelection(t *testing.T) {
	m := update(t, newTestModel(false), "l", "/")
	require.Equal(t, PromptSearch, m.prompt)
	for _, r := range "solvers" {
		m = update(t, m, string(r))
	}
	m = update(t, m, "enter")
	assert.Equal(t, "solvers", m.nav.CurrentKey())
}

func TestReframeOffset(t *testing.T) {
	assert.Equal(t, 0, reframeOffset(0, 0, 10, 4))
	assert.Equal(t, 6, reframeOffset(9, 0, 10, 4))
	assert.Equal(t, 3, reframeOffset(3, 5, 10, 4))
	assert.Equal(t, 0, reframeOffset(9, 0, 10, 20))
}
