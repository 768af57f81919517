package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.viewerReady {
			m.viewer = viewport.New(msg.Width, msg.Height-4)
			m.viewerReady = true
		} else {
			m.viewer.Width = msg.Width
			m.viewer.Height = msg.Height - 4
		}

	case tickMsg:
		if m.runner.Running() {
			return m, tickEvery()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.prompt != PromptNone {
			return m.handlePromptKeys(msg)
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.message = ""

		if key.Matches(msg, m.keys.Help) && m.screen != ScreenEditor {
			m.showHelp = true
			return m, nil
		}
		if key.Matches(msg, m.keys.Command) && m.screen != ScreenEditor {
			return m.openPrompt(PromptCommand), nil
		}

		switch m.screen {
		case ScreenCaseMenu:
			return m.handleMenuKeys(msg)
		case ScreenBrowser:
			return m.handleBrowserKeys(msg)
		case ScreenEditor:
			return m.handleEditorKeys(msg)
		case ScreenCheck:
			return m.handleCheckKeys(msg)
		case ScreenCheckDetail:
			return m.handleCheckDetailKeys(msg)
		case ScreenViewer:
			return m.handleViewerKeys(msg)
		case ScreenDiagnostics:
			return m.handleDiagKeys(msg)
		}
	}

	return m, nil
}
