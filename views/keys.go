package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/CKPEIIKA/of-tui/internal/config"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Back      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Search    key.Binding
	Command   key.Binding
	Help      key.Binding
	ForceQuit key.Binding
}

// newKeyMap builds the bindings from the user's configuration, always
// adding the arrow keys alongside the configured ones.
func newKeyMap(cfg *config.Config) keyMap {
	return keyMap{
		Up:      configBinding(cfg, "up", []string{"up"}, "up"),
		Down:    configBinding(cfg, "down", []string{"down"}, "down"),
		Select:  configBinding(cfg, "select", []string{"right"}, "select"),
		Back:    configBinding(cfg, "back", []string{"left", "esc"}, "back"),
		Top:     configBinding(cfg, "top", nil, "top"),
		Bottom:  configBinding(cfg, "bottom", nil, "bottom"),
		Search:  configBinding(cfg, "search", nil, "search"),
		Command: configBinding(cfg, "command", nil, "command"),
		Help:    configBinding(cfg, "help", nil, "help"),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func configBinding(cfg *config.Config, action string, extra []string, desc string) key.Binding {
	keys := append([]string{}, cfg.KeysFor(action)...)
	keys = append(keys, extra...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}
