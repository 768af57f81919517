package theme

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Deep water palette
	ColorBackground        = lipgloss.Color("#1B2B34") // dark slate blue
	ColorBackgroundDarker  = lipgloss.Color("#16232A") // near-black blue
	ColorBackgroundLighter = lipgloss.Color("#29414F") // lifted slate

	// Text colors
	ColorForeground       = lipgloss.Color("#D8DEE9") // pale grey-blue
	ColorForegroundDim    = lipgloss.Color("#65737E") // muted slate
	ColorForegroundBright = lipgloss.Color("#FFFFFF") // pure white

	// Border colors
	ColorBorderInactive = lipgloss.Color("#65737E") // muted slate
	ColorBorderActive   = lipgloss.Color("#6699CC") // steel blue
	ColorBorderFocused  = lipgloss.Color("#99C2E5") // lighter steel blue

	// Accent colors
	ColorAccent    = lipgloss.Color("#6699CC") // steel blue
	ColorSecondary = lipgloss.Color("#C594C5") // soft violet
	ColorSuccess   = lipgloss.Color("#99C794") // moss green
	ColorWarning   = lipgloss.Color("#FAC863") // amber
	ColorError     = lipgloss.Color("#EC5F67") // coral red
	ColorInfo      = lipgloss.Color("#5FB3B3") // teal
	ColorHighlight = lipgloss.Color("#FAC863") // amber

	// Entry type colors
	ColorDictionary = lipgloss.Color("#99C2E5") // sub-dictionaries
	ColorScalar     = lipgloss.Color("#D8DEE9") // plain values
	ColorEnum       = lipgloss.Color("#C594C5") // constrained values

	// Diagnostics colors
	ColorCPU    = lipgloss.Color("#6699CC")
	ColorMemory = lipgloss.Color("#5FB3B3")
	ColorDisk   = lipgloss.Color("#99C794")
)

// Border characters
const (
	BorderDividerH = "─"
	BorderDividerV = "│"
)

// Icons
const (
	IconFolder       = "▤"
	IconFile         = "▫"
	IconDictionary   = "▦"
	IconSearch       = "◎"
	IconHelp         = "◔"
	IconCheck        = "✓"
	IconCross        = "✗"
	IconWarn         = "!"
	IconArrowRight   = "→"
	IconArrowLeft    = "←"
	IconDot          = "•"
	IconChevronRight = "›"
	IconCPU          = "◓"
	IconMemory       = "◒"
	IconDisk         = "◐"
)

// Base styles
var (
	BaseStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorForeground)

	PanelStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorForeground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderInactive).
			Padding(0, 1)

	PanelActiveStyle = PanelStyle.Copy().
				BorderForeground(ColorBorderActive)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorForegroundDim).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	OkStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorForegroundDim)

	// List styles
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Padding(0, 1)

	MenuItemSelectedStyle = lipgloss.NewStyle().
				Background(ColorBackgroundLighter).
				Foreground(ColorForegroundBright).
				Bold(true).
				Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Status bar styles
	StatusStyle = lipgloss.NewStyle().
			Background(ColorBackgroundDarker).
			Foreground(ColorForeground).
			Padding(0, 1)

	StatusErrorStyle = StatusStyle.Copy().
				Foreground(ColorError)

	StatusWarningStyle = StatusStyle.Copy().
				Foreground(ColorWarning)

	// Footer styles
	FooterStyle = lipgloss.NewStyle().
			Background(ColorBackgroundDarker).
			Foreground(ColorForegroundDim).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	// Input styles
	InputStyle = lipgloss.NewStyle().
			Background(ColorBackgroundDarker).
			Foreground(ColorForeground).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorderInactive).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.Copy().
				BorderForeground(ColorBorderActive)

	// Diagnostics styles
	CPUStyle = lipgloss.NewStyle().
			Foreground(ColorCPU).
			Bold(true)

	MemoryStyle = lipgloss.NewStyle().
			Foreground(ColorMemory).
			Bold(true)

	DiskStyle = lipgloss.NewStyle().
			Foreground(ColorDisk).
			Bold(true)
)

// namedColors maps the color names accepted in config files to the
// basic terminal palette.
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// FocusStyle builds the focused-row style from configured color names.
// Unknown names fall back to the built-in selection style.
func FocusStyle(fg, bg string) lipgloss.Style {
	fgColor, fgOK := namedColors[fg]
	bgColor, bgOK := namedColors[bg]
	if !fgOK || !bgOK {
		return MenuItemSelectedStyle
	}
	return lipgloss.NewStyle().
		Foreground(fgColor).
		Background(bgColor).
		Bold(true).
		Padding(0, 1)
}

// Helper functions
func RenderTitle(icon, text string) string {
	if icon != "" {
		return TitleStyle.Render(icon + " " + text)
	}
	return TitleStyle.Render(text)
}

func RenderKeyHelp(key, desc string) string {
	return FooterKeyStyle.Render(key) + FooterDescStyle.Render(desc)
}

func RenderStatusBar(items ...string) string {
	var result string
	for i, item := range items {
		if i > 0 {
			result += StatusStyle.Render(" " + BorderDividerV + " ")
		}
		result += StatusStyle.Render(item)
	}
	return result
}
