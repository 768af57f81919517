package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/internal/theme"
	"github.com/CKPEIIKA/of-tui/internal/utils"
)

// diagInfo is the snapshot shown on the diagnostics screen: host
// facts plus what the case itself reveals about its setup.
type diagInfo struct {
	hostname    string
	platform    string
	cpuCores    int
	cpuPercent  float64
	memUsed     uint64
	memTotal    uint64
	diskUsed    uint64
	diskTotal   uint64
	solver      string
	parallel    string
	foamVersion string
	mode        string
}

func (m Model) openDiagnostics() (tea.Model, tea.Cmd) {
	m.diag = m.collectDiagnostics()
	m.screen = ScreenDiagnostics
	return m, nil
}

func (m Model) handleDiagKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
		m.screen = ScreenCaseMenu
	}
	return m, nil
}

func (m Model) collectDiagnostics() diagInfo {
	d := diagInfo{
		solver:      m.detectSolver(),
		parallel:    m.detectParallel(),
		foamVersion: foamVersion(),
		mode:        m.modeStatus(),
	}

	if info, err := host.Info(); err == nil {
		d.hostname = info.Hostname
		d.platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	}
	d.cpuCores, _ = cpu.Counts(true)
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		d.cpuPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		d.memUsed = vm.Used
		d.memTotal = vm.Total
	}
	if du, err := disk.Usage(m.caseRoot); err == nil {
		d.diskUsed = du.Used
		d.diskTotal = du.Total
	}
	return d
}

// detectSolver reads the application entry from system/controlDict.
func (m Model) detectSolver() string {
	if m.noFoam {
		return "unknown"
	}
	controlDict := foam.CaseFile{Root: m.caseRoot, Rel: "system/controlDict"}
	value, err := m.engine.ReadEntry(controlDict, "application")
	if err != nil {
		return "unknown"
	}
	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(value), ";"))
	if len(fields) == 0 {
		return "unknown"
	}
	return fields[0]
}

// detectParallel summarizes the decomposition setup, when present.
func (m Model) detectParallel() string {
	if m.noFoam {
		return "n/a"
	}
	decompose := foam.CaseFile{Root: m.caseRoot, Rel: "system/decomposeParDict"}
	if _, err := os.Stat(decompose.Path()); err != nil {
		return "n/a"
	}
	number, numErr := m.engine.ReadEntry(decompose, "numberOfSubdomains")
	method, methodErr := m.engine.ReadEntry(decompose, "method")
	number = strings.TrimSpace(number)
	method = strings.TrimSpace(method)
	switch {
	case numErr == nil && methodErr == nil && number != "" && method != "":
		return fmt.Sprintf("%s (%s)", number, method)
	case numErr == nil && number != "":
		return number
	case methodErr == nil && method != "":
		return method
	}
	return "n/a"
}

func foamVersion() string {
	for _, env := range []string{"WM_PROJECT_VERSION", "FOAM_VERSION"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return "unknown"
}

func (m Model) renderDiagnostics() string {
	var b strings.Builder
	b.WriteString(theme.RenderTitle(theme.IconCPU, "Diagnostics"))
	b.WriteByte('\n')

	d := m.diag
	rows := []struct {
		label string
		value string
	}{
		{"host", fmt.Sprintf("%s (%s)", d.hostname, d.platform)},
		{"cpu", fmt.Sprintf("%d cores, %.1f%% busy", d.cpuCores, d.cpuPercent)},
		{"memory", fmt.Sprintf("%s / %s", utils.FormatBytes(d.memUsed), utils.FormatBytes(d.memTotal))},
		{"disk", fmt.Sprintf("%s / %s", utils.FormatBytes(d.diskUsed), utils.FormatBytes(d.diskTotal))},
		{"", ""},
		{"case", m.caseRoot},
		{"solver", d.solver},
		{"parallel", d.parallel},
		{"foam", d.foamVersion},
		{"mode", d.mode},
	}
	for _, row := range rows {
		if row.label == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(theme.DimStyle.Render(utils.PadString(row.label, 10, "left")))
		b.WriteString(row.value)
		b.WriteByte('\n')
	}
	return b.String()
}
