package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CKPEIIKA/of-tui/internal/config"
	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/views"
)

const Version = "0.2.0"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	noFoam := flag.Bool("no-foam", false, "run without foamDictionary (read-only lint mode)")
	configPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	if *showVersion {
		fmt.Printf("of-tui v%s\n", Version)
		os.Exit(0)
	}

	caseRoot := "."
	if flag.NArg() > 0 {
		caseRoot = flag.Arg(0)
	}
	caseRoot, err := filepath.Abs(caseRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "of-tui: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "of-tui: config: %v\n", err)
		os.Exit(1)
	}

	engine := foam.NewDictEngine(foam.NewRunLog(caseRoot))
	noFoamMode := *noFoam || config.NoFoamRequested() || !engine.Available()

	sections, err := foam.DiscoverCaseFiles(caseRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "of-tui: %v\n", err)
		os.Exit(1)
	}

	m := views.New(cfg, engine, caseRoot, sections, noFoamMode, Version)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "of-tui: %v\n", err)
		os.Exit(1)
	}
}
