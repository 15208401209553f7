// Command canopy runs the supplier-sustainability dashboard.
//
// All state is in-memory and seeded from embedded sample data; a fresh
// run always starts from the same collection. There is no backend.
//
// Usage:
//
//	canopy [-seed suppliers.yaml] [-debug]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"canopy/internal/seed"
	"canopy/internal/supplier"
	"canopy/internal/tui"
)

func main() {
	seedPath := flag.String("seed", "", "alternate seed file (YAML, same layout as the embedded data)")
	debug := flag.Bool("debug", false, "write debug output to canopy.log")
	flag.Parse()

	if err := run(*seedPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "canopy: %v\n", err)
		os.Exit(1)
	}
}

func run(seedPath string, debug bool) error {
	if debug {
		f, err := tea.LogToFile("canopy.log", "canopy")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// Warnings (e.g. unknown locations) go to the debug log when
		// enabled; otherwise they must not corrupt the terminal UI.
		log.SetOutput(nullWriter{})
	}

	suppliers := seed.Load()
	if seedPath != "" {
		loaded, err := seed.LoadFile(seedPath)
		if err != nil {
			return err
		}
		suppliers = loaded
	}

	return runDashboard(suppliers)
}

func runDashboard(suppliers []supplier.Supplier) error {
	p := tea.NewProgram(tui.New(suppliers), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// nullWriter discards log output while the TUI owns the terminal.
type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }
