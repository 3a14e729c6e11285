package cmd

import (
	"fmt"

	"benchline/logging"
	"benchline/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// TuiCmd starts the interactive runner
type TuiCmd struct {
	Suite string `help:"Path to a YAML workload suite (defaults to the built-in suite)" type:"path"`
}

// Run starts the TUI
func (t *TuiCmd) Run() error {
	s, err := loadSuite(t.Suite)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting interactive mode")
	model := ui.NewModel(s)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	// A workload failure quits the TUI; surface it as a fatal error
	if err := model.Err(); err != nil {
		return err
	}

	logging.Logger.Info("Interactive mode exited normally")
	return nil
}
