package cmd

import (
	"fmt"

	"benchline/logging"
	"benchline/runner"
	"benchline/suite"
	"benchline/ui"
)

// RunCmd executes the suite sequentially and prints each workload's result
// as it completes.
type RunCmd struct {
	Suite string `help:"Path to a YAML workload suite (defaults to the built-in suite)" type:"path"`
}

// Run executes the benchmark suite
func (r *RunCmd) Run() error {
	s, err := loadSuite(r.Suite)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting benchmark run", "workloads", len(s.Workloads))
	fmt.Println(ui.RenderBanner())
	fmt.Println()

	index := 0
	_, err = runner.Run(s, func(row runner.Row) {
		fmt.Println(ui.RenderRow(index, row))
		index++
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Benchmark run complete")
	return nil
}

// loadSuite returns the suite at path, or the built-in defaults when path is
// empty.
func loadSuite(path string) (suite.Suite, error) {
	if path == "" {
		return suite.Default(), nil
	}
	s, err := suite.Load(path)
	if err != nil {
		return suite.Suite{}, fmt.Errorf("failed to load suite: %w", err)
	}
	logging.Logger.Info("Loaded suite file", "path", path, "workloads", len(s.Workloads))
	return s, nil
}
