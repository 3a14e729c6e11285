package cmd

import (
	"benchline/logging"

	"github.com/alecthomas/kong"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"50"`

	Run RunCmd `cmd:"" help:"Run the benchmark suite and print the report (default)" default:"1"`
	Tui TuiCmd `cmd:"tui" help:"Pick and run workloads interactively"`
}

// AfterApply initializes logging after CLI parsing
func (c *CLI) AfterApply() error {
	_, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	return err
}
