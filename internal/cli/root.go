package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/selimslab/factory-simulator/internal/factory"
)

// App holds the wiring CLI commands need: a simulation builder over the seed
// collections, the archive path, and terminal detection.
type App struct {
	Out    io.Writer
	DBPath string

	// NewSimulation builds a fresh simulation over the seed collections.
	NewSimulation func(cfg factory.Config) (*factory.Simulation, error)

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "factorysim" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "factorysim",
		Short: "Discrete-event bike factory simulator",
	}

	root.AddCommand(
		newRunCmd(app),
		newWatchCmd(app),
		newRunsCmd(app),
	)

	return root
}
