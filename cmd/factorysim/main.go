package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/selimslab/factory-simulator/internal/cli"
	"github.com/selimslab/factory-simulator/internal/factory"
	"github.com/selimslab/factory-simulator/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Archive path: env var or default ~/.factorysim/factorysim.db
	dbPath := os.Getenv("FACTORYSIM_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".factorysim", "factorysim.db")
	}

	app := &cli.App{
		Out:    os.Stdout,
		DBPath: dbPath,
		NewSimulation: func(cfg factory.Config) (*factory.Simulation, error) {
			return factory.New(cfg,
				seed.Workers(),
				seed.Machines(cfg.Start),
				seed.Materials(),
				seed.Models(),
			)
		},
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
