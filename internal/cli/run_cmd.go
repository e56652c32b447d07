package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/selimslab/factory-simulator/internal/archive"
	"github.com/selimslab/factory-simulator/internal/cli/formatter"
	"github.com/selimslab/factory-simulator/internal/db"
	"github.com/selimslab/factory-simulator/internal/factory"
)

func newRunCmd(app *App) *cobra.Command {
	var (
		horizonMin  int
		orders      int
		meanGapMin  float64
		seed        int64
		startDate   string
		verbose     bool
		save        bool
		interactive bool
		showOrders  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation to its horizon and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			// Start mid-morning on the given day so the first shift is staffed.
			start = start.Add(9 * time.Hour)

			cfg := factory.Config{Start: start, Seed: seed}
			if verbose {
				cfg.Observer = factory.NewLogObserver(os.Stderr)
			}

			sim, err := app.NewSimulation(cfg)
			if err != nil {
				return err
			}

			if interactive && app.IsInteractive != nil && app.IsInteractive() {
				if err := collectOrders(sim); err != nil {
					return err
				}
			} else {
				sim.GenerateOrders(orders, meanGapMin)
			}

			stats := sim.Run(horizonMin)

			fmt.Fprint(app.Out, formatter.FormatStats(stats))
			if showOrders {
				fmt.Fprintln(app.Out)
				fmt.Fprint(app.Out, formatter.FormatOrders(sim.Orders()))
			}

			if save {
				database, err := db.OpenDB(app.DBPath)
				if err != nil {
					return fmt.Errorf("opening archive: %w", err)
				}
				defer database.Close()

				store := archive.NewStore(database)
				id, err := store.SaveRun(archive.Run{
					Seed:       seed,
					HorizonMin: horizonMin,
					StartedAt:  start,
					Stats:      stats,
				}, sim.Events())
				if err != nil {
					return fmt.Errorf("archiving run: %w", err)
				}
				fmt.Fprintf(app.Out, "\nArchived run %s\n", id[:8])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&horizonMin, "horizon", 7*24*60, "Simulation horizon in simulated minutes")
	cmd.Flags().IntVar(&orders, "orders", 10, "Number of random orders to generate")
	cmd.Flags().Float64Var(&meanGapMin, "gap", 90, "Mean order interarrival in simulated minutes")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed (fixed seed gives a reproducible run)")
	cmd.Flags().StringVar(&startDate, "start", "2026-01-05", "Simulation start date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Stream the event log to stderr")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the run to the local database")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Compose the order book interactively")
	cmd.Flags().BoolVar(&showOrders, "show-orders", false, "Print the per-order outcome table")

	return cmd
}
