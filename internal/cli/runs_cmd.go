package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selimslab/factory-simulator/internal/archive"
	"github.com/selimslab/factory-simulator/internal/cli/formatter"
	"github.com/selimslab/factory-simulator/internal/db"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.OpenDB(app.DBPath)
			if err != nil {
				return fmt.Errorf("opening archive: %w", err)
			}
			defer database.Close()

			runs, err := archive.NewStore(database).ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(app.Out, "No archived runs yet. Use `factorysim run --save`.")
				return nil
			}
			fmt.Fprint(app.Out, formatter.FormatRuns(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	return cmd
}
