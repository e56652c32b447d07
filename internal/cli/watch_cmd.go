package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/selimslab/factory-simulator/internal/cli/formatter"
	"github.com/selimslab/factory-simulator/internal/factory"
)

func newWatchCmd(app *App) *cobra.Command {
	var (
		horizonMin int
		orders     int
		meanGapMin float64
		seed       int64
		stepMin    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the simulation with a live terminal dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
			sim, err := app.NewSimulation(factory.Config{Start: start, Seed: seed})
			if err != nil {
				return err
			}
			sim.GenerateOrders(orders, meanGapMin)

			sp := spinner.New()
			sp.Spinner = spinner.Dot
			sp.Style = formatter.StyleBlue

			model := watchModel{
				sim:     sim,
				start:   start,
				horizon: start.Add(time.Duration(horizonMin) * time.Minute),
				stepMin: stepMin,
				spinner: sp,
			}
			if _, err := tea.NewProgram(model, tea.WithOutput(app.Out)).Run(); err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}

			fmt.Fprint(app.Out, formatter.FormatStats(sim.Snapshot()))
			return nil
		},
	}

	cmd.Flags().IntVar(&horizonMin, "horizon", 7*24*60, "Simulation horizon in simulated minutes")
	cmd.Flags().IntVar(&orders, "orders", 10, "Number of random orders to generate")
	cmd.Flags().Float64Var(&meanGapMin, "gap", 90, "Mean order interarrival in simulated minutes")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().IntVar(&stepMin, "step", 60, "Simulated minutes advanced per dashboard frame")

	return cmd
}

type stepMsg struct{}

func stepCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg { return stepMsg{} })
}

// watchModel advances the simulation a fixed simulated step per frame and
// renders the running statistics.
type watchModel struct {
	sim     *factory.Simulation
	start   time.Time
	horizon time.Time
	stepMin int
	spinner spinner.Model
	done    bool
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, stepCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case stepMsg:
		if m.done {
			return m, tea.Quit
		}
		next := m.sim.Engine().Now().Add(time.Duration(m.stepMin) * time.Minute)
		if !next.Before(m.horizon) {
			next = m.horizon
			m.done = true
		}
		m.sim.RunUntil(next)
		return m, stepCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.done {
		return ""
	}
	stats := m.sim.Snapshot()
	now := m.sim.Engine().Now()

	header := fmt.Sprintf("%s %s  %s\n\n",
		m.spinner.View(),
		formatter.Bold("Shop floor"),
		formatter.Dim(now.Format("Mon Jan 2 15:04")),
	)
	body := formatter.RenderTable(
		[]string{"RECEIVED", "DONE", "CANCELLED", "BIKES", "BREAKDOWNS", "INCIDENTS"},
		[][]string{{
			fmt.Sprintf("%d", stats.OrdersReceived),
			fmt.Sprintf("%d", stats.OrdersCompleted),
			fmt.Sprintf("%d", stats.OrdersCancelled),
			fmt.Sprintf("%d", stats.BikesProduced),
			fmt.Sprintf("%d", stats.MachineBreakdowns),
			fmt.Sprintf("%d", stats.QualityIncidents),
		}},
	)
	return header + body + formatter.Dim("\npress q to stop\n")
}
