package formatter

import (
	"fmt"
	"strings"

	"github.com/selimslab/factory-simulator/internal/archive"
	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/factory"
)

// FormatStats renders the final statistics snapshot as a styled report.
func FormatStats(stats factory.Stats) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Simulation Results"))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Orders received", fmt.Sprintf("%d", stats.OrdersReceived)},
		{"Orders completed", StyleGreen.Render(fmt.Sprintf("%d", stats.OrdersCompleted))},
		{"Orders cancelled", StyleRed.Render(fmt.Sprintf("%d", stats.OrdersCancelled))},
		{"Orders incomplete at horizon", fmt.Sprintf("%d", stats.IncompleteOrders)},
		{"Bikes produced", StyleBold.Render(fmt.Sprintf("%d", stats.BikesProduced))},
		{"Avg production time", fmt.Sprintf("%.1f min", stats.AvgProductionMin)},
		{"Machine breakdowns", fmt.Sprintf("%d", stats.MachineBreakdowns)},
		{"Worker errors", fmt.Sprintf("%d", stats.WorkerErrors)},
		{"Quality incidents", fmt.Sprintf("%d", stats.QualityIncidents)},
		{"Avg worker fatigue", fmt.Sprintf("%.1f", stats.AvgWorkerFatigue)},
	}
	b.WriteString(RenderTable([]string{"METRIC", "VALUE"}, rows))

	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Maintenance"))
	b.WriteString("\n\n")
	m := stats.Maintenance
	b.WriteString(RenderTable([]string{"KIND", "PERFORMED"}, [][]string{
		{"routine", fmt.Sprintf("%d", m.RoutinePerformed)},
		{"preventive", fmt.Sprintf("%d", m.PreventivePerformed)},
		{"corrective", fmt.Sprintf("%d", m.CorrectivePerformed)},
		{"emergency", fmt.Sprintf("%d", m.EmergencyPerformed)},
		{"deferred", Dim(fmt.Sprintf("%d", m.Deferred))},
	}))
	b.WriteString(fmt.Sprintf("\nTotal downtime: %s\n", Bold(fmt.Sprintf("%d min", m.TotalDowntimeMin))))

	return b.String()
}

// FormatOrders renders the order book with per-order outcomes.
func FormatOrders(orders []*domain.Order) string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID[:8],
			o.Customer,
			o.Model.Name,
			fmt.Sprintf("%d", o.Quantity),
			OrderStatusPill(o.Status),
			fmt.Sprintf("%d/%d", o.UnitsDone, o.Quantity),
		})
	}
	return RenderTable([]string{"ORDER", "CUSTOMER", "MODEL", "QTY", "STATUS", "UNITS"}, rows)
}

// FormatEventLog renders the chronological event log, most verbose view.
func FormatEventLog(events []factory.Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(Dim(e.Time.Format("Mon 15:04")))
		b.WriteString("  ")
		b.WriteString(StyleBlue.Render(string(e.Type)))
		b.WriteString("  ")
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRuns renders archived runs as a table.
func FormatRuns(runs []archive.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID[:8],
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.HorizonMin),
			fmt.Sprintf("%d", r.Stats.BikesProduced),
			fmt.Sprintf("%d", r.Stats.OrdersCompleted),
			fmt.Sprintf("%d", r.Stats.OrdersCancelled),
			fmt.Sprintf("%d", r.Stats.QualityIncidents),
		})
	}
	return RenderTable([]string{"RUN", "SEED", "HORIZON", "BIKES", "DONE", "CANCELLED", "INCIDENTS"}, rows)
}
