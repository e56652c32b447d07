package factory

import "github.com/selimslab/factory-simulator/internal/maintenance"

// Stats is the simulation statistics snapshot. It is guaranteed final and
// consistent once the event queue is drained.
type Stats struct {
	OrdersReceived   int
	OrdersCompleted  int
	OrdersCancelled  int
	OrdersDelayed    int
	IncompleteOrders int

	BikesProduced      int
	TotalProductionMin int
	AvgProductionMin   float64

	MachineBreakdowns int
	WorkerErrors      int
	QualityIncidents  int

	AvgWorkerFatigue float64

	Maintenance maintenance.Stats
}
