package factory

import (
	"io"
	"log/slog"
	"time"
)

type EventType string

const (
	EventOrderReceived        EventType = "order_received"
	EventOrderCancelled       EventType = "order_cancelled"
	EventOrderCompleted       EventType = "order_completed"
	EventStepCompleted        EventType = "step_completed"
	EventUnitCompleted        EventType = "unit_completed"
	EventMachineBreakdown     EventType = "machine_breakdown"
	EventWorkerError          EventType = "worker_error"
	EventMaintenancePerformed EventType = "maintenance_performed"
	EventShiftChange          EventType = "shift_change"
)

// Event is one row of the chronological simulation log, suitable for external
// reporting layers to render.
type Event struct {
	Time    time.Time
	Type    EventType
	OrderID string
	Subject string // worker, machine, or step id the event is about
	Message string
}

// Observer receives simulation events as they happen.
type Observer interface {
	Observe(Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes simulation events to the provided writer as
// structured log lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(e Event) {
	o.logger.Info("sim_event",
		"sim_time", e.Time.Format("2006-01-02 15:04"),
		"type", string(e.Type),
		"order", e.OrderID,
		"subject", e.Subject,
		"msg", e.Message,
	)
}
