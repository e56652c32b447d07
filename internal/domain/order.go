package domain

import (
	"fmt"
	"time"
)

// ScheduledTask binds one production step instance to concrete times and
// resources. Tasks are never deleted; they form the order's audit trail.
type ScheduledTask struct {
	ID        string
	StepID    string
	StepName  string
	Unit      int // 1-based unit index within the order
	StartTime time.Time
	EndTime   time.Time
	WorkerID  string
	MachineID []string
	Completed bool
	Quality   float64
}

type Order struct {
	ID       string
	Customer string
	Model    *BikeModel
	Quantity int
	DueDate  time.Time
	Status   OrderStatus
	Tasks    []*ScheduledTask

	CreatedAt time.Time

	// UnitsDone counts fully produced units; the order completes when it
	// reaches Quantity.
	UnitsDone int
}

// orderTransitions is the one-way order state machine. Cancelled and delayed
// are terminal; delayed orders are not retried automatically.
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderReceived:     {OrderScheduled: true, OrderCancelled: true, OrderDelayed: true},
	OrderScheduled:    {OrderInProduction: true, OrderCancelled: true, OrderDelayed: true},
	OrderInProduction: {OrderCompleted: true, OrderCancelled: true, OrderDelayed: true},
}

// Transition moves the order to the next status, rejecting edges outside the
// state machine. An illegal edge is a programming invariant violation and
// surfaces as an error rather than being silently applied.
func (o *Order) Transition(to OrderStatus) error {
	if !orderTransitions[o.Status][to] {
		return fmt.Errorf("illegal order transition %s -> %s for order %s", o.Status, to, o.ID)
	}
	o.Status = to
	return nil
}

// Terminal reports whether the order can no longer change status.
func (o *Order) Terminal() bool {
	return o.Status == OrderCompleted || o.Status == OrderCancelled || o.Status == OrderDelayed
}
