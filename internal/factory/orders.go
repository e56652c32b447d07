package factory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/selimslab/factory-simulator/internal/degrade"
	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/pool"
)

// reworkExtensionMin is tacked onto an error-prone step when the worker slips.
const reworkExtensionMin = 15

// processOrder runs the admission gate for an arrived order: the aggregate
// material requirement across all steps and units is checked up front, and
// consumed all-or-nothing. An order with any single short material produces
// zero inventory change and cancels before any production begins.
func (s *Simulation) processOrder(o *domain.Order) {
	s.stats.OrdersReceived++
	s.emit(Event{
		Time:    s.engine.Now(),
		Type:    EventOrderReceived,
		OrderID: o.ID,
		Message: fmt.Sprintf("%d x %s for %s", o.Quantity, o.Model.Name, o.Customer),
	})

	required := o.Model.MaterialRequirements(o.Quantity)
	if err := s.pool.ConsumeMaterials(required); err != nil {
		s.cancelOrder(o, "insufficient materials")
		return
	}

	if err := o.Transition(domain.OrderScheduled); err != nil {
		s.cancelOrder(o, err.Error())
		return
	}
	if err := o.Transition(domain.OrderInProduction); err != nil {
		s.cancelOrder(o, err.Error())
		return
	}

	// Units are produced in sequence; finishing one unit starts the next.
	s.engine.Schedule(0, func() { s.runStep(o, 1, 0, 0) })
}

// runStep executes one production step for one unit and chains itself as the
// continuation for the next step. The whole order cancels on the first step
// that cannot be resourced; there is no retry later in simulated time.
func (s *Simulation) runStep(o *domain.Order, unit, stepIdx, unitMin int) {
	if o.Status != domain.OrderInProduction {
		return // order reached a terminal state; stop scheduling continuations
	}

	if stepIdx == len(o.Model.Steps) {
		s.finishUnit(o, unit, unitMin)
		return
	}

	step := o.Model.Steps[stepIdx]
	now := s.engine.Now()

	worker, machines, err := s.acquire(step, now)
	if err != nil {
		s.cancelOrder(o, fmt.Sprintf("unit %d, step %s: %v", unit, step.Name, err))
		return
	}

	duration := step.ActualDurationMin(worker)
	task := &domain.ScheduledTask{
		ID:        uuid.NewString(),
		StepID:    step.ID,
		StepName:  step.Name,
		Unit:      unit,
		StartTime: now,
		EndTime:   now.Add(time.Duration(duration) * time.Minute),
		WorkerID:  worker.ID,
		Quality:   step.QualityFactor,
	}
	for _, m := range machines {
		task.MachineID = append(task.MachineID, m.ID)
	}
	o.Tasks = append(o.Tasks, task)

	s.engine.Schedule(duration, func() {
		s.completeStep(o, unit, stepIdx, unitMin, step, task, worker, machines, duration)
	})
}

// acquire resolves and reserves one eligible worker plus one machine per
// required type. On a reservation race it re-queries once at the same
// instant; a second miss counts as the same capacity shortfall as an empty
// query.
func (s *Simulation) acquire(step *domain.ProductionStep, now time.Time) (*domain.Worker, []*domain.Machine, error) {
	worker, err := s.acquireWorker(step, now)
	if err != nil {
		return nil, nil, err
	}

	var machines []*domain.Machine
	for _, machineType := range step.RequiredMachines {
		m, err := s.acquireMachine(machineType, now)
		if err != nil {
			_ = s.pool.Release(worker)
			for _, held := range machines {
				_ = s.pool.Release(held)
			}
			return nil, nil, err
		}
		machines = append(machines, m)
	}
	return worker, machines, nil
}

func (s *Simulation) acquireWorker(step *domain.ProductionStep, now time.Time) (*domain.Worker, error) {
	for attempt := 0; attempt < 2; attempt++ {
		candidates := s.pool.FindEligibleWorkers(step.RequiredSkills, now, step.DurationMin)
		if len(candidates) == 0 {
			return nil, errors.New("no eligible worker")
		}
		if err := s.pool.Reserve(candidates[0]); err == nil {
			return candidates[0], nil
		} else if !errors.Is(err, pool.ErrUnavailable) {
			return nil, err
		}
	}
	return nil, errors.New("no eligible worker")
}

func (s *Simulation) acquireMachine(machineType string, now time.Time) (*domain.Machine, error) {
	for attempt := 0; attempt < 2; attempt++ {
		candidates := s.pool.FindEligibleMachines(machineType, now)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no eligible machine of type %s", machineType)
		}
		if err := s.pool.Reserve(candidates[0]); err == nil {
			return candidates[0], nil
		} else if !errors.Is(err, pool.ErrUnavailable) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no eligible machine of type %s", machineType)
}

// completeStep fires when the step's simulated duration has elapsed: it
// applies fatigue, samples a worker slip, then finalizes. On an error-prone
// step a slip extends the task by a fixed rework period before finalizing;
// the worker and machines stay reserved through the extension. Finalizing
// applies machine wear, samples breakdowns, halves the task quality on any
// incident, releases everything, and chains the next step.
func (s *Simulation) completeStep(o *domain.Order, unit, stepIdx, unitMin int, step *domain.ProductionStep, task *domain.ScheduledTask, worker *domain.Worker, machines []*domain.Machine, duration int) {
	degrade.ApplyWork(worker, duration)

	workerErred := s.rng.Float64() < degrade.WorkerErrorProbability(worker)
	if workerErred {
		s.stats.WorkerErrors++
		s.emit(Event{
			Time:    s.engine.Now(),
			Type:    EventWorkerError,
			OrderID: o.ID,
			Subject: worker.ID,
			Message: fmt.Sprintf("%s erred during %s (fatigue %d)", worker.Name, step.Name, worker.Fatigue),
		})
	}

	extension := 0
	if workerErred && step.ErrorProne {
		extension = reworkExtensionMin
	}

	finalize := func() {
		now := s.engine.Now()
		incident := workerErred
		for _, m := range machines {
			degrade.ApplyOperation(m, duration+extension)
			if s.rng.Float64() < degrade.MachineFailureRisk(m) {
				incident = true
				s.stats.MachineBreakdowns++
				_ = s.pool.TransitionMachine(m, domain.StatusBreakdown)
				s.maint.Enqueue(m, domain.MaintenanceEmergency)
				s.emit(Event{
					Time:    now,
					Type:    EventMachineBreakdown,
					OrderID: o.ID,
					Subject: m.ID,
					Message: fmt.Sprintf("%s failed during %s (wear %d)", m.Name, step.Name, m.Wear),
				})
				continue
			}
			_ = s.pool.Release(m)
		}
		if incident {
			s.stats.QualityIncidents++
			task.Quality *= 0.5
		}

		_ = s.pool.Release(worker)
		task.Completed = true
		task.EndTime = now
		s.emit(Event{
			Time:    now,
			Type:    EventStepCompleted,
			OrderID: o.ID,
			Subject: step.ID,
			Message: fmt.Sprintf("unit %d: %s by %s", unit, step.Name, worker.Name),
		})
		s.runStep(o, unit, stepIdx+1, unitMin+duration+extension)
	}

	if extension > 0 {
		s.engine.Schedule(extension, finalize)
		return
	}
	finalize()
}

// finishUnit records one fully produced unit, then either starts the next
// unit or completes the order.
func (s *Simulation) finishUnit(o *domain.Order, unit, unitMin int) {
	o.UnitsDone++
	s.stats.BikesProduced++
	s.stats.TotalProductionMin += unitMin
	s.emit(Event{
		Time:    s.engine.Now(),
		Type:    EventUnitCompleted,
		OrderID: o.ID,
		Message: fmt.Sprintf("unit %d of %d (%d min)", unit, o.Quantity, unitMin),
	})

	if o.UnitsDone < o.Quantity {
		s.engine.Schedule(0, func() { s.runStep(o, unit+1, 0, 0) })
		return
	}

	if err := o.Transition(domain.OrderCompleted); err != nil {
		return
	}
	s.stats.OrdersCompleted++
	s.emit(Event{
		Time:    s.engine.Now(),
		Type:    EventOrderCompleted,
		OrderID: o.ID,
		Message: fmt.Sprintf("%d units for %s", o.Quantity, o.Customer),
	})
}

// cancelOrder moves an order to the cancelled terminal state. An in-flight
// step completion still releases its reservations; only new continuations
// stop.
func (s *Simulation) cancelOrder(o *domain.Order, reason string) {
	if o.Terminal() {
		return
	}
	if err := o.Transition(domain.OrderCancelled); err != nil {
		return
	}
	s.stats.OrdersCancelled++
	s.emit(Event{
		Time:    s.engine.Now(),
		Type:    EventOrderCancelled,
		OrderID: o.ID,
		Message: reason,
	})
}
