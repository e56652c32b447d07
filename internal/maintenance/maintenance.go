// Package maintenance detects machines needing service and dispatches
// maintenance work that competes for the same worker pool as production.
package maintenance

import (
	"github.com/google/uuid"

	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/pool"
	"github.com/selimslab/factory-simulator/internal/sim"
)

const (
	TickMin = 60

	// PreventiveWearThreshold is the wear level past which a machine gets
	// preventive service queued even before its interval elapses.
	PreventiveWearThreshold = 50
)

type request struct {
	machine *domain.Machine
	kind    domain.MaintenanceKind
}

// Stats aggregates maintenance activity for the simulation snapshot.
type Stats struct {
	RoutinePerformed    int
	PreventivePerformed int
	CorrectivePerformed int
	EmergencyPerformed  int
	TotalDowntimeMin    int
	Deferred            int
}

type Manager struct {
	engine *sim.Engine
	pool   *pool.Pool

	// emergency drains fully before routine; routine drains one entry per
	// tick, FIFO.
	emergency []request
	routine   []request
	queued    map[string]bool // machine ids with any queued entry

	stats Stats

	// OnPerformed, when set, observes every finished maintenance event.
	OnPerformed func(log domain.MaintenanceLog)
}

func NewManager(engine *sim.Engine, p *pool.Pool) *Manager {
	return &Manager{
		engine: engine,
		pool:   p,
		queued: make(map[string]bool),
	}
}

// Start arms the periodic tick.
func (m *Manager) Start() {
	m.engine.Every(TickMin, m.Tick)
}

func (m *Manager) Stats() Stats { return m.stats }

// Enqueue queues a maintenance request for a machine. Corrective and
// emergency kinds take the priority queue; routine and preventive the FIFO
// queue. A machine already queued is not queued twice, except that a priority
// kind supersedes a still-pending routine or preventive entry for the same
// machine, so a breakdown always gets the full emergency service.
func (m *Manager) Enqueue(machine *domain.Machine, kind domain.MaintenanceKind) {
	priority := kind == domain.MaintenanceEmergency || kind == domain.MaintenanceCorrective
	req := request{machine: machine, kind: kind}

	if m.queued[machine.ID] {
		if !priority {
			return
		}
		for i, pending := range m.routine {
			if pending.machine.ID == machine.ID {
				m.routine = append(m.routine[:i], m.routine[i+1:]...)
				m.emergency = append(m.emergency, req)
				return
			}
		}
		return
	}

	m.queued[machine.ID] = true
	if priority {
		m.emergency = append(m.emergency, req)
	} else {
		m.routine = append(m.routine, req)
	}
}

// Tick drains the emergency queue, then at most one routine entry, then scans
// machines to self-generate new demand. Entries that cannot be resourced are
// deferred to the next tick, never blocking the scheduler.
func (m *Manager) Tick() {
	var deferred []request
	for _, req := range m.emergency {
		if !m.dispatch(req) {
			m.stats.Deferred++
			deferred = append(deferred, req)
		}
	}
	m.emergency = deferred

	if len(m.emergency) == 0 && len(m.routine) > 0 {
		if m.dispatch(m.routine[0]) {
			m.routine = m.routine[1:]
		} else {
			m.stats.Deferred++
		}
	}

	m.scan()
}

// scan enqueues routine maintenance for machines past their service interval
// and preventive maintenance for worn machines, making demand self-generating.
func (m *Manager) scan() {
	now := m.engine.Now()
	for _, machine := range m.pool.Machines() {
		if machine.Status != domain.StatusAvailable || m.queued[machine.ID] {
			continue
		}
		switch {
		case machine.NeedsService(now):
			m.Enqueue(machine, domain.MaintenanceRoutine)
		case machine.Wear > PreventiveWearThreshold:
			m.Enqueue(machine, domain.MaintenancePreventive)
		}
	}
}

// dispatch reserves a skilled worker and the machine, holds both for the
// kind's fixed duration, then applies the wear reduction and logs the event.
// Returns false when no eligible worker exists or the machine cannot enter
// maintenance, leaving the entry for the next tick.
func (m *Manager) dispatch(req request) bool {
	kind := req.kind
	machine := req.machine
	now := m.engine.Now()

	workers := m.pool.FindSkilledWorkers(domain.SkillMaintenance, kind.RequiredSkillLevel())
	if len(workers) == 0 {
		return false
	}
	worker := workers[0]

	// Reserve the worker before the machine: a worker rollback is always a
	// legal edge, while a machine entering from breakdown has no way back.
	if err := m.pool.TransitionWorker(worker, domain.StatusUnavailable); err != nil {
		return false
	}
	if err := m.pool.TransitionMachine(machine, domain.StatusMaintenance); err != nil {
		_ = m.pool.TransitionWorker(worker, domain.StatusAvailable)
		return false
	}

	duration := kind.DurationMin()
	m.engine.Schedule(duration, func() {
		log := domain.MaintenanceLog{
			ID:          uuid.NewString(),
			MachineID:   machine.ID,
			Kind:        kind,
			PerformedBy: worker.ID,
			StartTime:   now,
			DurationMin: duration,
			Success:     true,
		}
		machine.ApplyMaintenance(log)
		_ = m.pool.TransitionMachine(machine, domain.StatusAvailable)
		_ = m.pool.TransitionWorker(worker, domain.StatusAvailable)
		delete(m.queued, machine.ID)

		m.stats.TotalDowntimeMin += duration
		switch kind {
		case domain.MaintenanceRoutine:
			m.stats.RoutinePerformed++
		case domain.MaintenancePreventive:
			m.stats.PreventivePerformed++
		case domain.MaintenanceCorrective:
			m.stats.CorrectivePerformed++
		case domain.MaintenanceEmergency:
			m.stats.EmergencyPerformed++
		}
		if m.OnPerformed != nil {
			m.OnPerformed(log)
		}
	})
	return true
}
