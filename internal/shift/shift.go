// Package shift moves workers between on-shift, off-shift, and break states
// on a fixed 15-minute tick, independent of production demand.
package shift

import (
	"time"

	"github.com/selimslab/factory-simulator/internal/degrade"
	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/pool"
	"github.com/selimslab/factory-simulator/internal/sim"
)

const (
	TickMin = 15

	// BreakThreshold is the fatigue level past which a worker is sent on a
	// fixed 30-minute break.
	BreakThreshold = 70
	BreakMin       = 30
)

type Manager struct {
	engine *sim.Engine
	pool   *pool.Pool

	breakEnd map[string]time.Time

	// OnTransition, when set, observes every applied shift/break edge.
	OnTransition func(w *domain.Worker, from, to domain.ResourceStatus)
}

func NewManager(engine *sim.Engine, p *pool.Pool) *Manager {
	return &Manager{
		engine:   engine,
		pool:     p,
		breakEnd: make(map[string]time.Time),
	}
}

// Start arms the periodic tick.
func (m *Manager) Start() {
	m.engine.Every(TickMin, m.Tick)
}

// Tick evaluates the worker state machine once for every worker. Workers in
// externally imposed states (busy, unavailable) are left alone; the pool
// returns them to available when their task completes.
func (m *Manager) Tick() {
	now := m.engine.Now()
	for _, w := range m.pool.Workers() {
		switch w.Status {
		case domain.StatusOffShift:
			if w.Schedule.Covers(now) {
				m.transition(w, domain.StatusAvailable)
			} else {
				degrade.ApplyOffShiftTick(w)
			}

		case domain.StatusAvailable:
			if !w.Schedule.Covers(now) {
				m.transition(w, domain.StatusOffShift)
				continue
			}
			if w.Fatigue > BreakThreshold {
				if _, scheduled := m.breakEnd[w.ID]; !scheduled {
					m.breakEnd[w.ID] = now.Add(BreakMin * time.Minute)
					m.transition(w, domain.StatusOnBreak)
				}
			}

		case domain.StatusOnBreak:
			end, ok := m.breakEnd[w.ID]
			if ok && !now.Before(end) {
				degrade.ApplyRest(w, BreakMin)
				delete(m.breakEnd, w.ID)
				m.transition(w, domain.StatusAvailable)
			}
		}
	}
}

func (m *Manager) transition(w *domain.Worker, to domain.ResourceStatus) {
	from := w.Status
	if err := m.pool.TransitionWorker(w, to); err != nil {
		// The tick only proposes edges out of states it just observed, so a
		// rejection here means another component raced us; skip this worker.
		return
	}
	if m.OnTransition != nil {
		m.OnTransition(w, from, to)
	}
}
