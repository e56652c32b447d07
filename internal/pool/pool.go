// Package pool is the single source of truth for worker and machine status
// and the material ledger. Every other component requests and releases
// resources through it; none may write status fields directly. That routing
// is what prevents the independently ticking maintenance and order subsystems
// from double-booking the same resource.
package pool

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/selimslab/factory-simulator/internal/domain"
)

// ErrUnavailable signals transient contention: the resource's status changed
// between query and reservation. Callers must re-query rather than treat a
// query result as a lock.
var ErrUnavailable = errors.New("resource unavailable")

// ErrShortMaterials signals that the ledger cannot cover a requirement set.
var ErrShortMaterials = errors.New("insufficient materials")

type Pool struct {
	workers   []*domain.Worker
	machines  []*domain.Machine
	inventory map[string]*domain.Material
}

// New builds a pool over the seed collections. Workers and machines are kept
// sorted by identity so eligibility queries return a stable, deterministic
// order. Seed skills are validated against the canonical skill domain.
func New(workers []*domain.Worker, machines []*domain.Machine, materials []*domain.Material) (*Pool, error) {
	for _, w := range workers {
		for skill := range w.Skills {
			if !domain.AllSkills[skill] {
				return nil, fmt.Errorf("worker %s: unknown skill %q", w.ID, skill)
			}
		}
	}
	for _, m := range machines {
		for skill := range m.SkillsRequired {
			if !domain.AllSkills[skill] {
				return nil, fmt.Errorf("machine %s: unknown skill %q", m.ID, skill)
			}
		}
	}

	p := &Pool{
		workers:   append([]*domain.Worker(nil), workers...),
		machines:  append([]*domain.Machine(nil), machines...),
		inventory: make(map[string]*domain.Material, len(materials)),
	}
	sort.Slice(p.workers, func(i, j int) bool { return p.workers[i].ID < p.workers[j].ID })
	sort.Slice(p.machines, func(i, j int) bool { return p.machines[i].ID < p.machines[j].ID })
	for _, mat := range materials {
		p.inventory[mat.ID] = mat
	}
	return p, nil
}

func (p *Pool) Workers() []*domain.Worker   { return p.workers }
func (p *Pool) Machines() []*domain.Machine { return p.machines }

// FindEligibleWorkers returns, in stable ID order, the available workers
// whose skills dominate the requirement and whose shift calendar covers the
// whole span at 15-minute granularity.
func (p *Pool) FindEligibleWorkers(required map[domain.Skill]domain.SkillLevel, at time.Time, durationMin int) []*domain.Worker {
	var eligible []*domain.Worker
	for _, w := range p.workers {
		if w.Status != domain.StatusAvailable {
			continue
		}
		if !w.MeetsAll(required) {
			continue
		}
		if !w.Schedule.CoversSpan(at, durationMin) {
			continue
		}
		eligible = append(eligible, w)
	}
	return eligible
}

// FindSkilledWorkers returns the available workers holding one skill at or
// above the given level, ignoring shift calendars. Maintenance uses it:
// service work may run past a shift boundary.
func (p *Pool) FindSkilledWorkers(skill domain.Skill, level domain.SkillLevel) []*domain.Worker {
	var eligible []*domain.Worker
	for _, w := range p.workers {
		if w.Status != domain.StatusAvailable {
			continue
		}
		if !w.HasSkill(skill, level) {
			continue
		}
		eligible = append(eligible, w)
	}
	return eligible
}

// FindEligibleMachines returns the available machines of the given type whose
// routine service interval has not yet elapsed.
func (p *Pool) FindEligibleMachines(machineType string, at time.Time) []*domain.Machine {
	var eligible []*domain.Machine
	for _, m := range p.machines {
		if m.Type != machineType {
			continue
		}
		if m.Status != domain.StatusAvailable {
			continue
		}
		if m.NeedsService(at) {
			continue
		}
		eligible = append(eligible, m)
	}
	return eligible
}

// Reserve atomically moves a resource to busy. It returns ErrUnavailable when
// the resource is not available anymore, modeling the query/reserve race.
func (p *Pool) Reserve(r domain.Resource) error {
	switch v := r.(type) {
	case *domain.Worker:
		if !domain.ValidWorkerTransition(v.Status, domain.StatusBusy) {
			return ErrUnavailable
		}
		v.Status = domain.StatusBusy
	case *domain.Machine:
		if !domain.ValidMachineTransition(v.Status, domain.StatusBusy) {
			return ErrUnavailable
		}
		v.Status = domain.StatusBusy
	default:
		return fmt.Errorf("reserve: unsupported resource %T", r)
	}
	return nil
}

// Release returns a busy resource to available. Releasing a resource that is
// not busy is an invariant violation and is rejected.
func (p *Pool) Release(r domain.Resource) error {
	switch v := r.(type) {
	case *domain.Worker:
		return p.TransitionWorker(v, domain.StatusAvailable)
	case *domain.Machine:
		return p.TransitionMachine(v, domain.StatusAvailable)
	default:
		return fmt.Errorf("release: unsupported resource %T", r)
	}
}

// TransitionWorker applies a validated worker status edge. Illegal edges are
// rejected, never silently applied.
func (p *Pool) TransitionWorker(w *domain.Worker, to domain.ResourceStatus) error {
	if !domain.ValidWorkerTransition(w.Status, to) {
		return fmt.Errorf("illegal worker transition %s -> %s for %s", w.Status, to, w.ID)
	}
	w.Status = to
	return nil
}

// TransitionMachine applies a validated machine status edge.
func (p *Pool) TransitionMachine(m *domain.Machine, to domain.ResourceStatus) error {
	if !domain.ValidMachineTransition(m.Status, to) {
		return fmt.Errorf("illegal machine transition %s -> %s for %s", m.Status, to, m.ID)
	}
	m.Status = to
	return nil
}

// HasMaterials reports whether the ledger covers every line of the
// requirement set.
func (p *Pool) HasMaterials(required map[string]int) bool {
	for id, qty := range required {
		mat, ok := p.inventory[id]
		if !ok || mat.Quantity < qty {
			return false
		}
	}
	return true
}

// ConsumeMaterials debits the full requirement set or nothing at all.
// Partial consumption is not a permitted state.
func (p *Pool) ConsumeMaterials(required map[string]int) error {
	if !p.HasMaterials(required) {
		return ErrShortMaterials
	}
	for id, qty := range required {
		p.inventory[id].Quantity -= qty
	}
	return nil
}

// MaterialQuantity returns the remaining quantity for a material id, zero if
// unknown.
func (p *Pool) MaterialQuantity(id string) int {
	if mat, ok := p.inventory[id]; ok {
		return mat.Quantity
	}
	return 0
}
