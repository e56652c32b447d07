// Package factory wires the event engine, resource pool, degradation model,
// and the maintenance and shift subsystems into one simulation context, and
// drives orders through production. There are no ambient globals; everything
// hangs off the Simulation constructed here.
package factory

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/maintenance"
	"github.com/selimslab/factory-simulator/internal/pool"
	"github.com/selimslab/factory-simulator/internal/shift"
	"github.com/selimslab/factory-simulator/internal/sim"
)

type Config struct {
	Start    time.Time
	Seed     int64
	Observer Observer
}

type Simulation struct {
	engine *sim.Engine
	pool   *pool.Pool
	maint  *maintenance.Manager
	shifts *shift.Manager
	rng    *rand.Rand

	models map[string]*domain.BikeModel
	orders []*domain.Order

	stats    Stats
	events   []Event
	observer Observer

	start time.Time
}

// New constructs a simulation over the immutable seed collections. The seed
// fixes every stochastic draw, so two runs with the same seed and order book
// produce identical statistics.
func New(cfg Config, workers []*domain.Worker, machines []*domain.Machine, materials []*domain.Material, models []*domain.BikeModel) (*Simulation, error) {
	p, err := pool.New(workers, machines, materials)
	if err != nil {
		return nil, fmt.Errorf("building resource pool: %w", err)
	}

	obs := cfg.Observer
	if obs == nil {
		obs = NoopObserver{}
	}

	engine := sim.NewEngine(cfg.Start)
	s := &Simulation{
		engine:   engine,
		pool:     p,
		maint:    maintenance.NewManager(engine, p),
		shifts:   shift.NewManager(engine, p),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		models:   make(map[string]*domain.BikeModel, len(models)),
		observer: obs,
		start:    cfg.Start,
	}
	for _, m := range models {
		s.models[m.ID] = m
	}

	s.maint.OnPerformed = func(log domain.MaintenanceLog) {
		s.emit(Event{
			Time:    s.engine.Now(),
			Type:    EventMaintenancePerformed,
			Subject: log.MachineID,
			Message: fmt.Sprintf("%s maintenance by %s (%d min)", log.Kind, log.PerformedBy, log.DurationMin),
		})
	}
	s.shifts.OnTransition = func(w *domain.Worker, from, to domain.ResourceStatus) {
		s.emit(Event{
			Time:    s.engine.Now(),
			Type:    EventShiftChange,
			Subject: w.ID,
			Message: fmt.Sprintf("%s: %s -> %s", w.Name, from, to),
		})
	}

	s.maint.Start()
	s.shifts.Start()
	return s, nil
}

func (s *Simulation) Engine() *sim.Engine     { return s.engine }
func (s *Simulation) Pool() *pool.Pool        { return s.pool }
func (s *Simulation) Orders() []*domain.Order { return s.orders }
func (s *Simulation) Events() []Event         { return s.events }

// Model returns a registered recipe by id.
func (s *Simulation) Model(id string) (*domain.BikeModel, bool) {
	m, ok := s.models[id]
	return m, ok
}

// Models returns all registered recipes in ID order, so callers building
// menus or reports see a stable listing.
func (s *Simulation) Models() []*domain.BikeModel {
	out := make([]*domain.BikeModel, 0, len(s.models))
	for _, m := range s.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
	s.observer.Observe(e)
}

// Run advances the simulation to the horizon and returns the final snapshot.
func (s *Simulation) Run(horizonMin int) Stats {
	s.engine.Run(s.start.Add(time.Duration(horizonMin) * time.Minute))
	return s.Snapshot()
}

// RunUntil advances the simulation to an absolute simulated instant. Used by
// incremental front ends; Run is the batch path.
func (s *Simulation) RunUntil(t time.Time) {
	s.engine.Run(t)
}

// Snapshot derives the current statistics. Once the queue is drained it is
// final: an order still in production at teardown shows up as incomplete, not
// as an error.
func (s *Simulation) Snapshot() Stats {
	out := s.stats
	out.Maintenance = s.maint.Stats()

	if out.BikesProduced > 0 {
		out.AvgProductionMin = float64(out.TotalProductionMin) / float64(out.BikesProduced)
	}

	workers := s.pool.Workers()
	if len(workers) > 0 {
		total := 0
		for _, w := range workers {
			total += w.Fatigue
		}
		out.AvgWorkerFatigue = float64(total) / float64(len(workers))
	}

	for _, o := range s.orders {
		if o.Status == domain.OrderInProduction {
			out.IncompleteOrders++
		}
	}
	return out
}

// SubmitOrder creates an order and queues it for processing at the current
// simulated instant.
func (s *Simulation) SubmitOrder(customer, modelID string, quantity int, due time.Time) (*domain.Order, error) {
	return s.SubmitOrderAfter(0, customer, modelID, quantity, due)
}

// SubmitOrderAfter creates an order that arrives delayMin simulated minutes
// from now.
func (s *Simulation) SubmitOrderAfter(delayMin int, customer, modelID string, quantity int, due time.Time) (*domain.Order, error) {
	model, ok := s.models[modelID]
	if !ok {
		return nil, fmt.Errorf("unknown bike model %q", modelID)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("order quantity must be positive, got %d", quantity)
	}
	o := &domain.Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Model:     model,
		Quantity:  quantity,
		DueDate:   due,
		Status:    domain.OrderReceived,
		CreatedAt: s.engine.Now(),
	}
	s.orders = append(s.orders, o)
	s.engine.Schedule(delayMin, func() { s.processOrder(o) })
	return o, nil
}

// GenerateOrders schedules maxOrders random order arrivals with exponential
// interarrival times around meanGapMin, drawing recipe, quantity, and due
// date from the seeded generator.
func (s *Simulation) GenerateOrders(maxOrders int, meanGapMin float64) {
	ids := make([]string, 0, len(s.models))
	for id := range s.models {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return
	}
	// Map iteration order is random; sort for reproducibility.
	sort.Strings(ids)

	delay := 0
	for i := 0; i < maxOrders; i++ {
		modelID := ids[s.rng.Intn(len(ids))]
		quantity := 1 + s.rng.Intn(5)
		due := s.start.AddDate(0, 0, 3+s.rng.Intn(12))
		customer := fmt.Sprintf("Customer %d", i+1)

		_, _ = s.SubmitOrderAfter(delay, customer, modelID, quantity, due)
		delay += int(s.rng.ExpFloat64() * meanGapMin)
	}
}

// MarkDelayed transitions an order to the delayed terminal state. Delayed
// orders are not retried; they require external re-submission.
func (s *Simulation) MarkDelayed(orderID string) error {
	for _, o := range s.orders {
		if o.ID == orderID {
			if err := o.Transition(domain.OrderDelayed); err != nil {
				return err
			}
			s.stats.OrdersDelayed++
			return nil
		}
	}
	return fmt.Errorf("unknown order %q", orderID)
}
