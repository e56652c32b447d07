package testutil

import (
	"time"

	"github.com/selimslab/factory-simulator/internal/domain"
)

// FixtureStart is a Monday at 09:00, well inside the morning shift, so
// fixture workers are rostered from the first simulated instant.
var FixtureStart = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

// Worker options
type WorkerOption func(*domain.Worker)

func WithSkill(skill domain.Skill, level domain.SkillLevel) WorkerOption {
	return func(w *domain.Worker) {
		w.Skills[skill] = level
	}
}

func WithFatigue(fatigue int) WorkerOption {
	return func(w *domain.Worker) {
		w.Fatigue = fatigue
	}
}

func WithWorkerStatus(s domain.ResourceStatus) WorkerOption {
	return func(w *domain.Worker) {
		w.Status = s
	}
}

func WithErrorRate(base, experienceYears float64) WorkerOption {
	return func(w *domain.Worker) {
		w.BaseErrorRate = base
		w.ExperienceYears = experienceYears
	}
}

func WithShift(day time.Weekday, kind domain.ShiftKind) WorkerOption {
	return func(w *domain.Worker) {
		w.Schedule.Shifts[day] = kind
	}
}

// NewWorker builds an available full-time worker on a seven-day morning
// roster. The default error rate is zero so tests that do not exercise the
// stochastic path stay deterministic.
func NewWorker(id string, opts ...WorkerOption) *domain.Worker {
	schedule := domain.NewWorkSchedule()
	for day := time.Sunday; day <= time.Saturday; day++ {
		schedule.Shifts[day] = domain.ShiftMorning
	}
	w := &domain.Worker{
		ID:              id,
		Name:            "Worker " + id,
		Type:            domain.FullTime,
		Skills:          make(map[domain.Skill]domain.SkillLevel),
		Schedule:        schedule,
		Status:          domain.StatusAvailable,
		HourlyRate:      30,
		ExperienceYears: 20,
		BaseErrorRate:   0,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Machine options
type MachineOption func(*domain.Machine)

func WithWear(wear int) MachineOption {
	return func(m *domain.Machine) {
		m.Wear = wear
	}
}

func WithMachineStatus(s domain.ResourceStatus) MachineOption {
	return func(m *domain.Machine) {
		m.Status = s
	}
}

func WithServiceInterval(hrs float64) MachineOption {
	return func(m *domain.Machine) {
		m.RoutineIntervalHrs = hrs
	}
}

// NewMachine builds an available machine last serviced at FixtureStart, with
// a service interval long enough that routine maintenance never fires unless
// a test shortens it.
func NewMachine(id, machineType string, opts ...MachineOption) *domain.Machine {
	m := &domain.Machine{
		ID:                  id,
		Name:                "Machine " + id,
		Type:                machineType,
		SkillsRequired:      make(map[domain.Skill]domain.SkillLevel),
		Status:              domain.StatusAvailable,
		CriticalThreshold:   80,
		ExpectedLifetimeHrs: 43800,
		RoutineIntervalHrs:  10000,
		LastServiced:        FixtureStart,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SingleStepModel builds a one-step recipe around the given step.
func SingleStepModel(id string, step *domain.ProductionStep) *domain.BikeModel {
	return &domain.BikeModel{
		ID:        id,
		Name:      "Model " + id,
		Type:      "road",
		Steps:     []*domain.ProductionStep{step},
		BasePrice: 1000,
	}
}
