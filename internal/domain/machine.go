package domain

import "time"

type Machine struct {
	ID             string
	Name           string
	Type           string
	SkillsRequired map[Skill]SkillLevel
	Status         ResourceStatus

	// Wear is a 0-100 scalar, monotonically non-decreasing except through
	// maintenance. CriticalThreshold is where failure risk turns quadratic.
	Wear              int
	CriticalThreshold int

	OperatingHours      float64
	ExpectedLifetimeHrs float64

	// RoutineIntervalHrs is how many hours may pass since LastServiced
	// before routine maintenance is due.
	RoutineIntervalHrs float64
	LastServiced       time.Time

	History []MaintenanceLog
}

func (m *Machine) ResourceID() string             { return m.ID }
func (m *Machine) ResourceStatus() ResourceStatus { return m.Status }

// NeedsService reports whether the routine service interval has elapsed.
func (m *Machine) NeedsService(now time.Time) bool {
	return now.Sub(m.LastServiced).Hours() >= m.RoutineIntervalHrs
}

// MaintenanceLog is an immutable record of one maintenance event, owned by
// the machine as append-only history.
type MaintenanceLog struct {
	ID          string
	MachineID   string
	Kind        MaintenanceKind
	PerformedBy string
	StartTime   time.Time
	DurationMin int
	Success     bool
}

// ApplyMaintenance reduces wear by the kind's fixed amount (clamped at zero),
// resets the service clock for routine and preventive kinds, and appends the
// log record. Status changes stay with the pool.
func (m *Machine) ApplyMaintenance(log MaintenanceLog) {
	m.Wear -= log.Kind.WearReduction()
	if m.Wear < 0 {
		m.Wear = 0
	}
	if log.Kind == MaintenanceRoutine || log.Kind == MaintenancePreventive {
		m.LastServiced = log.StartTime
	}
	m.History = append(m.History, log)
}

// machineTransitions enumerates the legal machine status edges. Breakdown is
// entered only from busy (failure sampled mid-operation); maintenance exits
// back to available once serviced.
var machineTransitions = map[ResourceStatus]map[ResourceStatus]bool{
	StatusAvailable:   {StatusBusy: true, StatusMaintenance: true},
	StatusBusy:        {StatusAvailable: true, StatusBreakdown: true},
	StatusBreakdown:   {StatusMaintenance: true},
	StatusMaintenance: {StatusAvailable: true},
}

// ValidMachineTransition reports whether from→to is a legal machine edge.
func ValidMachineTransition(from, to ResourceStatus) bool {
	return machineTransitions[from][to]
}
