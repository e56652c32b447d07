package domain

// Resource is the shared query surface the pool exposes over workers and
// machines. The two keep distinct internal state; only identity and status
// are common.
type Resource interface {
	ResourceID() string
	ResourceStatus() ResourceStatus
}

type Worker struct {
	ID         string
	Name       string
	Type       WorkerType
	Skills     map[Skill]SkillLevel
	Schedule   WorkSchedule
	Status     ResourceStatus
	HourlyRate float64

	// Fatigue is a 0-100 scalar. It is mutated only by the degradation
	// model and the shift subsystem.
	Fatigue         int
	ExperienceYears float64
	BaseErrorRate   float64
}

func (w *Worker) ResourceID() string             { return w.ID }
func (w *Worker) ResourceStatus() ResourceStatus { return w.Status }

// HasSkill reports whether the worker holds skill at or above level.
func (w *Worker) HasSkill(skill Skill, level SkillLevel) bool {
	held, ok := w.Skills[skill]
	return ok && held >= level
}

// MeetsAll reports whether the worker's skill map dominates the required map
// component-wise by level.
func (w *Worker) MeetsAll(required map[Skill]SkillLevel) bool {
	for skill, level := range required {
		if !w.HasSkill(skill, level) {
			return false
		}
	}
	return true
}

// workerTransitions enumerates the legal worker status edges. Busy and
// unavailable are entered only through the pool (reservation and maintenance
// duty); the shift subsystem drives the off-shift/break edges.
var workerTransitions = map[ResourceStatus]map[ResourceStatus]bool{
	StatusOffShift:    {StatusAvailable: true},
	StatusAvailable:   {StatusOffShift: true, StatusOnBreak: true, StatusBusy: true, StatusUnavailable: true},
	StatusOnBreak:     {StatusAvailable: true},
	StatusBusy:        {StatusAvailable: true},
	StatusUnavailable: {StatusAvailable: true},
}

// ValidWorkerTransition reports whether from→to is a legal worker edge.
func ValidWorkerTransition(from, to ResourceStatus) bool {
	return workerTransitions[from][to]
}
