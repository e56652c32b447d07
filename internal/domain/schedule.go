package domain

import "time"

// ShiftKind is a fixed 8-hour shift window.
type ShiftKind string

const (
	ShiftMorning   ShiftKind = "morning"   // 06:00-14:00
	ShiftAfternoon ShiftKind = "afternoon" // 14:00-22:00
	ShiftNight     ShiftKind = "night"     // 22:00-06:00
)

// covers reports whether the wall-clock hour falls inside the shift window.
func (s ShiftKind) covers(hour int) bool {
	switch s {
	case ShiftMorning:
		return hour >= 6 && hour < 14
	case ShiftAfternoon:
		return hour >= 14 && hour < 22
	case ShiftNight:
		return hour >= 22 || hour < 6
	}
	return false
}

const dateLayout = "2006-01-02"

// WorkSchedule is a worker's weekly shift assignment plus vacation and sick
// day exceptions. Days without an assigned shift are days off.
type WorkSchedule struct {
	Shifts       map[time.Weekday]ShiftKind
	VacationDays map[string]bool // keyed by date in YYYY-MM-DD
	SickDays     map[string]bool
}

func NewWorkSchedule() WorkSchedule {
	return WorkSchedule{
		Shifts:       make(map[time.Weekday]ShiftKind),
		VacationDays: make(map[string]bool),
		SickDays:     make(map[string]bool),
	}
}

// AddVacation marks the calendar date of t as a vacation day.
func (ws WorkSchedule) AddVacation(t time.Time) {
	ws.VacationDays[t.Format(dateLayout)] = true
}

// AddSickDay marks the calendar date of t as a sick day.
func (ws WorkSchedule) AddSickDay(t time.Time) {
	ws.SickDays[t.Format(dateLayout)] = true
}

// Covers reports whether the worker is rostered at instant t: the day is not
// an exception day and t falls inside the day's assigned shift window.
func (ws WorkSchedule) Covers(t time.Time) bool {
	date := t.Format(dateLayout)
	if ws.VacationDays[date] || ws.SickDays[date] {
		return false
	}
	shift, ok := ws.Shifts[t.Weekday()]
	if !ok {
		return false
	}
	return shift.covers(t.Hour())
}

// CoversSpan checks every 15-minute sub-interval of [start, start+durationMin).
// Checking sub-intervals handles shift-boundary crossings and mid-task
// vacation exceptions.
func (ws WorkSchedule) CoversSpan(start time.Time, durationMin int) bool {
	end := start.Add(time.Duration(durationMin) * time.Minute)
	for cur := start; cur.Before(end); cur = cur.Add(15 * time.Minute) {
		if !ws.Covers(cur) {
			return false
		}
	}
	return true
}
