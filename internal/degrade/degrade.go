// Package degrade holds the fatigue, wear, and risk formulas, plus the only
// mutators allowed to touch worker fatigue and machine wear.
package degrade

import (
	"math"

	"github.com/selimslab/factory-simulator/internal/domain"
)

// FatigueAfterWork adds one fatigue point per 30 worked minutes, capped at 100.
func FatigueAfterWork(fatigue, workedMin int) int {
	f := fatigue + workedMin/30
	if f > 100 {
		f = 100
	}
	return f
}

// FatigueAfterRest removes one fatigue point per 15 rested minutes, floored
// at zero.
func FatigueAfterRest(fatigue, restedMin int) int {
	f := fatigue - restedMin/15
	if f < 0 {
		f = 0
	}
	return f
}

// ErrorProbability is the chance a worker slips on a task. Experience gives
// diminishing returns (square root); under a year of experience the divisor
// drops below 1 and raises the probability above the base rate. Fatigue
// compounds quadratically near exhaustion. Capped at 0.95.
func ErrorProbability(baseRate, experienceYears float64, fatigue int) float64 {
	if experienceYears <= 0 {
		experienceYears = 1
	}
	base := baseRate / math.Sqrt(experienceYears)
	fatigueFactor := 1.0 + math.Pow(float64(fatigue)/50.0, 2)
	return math.Min(0.95, base*fatigueFactor)
}

// WearIncrease is the wear points accrued by operating for the given minutes.
// Accrual accelerates with machine age relative to expected lifetime.
func WearIncrease(operatedMin int, operatingHours, expectedLifetimeHrs float64) int {
	hours := float64(operatedMin) / 60.0
	ageFactor := 0.0
	if expectedLifetimeHrs > 0 {
		ageFactor = operatingHours / expectedLifetimeHrs
	}
	return int(hours * (1 + ageFactor))
}

// FailureRisk is the probability a machine fails during an operation. Below
// the critical threshold risk rises linearly; at or past it, quadratically in
// the excess wear, capped at 0.90. The cliff is what makes preventive
// maintenance economically necessary.
func FailureRisk(wear, criticalThreshold int) float64 {
	if criticalThreshold <= 0 {
		criticalThreshold = 80
	}
	if wear >= criticalThreshold {
		excess := float64(wear-criticalThreshold) / 20.0
		return math.Min(0.90, 0.1+excess*excess)
	}
	return float64(wear) / float64(criticalThreshold*10)
}

// ApplyWork charges a finished task's minutes against the worker's fatigue.
func ApplyWork(w *domain.Worker, workedMin int) {
	w.Fatigue = FatigueAfterWork(w.Fatigue, workedMin)
}

// ApplyRest credits a break against the worker's fatigue.
func ApplyRest(w *domain.Worker, restedMin int) {
	w.Fatigue = FatigueAfterRest(w.Fatigue, restedMin)
}

// ApplyOffShiftTick recovers one fatigue point for an off-shift worker.
func ApplyOffShiftTick(w *domain.Worker) {
	if w.Fatigue > 0 {
		w.Fatigue--
	}
}

// ApplyOperation charges operating minutes against a machine: operating hours
// grow and wear accrues, capped at 100.
func ApplyOperation(m *domain.Machine, operatedMin int) {
	m.OperatingHours += float64(operatedMin) / 60.0
	m.Wear += WearIncrease(operatedMin, m.OperatingHours, m.ExpectedLifetimeHrs)
	if m.Wear > 100 {
		m.Wear = 100
	}
}

// WorkerErrorProbability evaluates ErrorProbability against a worker's
// current state.
func WorkerErrorProbability(w *domain.Worker) float64 {
	return ErrorProbability(w.BaseErrorRate, w.ExperienceYears, w.Fatigue)
}

// MachineFailureRisk evaluates FailureRisk against a machine's current state.
func MachineFailureRisk(m *domain.Machine) float64 {
	return FailureRisk(m.Wear, m.CriticalThreshold)
}
