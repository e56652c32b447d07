package domain

import "math"

// ProductionStep is one step of a product recipe. Immutable once the recipe
// is defined.
type ProductionStep struct {
	ID                string
	Name              string
	RequiredSkills    map[Skill]SkillLevel
	RequiredMachines  []string       // machine types
	RequiredMaterials map[string]int // material id -> quantity per unit
	DurationMin       int            // nominal duration
	QualityFactor     float64
	ErrorProne        bool
}

// SkillFactor is the duration multiplier earned by proficiency above the
// required level: each level above minimum shortens the step by 10%. The
// minimum across all required skills wins.
func (s *ProductionStep) SkillFactor(skills map[Skill]SkillLevel) float64 {
	factor := 1.0
	for skill, required := range s.RequiredSkills {
		held, ok := skills[skill]
		if !ok {
			continue
		}
		f := 1.0 - 0.1*float64(held-required)
		if f < factor {
			factor = f
		}
	}
	return factor
}

// FatigueFactor is the duration multiplier for worker fatigue: up to 30%
// slower at full exhaustion.
func FatigueFactor(fatigue int) float64 {
	return 1.0 + 0.3*(float64(fatigue)/100.0)
}

// ActualDurationMin is the realized step duration for a given worker:
// base × skill factor × fatigue factor, rounded to whole minutes.
func (s *ProductionStep) ActualDurationMin(w *Worker) int {
	return int(math.Round(float64(s.DurationMin) * s.SkillFactor(w.Skills) * FatigueFactor(w.Fatigue)))
}

// BikeModel is a product recipe: an ordered list of production steps.
type BikeModel struct {
	ID        string
	Name      string
	Type      string // mountain, road, electric
	Steps     []*ProductionStep
	BasePrice float64
}

// TotalDurationMin sums the nominal durations of all steps.
func (b *BikeModel) TotalDurationMin() int {
	total := 0
	for _, step := range b.Steps {
		total += step.DurationMin
	}
	return total
}

// MaterialRequirements aggregates the recipe's per-unit material needs
// multiplied by quantity.
func (b *BikeModel) MaterialRequirements(quantity int) map[string]int {
	req := make(map[string]int)
	for _, step := range b.Steps {
		for id, qty := range step.RequiredMaterials {
			req[id] += qty * quantity
		}
	}
	return req
}

// Material is one row of the inventory ledger.
type Material struct {
	ID       string
	Name     string
	Quantity int
	Location string
	UnitCost float64
}
