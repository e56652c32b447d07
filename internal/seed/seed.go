// Package seed supplies the immutable input collections the simulation is
// constructed with: workers, machines, the material ledger, and bike recipes.
package seed

import (
	"time"

	"github.com/selimslab/factory-simulator/internal/domain"
)

type workerSpec struct {
	id         string
	name       string
	kind       domain.WorkerType
	skills     map[domain.Skill]domain.SkillLevel
	rate       float64
	experience float64
}

// Workers returns the shop's staff with weekly shift patterns assigned by
// worker type: full-timers rotate across the three shifts five days a week,
// part-timers cover three days, apprentices work four mornings.
func Workers() []*domain.Worker {
	specs := []workerSpec{
		{"emp-01", "John Smith", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillFrameWelding: domain.LevelExpert,
			domain.SkillTubeCutting:  domain.LevelAdvanced,
			domain.SkillMaintenance:  domain.LevelIntermediate,
		}, 28.50, 8.5},
		{"emp-02", "Maria Garcia", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillFrameWelding: domain.LevelAdvanced,
			domain.SkillTubeCutting:  domain.LevelIntermediate,
		}, 24.75, 5.2},
		{"emp-03", "Jamal Washington", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillComponentAssembly: domain.LevelExpert,
			domain.SkillWheelBuilding:     domain.LevelAdvanced,
		}, 26.50, 7.3},
		{"emp-04", "Sarah Johnson", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillComponentAssembly: domain.LevelAdvanced,
			domain.SkillSuspensionTuning:  domain.LevelExpert,
		}, 27.00, 6.5},
		{"emp-05", "Li Wei", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillWheelBuilding:     domain.LevelExpert,
			domain.SkillComponentAssembly: domain.LevelIntermediate,
		}, 25.75, 9.1},
		{"emp-06", "Aisha Patel", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillElectronics:       domain.LevelExpert,
			domain.SkillComponentAssembly: domain.LevelAdvanced,
		}, 29.50, 4.8},
		{"emp-07", "Thomas Mueller", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillMachining:   domain.LevelExpert,
			domain.SkillMaintenance: domain.LevelExpert,
		}, 31.00, 12.5},
		{"emp-08", "Sofia Russo", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillPainting: domain.LevelExpert,
		}, 24.00, 8.9},
		{"emp-09", "James Wilson", domain.PartTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillPainting:    domain.LevelAdvanced,
			domain.SkillMaintenance: domain.LevelNovice,
		}, 21.50, 3.7},
		{"emp-10", "Emily Taylor", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillQualityControl:   domain.LevelExpert,
			domain.SkillSuspensionTuning: domain.LevelAdvanced,
		}, 27.50, 9.2},
		{"emp-11", "Carlos Oliveira", domain.FullTime, map[domain.Skill]domain.SkillLevel{
			domain.SkillMaintenance: domain.LevelExpert,
			domain.SkillMachining:   domain.LevelIntermediate,
			domain.SkillElectronics: domain.LevelIntermediate,
		}, 30.00, 15.3},
		{"emp-12", "Tyler Robinson", domain.Apprentice, map[domain.Skill]domain.SkillLevel{
			domain.SkillComponentAssembly: domain.LevelNovice,
			domain.SkillTubeCutting:       domain.LevelNovice,
		}, 17.50, 0.8},
	}

	workers := make([]*domain.Worker, 0, len(specs))
	for i, spec := range specs {
		schedule := domain.NewWorkSchedule()
		switch spec.kind {
		case domain.FullTime:
			shift := []domain.ShiftKind{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight}[i%3]
			for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
				schedule.Shifts[day] = shift
			}
		case domain.PartTime:
			for _, day := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
				schedule.Shifts[day] = domain.ShiftMorning
			}
		case domain.Apprentice:
			for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Thursday, time.Friday} {
				schedule.Shifts[day] = domain.ShiftMorning
			}
		}

		errorRate := 0.1 - spec.experience/100
		if errorRate < 0.01 {
			errorRate = 0.01
		}

		workers = append(workers, &domain.Worker{
			ID:              spec.id,
			Name:            spec.name,
			Type:            spec.kind,
			Skills:          spec.skills,
			Schedule:        schedule,
			Status:          domain.StatusOffShift,
			HourlyRate:      spec.rate,
			ExperienceYears: spec.experience,
			BaseErrorRate:   errorRate,
		})
	}
	return workers
}

// Machines returns the shop's equipment, freshly serviced at the given
// instant. Service intervals and lifetimes are in hours.
func Machines(serviced time.Time) []*domain.Machine {
	specs := []struct {
		id, name, typ string
		skills        map[domain.Skill]domain.SkillLevel
		intervalHrs   float64
	}{
		{"tube_cutter", "Tube Cutting Machine", "CuttingMachine",
			map[domain.Skill]domain.SkillLevel{domain.SkillTubeCutting: domain.LevelIntermediate}, 40},
		{"cnc_mill", "CNC Milling Machine", "CNCMachine",
			map[domain.Skill]domain.SkillLevel{domain.SkillMachining: domain.LevelAdvanced}, 30},
		{"tig_welder_1", "TIG Welding Station 1", "WeldingStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillFrameWelding: domain.LevelIntermediate}, 40},
		{"tig_welder_2", "TIG Welding Station 2", "WeldingStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillFrameWelding: domain.LevelIntermediate}, 40},
		{"wheel_stand_1", "Wheel Truing Stand 1", "WheelStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillWheelBuilding: domain.LevelIntermediate}, 80},
		{"assembly_1", "Bike Assembly Station 1", "AssemblyStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelNovice}, 80},
		{"assembly_2", "Bike Assembly Station 2", "AssemblyStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelNovice}, 80},
		{"paint_booth_1", "Paint Booth 1", "PaintBooth",
			map[domain.Skill]domain.SkillLevel{domain.SkillPainting: domain.LevelIntermediate}, 20},
		{"suspension_dyno", "Suspension Dynamometer", "TestingEquipment",
			map[domain.Skill]domain.SkillLevel{domain.SkillSuspensionTuning: domain.LevelAdvanced}, 40},
		{"electronics_bench", "Electronics Workbench", "ElectronicsStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillElectronics: domain.LevelIntermediate}, 60},
		{"qa_stand_1", "Quality Assurance Station 1", "QAStation",
			map[domain.Skill]domain.SkillLevel{domain.SkillQualityControl: domain.LevelIntermediate}, 80},
	}

	machines := make([]*domain.Machine, 0, len(specs))
	for _, spec := range specs {
		machines = append(machines, &domain.Machine{
			ID:                  spec.id,
			Name:                spec.name,
			Type:                spec.typ,
			SkillsRequired:      spec.skills,
			Status:              domain.StatusAvailable,
			CriticalThreshold:   80,
			ExpectedLifetimeHrs: 43800,
			RoutineIntervalHrs:  spec.intervalHrs,
			LastServiced:        serviced,
		})
	}
	return machines
}

// Materials returns the starting inventory ledger.
func Materials() []*domain.Material {
	specs := []struct {
		id, name string
		qty      int
		location string
		cost     float64
	}{
		{"aluminum_tube", "Aluminum Tubing", 500, "frame_storage", 8.50},
		{"carbon_tube", "Carbon Fiber Tubing", 200, "frame_storage", 22.75},
		{"handlebar", "Handlebars", 150, "components", 12.00},
		{"stem", "Stems", 150, "components", 8.50},
		{"seat_post", "Seat Posts", 150, "components", 9.25},
		{"saddle", "Saddles", 150, "components", 15.00},
		{"brake_set", "Hydraulic Brake Sets", 100, "components", 45.00},
		{"chain", "Chains", 200, "components", 12.00},
		{"crankset", "Cranksets", 100, "components", 35.00},
		{"rim", "Wheel Rims", 300, "wheel_storage", 18.00},
		{"hub", "Wheel Hubs", 300, "wheel_storage", 22.00},
		{"spoke", "Wheel Spokes (pack)", 1000, "wheel_storage", 0.50},
		{"tire", "Tires", 300, "wheel_storage", 25.00},
		{"tube", "Inner Tubes", 400, "wheel_storage", 5.00},
		{"fork", "Front Forks", 80, "suspension", 120.00},
		{"rear_shock", "Rear Shocks", 50, "suspension", 85.00},
		{"motor", "E-Bike Motors", 30, "electronics", 150.00},
		{"battery", "Lithium Batteries", 30, "electronics", 200.00},
		{"controller", "Motor Controllers", 30, "electronics", 45.00},
		{"paint", "Paint (liter)", 200, "paint_storage", 12.00},
		{"clear_coat", "Clear Coat (liter)", 150, "paint_storage", 15.00},
		{"decal", "Decal Sets", 100, "paint_storage", 8.00},
		{"box", "Shipping Boxes", 100, "packaging", 3.50},
	}

	materials := make([]*domain.Material, 0, len(specs))
	for _, spec := range specs {
		materials = append(materials, &domain.Material{
			ID: spec.id, Name: spec.name, Quantity: spec.qty,
			Location: spec.location, UnitCost: spec.cost,
		})
	}
	return materials
}

// Models returns the three bike recipes.
func Models() []*domain.BikeModel {
	mountain := &domain.BikeModel{
		ID: "mountain", Name: "Trail Crusher Mountain Bike", Type: "mountain", BasePrice: 899.99,
		Steps: []*domain.ProductionStep{
			{
				ID: "mtb_prep", Name: "Frame Tube Preparation",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillTubeCutting: domain.LevelIntermediate},
				RequiredMachines:  []string{"CuttingMachine"},
				RequiredMaterials: map[string]int{"aluminum_tube": 5},
				DurationMin:       45, QualityFactor: 0.9,
			},
			{
				ID: "mtb_weld", Name: "Frame Welding",
				RequiredSkills:   map[domain.Skill]domain.SkillLevel{domain.SkillFrameWelding: domain.LevelAdvanced},
				RequiredMachines: []string{"WeldingStation"},
				DurationMin:      90, QualityFactor: 1.2, ErrorProne: true,
			},
			{
				ID: "mtb_suspension", Name: "Suspension Installation",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillSuspensionTuning: domain.LevelIntermediate},
				RequiredMachines:  []string{"AssemblyStation"},
				RequiredMaterials: map[string]int{"fork": 1, "rear_shock": 1},
				DurationMin:       60, QualityFactor: 1.1,
			},
			{
				ID: "mtb_wheels", Name: "Wheel Building",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillWheelBuilding: domain.LevelAdvanced},
				RequiredMachines:  []string{"WheelStation"},
				RequiredMaterials: map[string]int{"rim": 2, "hub": 2, "spoke": 2, "tire": 2, "tube": 2},
				DurationMin:       75, QualityFactor: 1.0,
			},
			{
				ID: "mtb_assembly", Name: "Component Assembly",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelIntermediate},
				RequiredMachines:  []string{"AssemblyStation"},
				RequiredMaterials: map[string]int{"handlebar": 1, "stem": 1, "seat_post": 1, "saddle": 1, "brake_set": 1, "chain": 1, "crankset": 1},
				DurationMin:       120, QualityFactor: 1.0,
			},
			{
				ID: "mtb_paint", Name: "Painting",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillPainting: domain.LevelIntermediate},
				RequiredMachines:  []string{"PaintBooth"},
				RequiredMaterials: map[string]int{"paint": 2, "clear_coat": 1, "decal": 1},
				DurationMin:       90, QualityFactor: 0.9,
			},
			{
				ID: "mtb_qa", Name: "Quality Assurance",
				RequiredSkills:   map[domain.Skill]domain.SkillLevel{domain.SkillQualityControl: domain.LevelIntermediate},
				RequiredMachines: []string{"QAStation"},
				DurationMin:      30, QualityFactor: 1.5,
			},
			{
				ID: "mtb_pack", Name: "Packaging",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelNovice},
				RequiredMaterials: map[string]int{"box": 1},
				DurationMin:       20, QualityFactor: 0.7,
			},
		},
	}

	road := &domain.BikeModel{
		ID: "road", Name: "Speed Demon Road Bike", Type: "road", BasePrice: 1299.99,
		Steps: []*domain.ProductionStep{
			{
				ID: "road_prep", Name: "Frame Tube Preparation",
				RequiredSkills: map[domain.Skill]domain.SkillLevel{
					domain.SkillTubeCutting: domain.LevelAdvanced,
					domain.SkillMachining:   domain.LevelIntermediate,
				},
				RequiredMachines:  []string{"CuttingMachine", "CNCMachine"},
				RequiredMaterials: map[string]int{"carbon_tube": 5},
				DurationMin:       60, QualityFactor: 1.2,
			},
			{
				ID: "road_frame", Name: "Frame Assembly",
				RequiredSkills: map[domain.Skill]domain.SkillLevel{
					domain.SkillFrameWelding:      domain.LevelExpert,
					domain.SkillComponentAssembly: domain.LevelAdvanced,
				},
				RequiredMachines: []string{"AssemblyStation"},
				DurationMin:      100, QualityFactor: 1.3, ErrorProne: true,
			},
			{
				ID: "road_wheels", Name: "Wheel Building",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillWheelBuilding: domain.LevelExpert},
				RequiredMachines:  []string{"WheelStation"},
				RequiredMaterials: map[string]int{"rim": 2, "hub": 2, "spoke": 2, "tire": 2, "tube": 2},
				DurationMin:       90, QualityFactor: 1.2,
			},
			{
				ID: "road_assembly", Name: "Component Assembly",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelAdvanced},
				RequiredMachines:  []string{"AssemblyStation"},
				RequiredMaterials: map[string]int{"handlebar": 1, "stem": 1, "seat_post": 1, "saddle": 1, "brake_set": 1, "chain": 1, "crankset": 1},
				DurationMin:       90, QualityFactor: 1.1,
			},
			{
				ID: "road_paint", Name: "Painting and Finishing",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillPainting: domain.LevelExpert},
				RequiredMachines:  []string{"PaintBooth"},
				RequiredMaterials: map[string]int{"paint": 1, "clear_coat": 2, "decal": 1},
				DurationMin:       120, QualityFactor: 1.2,
			},
			{
				ID: "road_qa", Name: "Quality Assurance",
				RequiredSkills:   map[domain.Skill]domain.SkillLevel{domain.SkillQualityControl: domain.LevelExpert},
				RequiredMachines: []string{"QAStation"},
				DurationMin:      45, QualityFactor: 1.5,
			},
			{
				ID: "road_pack", Name: "Packaging",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelNovice},
				RequiredMaterials: map[string]int{"box": 1},
				DurationMin:       20, QualityFactor: 0.7,
			},
		},
	}

	electric := &domain.BikeModel{
		ID: "electric", Name: "PowerGlide Electric Bike", Type: "electric", BasePrice: 1899.99,
		Steps: []*domain.ProductionStep{
			{
				ID: "ebike_prep", Name: "Frame Preparation",
				RequiredSkills: map[domain.Skill]domain.SkillLevel{
					domain.SkillTubeCutting: domain.LevelIntermediate,
					domain.SkillMachining:   domain.LevelIntermediate,
				},
				RequiredMachines:  []string{"CuttingMachine", "CNCMachine"},
				RequiredMaterials: map[string]int{"aluminum_tube": 6},
				DurationMin:       60, QualityFactor: 1.0,
			},
			{
				ID: "ebike_weld", Name: "Frame Welding",
				RequiredSkills:   map[domain.Skill]domain.SkillLevel{domain.SkillFrameWelding: domain.LevelAdvanced},
				RequiredMachines: []string{"WeldingStation"},
				DurationMin:      100, QualityFactor: 1.1, ErrorProne: true,
			},
			{
				ID: "ebike_electronics", Name: "Electronics Installation",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillElectronics: domain.LevelAdvanced},
				RequiredMachines:  []string{"ElectronicsStation"},
				RequiredMaterials: map[string]int{"motor": 1, "battery": 1, "controller": 1},
				DurationMin:       90, QualityFactor: 1.3, ErrorProne: true,
			},
			{
				ID: "ebike_wheels", Name: "Wheel Building",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillWheelBuilding: domain.LevelAdvanced},
				RequiredMachines:  []string{"WheelStation"},
				RequiredMaterials: map[string]int{"rim": 2, "hub": 2, "spoke": 2, "tire": 2, "tube": 2},
				DurationMin:       60, QualityFactor: 1.0,
			},
			{
				ID: "ebike_assembly", Name: "Component Assembly",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelAdvanced},
				RequiredMachines:  []string{"AssemblyStation"},
				RequiredMaterials: map[string]int{"handlebar": 1, "stem": 1, "seat_post": 1, "saddle": 1, "brake_set": 1, "chain": 1, "crankset": 1},
				DurationMin:       120, QualityFactor: 1.0,
			},
			{
				ID: "ebike_qa", Name: "Quality Assurance",
				RequiredSkills:   map[domain.Skill]domain.SkillLevel{domain.SkillQualityControl: domain.LevelAdvanced},
				RequiredMachines: []string{"QAStation"},
				DurationMin:      30, QualityFactor: 1.2,
			},
			{
				ID: "ebike_pack", Name: "Packaging",
				RequiredSkills:    map[domain.Skill]domain.SkillLevel{domain.SkillComponentAssembly: domain.LevelNovice},
				RequiredMaterials: map[string]int{"box": 1},
				DurationMin:       25, QualityFactor: 0.7,
			},
		},
	}

	return []*domain.BikeModel{mountain, road, electric}
}
