package domain

// SkillLevel is an ordered proficiency rank. Higher values dominate lower ones.
type SkillLevel int

const (
	LevelNovice SkillLevel = iota + 1
	LevelIntermediate
	LevelAdvanced
	LevelExpert
)

func (l SkillLevel) String() string {
	switch l {
	case LevelNovice:
		return "novice"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	case LevelExpert:
		return "expert"
	default:
		return "unknown"
	}
}

type Skill string

const (
	SkillFrameWelding      Skill = "frame_welding"
	SkillTubeCutting       Skill = "tube_cutting"
	SkillComponentAssembly Skill = "component_assembly"
	SkillWheelBuilding     Skill = "wheel_building"
	SkillPainting          Skill = "painting"
	SkillQualityControl    Skill = "quality_control"
	SkillElectronics       Skill = "electronics"
	SkillMachining         Skill = "machining"
	SkillSuspensionTuning  Skill = "suspension_tuning"
	SkillMaintenance       Skill = "maintenance"
)

// AllSkills is the canonical skill domain; seed data is validated against it
// at construction.
var AllSkills = map[Skill]bool{
	SkillFrameWelding: true, SkillTubeCutting: true,
	SkillComponentAssembly: true, SkillWheelBuilding: true,
	SkillPainting: true, SkillQualityControl: true,
	SkillElectronics: true, SkillMachining: true,
	SkillSuspensionTuning: true, SkillMaintenance: true,
}

type WorkerType string

const (
	FullTime   WorkerType = "full_time"
	PartTime   WorkerType = "part_time"
	Apprentice WorkerType = "apprentice"
)

type ResourceStatus string

const (
	StatusAvailable   ResourceStatus = "available"
	StatusBusy        ResourceStatus = "busy"
	StatusUnavailable ResourceStatus = "unavailable"
	StatusMaintenance ResourceStatus = "maintenance"
	StatusBreakdown   ResourceStatus = "breakdown"
	StatusOnBreak     ResourceStatus = "on_break"
	StatusOffShift    ResourceStatus = "off_shift"
)

type OrderStatus string

const (
	OrderReceived     OrderStatus = "received"
	OrderScheduled    OrderStatus = "scheduled"
	OrderInProduction OrderStatus = "in_production"
	OrderCompleted    OrderStatus = "completed"
	OrderCancelled    OrderStatus = "cancelled"
	OrderDelayed      OrderStatus = "delayed"
)

type MaintenanceKind string

const (
	MaintenanceRoutine    MaintenanceKind = "routine"
	MaintenancePreventive MaintenanceKind = "preventive"
	MaintenanceCorrective MaintenanceKind = "corrective"
	MaintenanceEmergency  MaintenanceKind = "emergency"
)

// DurationMin returns the fixed service duration for a maintenance kind,
// in simulated minutes.
func (k MaintenanceKind) DurationMin() int {
	switch k {
	case MaintenanceRoutine:
		return 120
	case MaintenancePreventive:
		return 240
	case MaintenanceCorrective:
		return 360
	case MaintenanceEmergency:
		return 480
	default:
		return 120
	}
}

// WearReduction returns how many wear points the kind removes from a machine.
func (k MaintenanceKind) WearReduction() int {
	switch k {
	case MaintenanceRoutine, MaintenancePreventive:
		return 30
	case MaintenanceCorrective:
		return 50
	case MaintenanceEmergency:
		return 70
	default:
		return 30
	}
}

// RequiredSkillLevel returns the minimum maintenance proficiency needed to
// perform the kind. Routine service can be done by a novice.
func (k MaintenanceKind) RequiredSkillLevel() SkillLevel {
	if k == MaintenanceRoutine {
		return LevelNovice
	}
	return LevelIntermediate
}
