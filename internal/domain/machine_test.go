package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMachine_NeedsService_IntervalElapsed(t *testing.T) {
	serviced := time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)
	m := &Machine{RoutineIntervalHrs: 40, LastServiced: serviced}

	assert.False(t, m.NeedsService(serviced.Add(39*time.Hour)))
	assert.True(t, m.NeedsService(serviced.Add(40*time.Hour)), "the interval boundary is inclusive")
	assert.True(t, m.NeedsService(serviced.Add(100*time.Hour)))
}

func TestMachine_ApplyMaintenance_ReducesWearAndLogsHistory(t *testing.T) {
	serviced := time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)
	m := &Machine{Wear: 55, RoutineIntervalHrs: 40, LastServiced: serviced}

	at := serviced.Add(48 * time.Hour)
	m.ApplyMaintenance(MaintenanceLog{
		ID: "log-1", MachineID: "m-1", Kind: MaintenanceRoutine,
		StartTime: at, DurationMin: MaintenanceRoutine.DurationMin(), Success: true,
	})

	assert.Equal(t, 25, m.Wear)
	assert.Equal(t, at, m.LastServiced, "routine service resets the interval clock")
	assert.Len(t, m.History, 1)
	assert.False(t, m.NeedsService(at.Add(time.Hour)))
}

func TestMachine_ApplyMaintenance_WearNeverNegative(t *testing.T) {
	m := &Machine{Wear: 10}

	m.ApplyMaintenance(MaintenanceLog{Kind: MaintenanceEmergency})
	assert.Zero(t, m.Wear)

	// A second pass on an already clean machine stays at zero.
	m.ApplyMaintenance(MaintenanceLog{Kind: MaintenanceEmergency})
	assert.Zero(t, m.Wear)
	assert.Len(t, m.History, 2)
}

func TestMachine_ApplyMaintenance_CorrectiveDoesNotResetServiceClock(t *testing.T) {
	serviced := time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)
	m := &Machine{Wear: 80, RoutineIntervalHrs: 40, LastServiced: serviced}

	at := serviced.Add(48 * time.Hour)
	m.ApplyMaintenance(MaintenanceLog{Kind: MaintenanceCorrective, StartTime: at})

	assert.Equal(t, 30, m.Wear)
	assert.Equal(t, serviced, m.LastServiced)
}

func TestMaintenanceKind_FixedParameters(t *testing.T) {
	assert.Equal(t, 120, MaintenanceRoutine.DurationMin())
	assert.Equal(t, 240, MaintenancePreventive.DurationMin())
	assert.Equal(t, 360, MaintenanceCorrective.DurationMin())
	assert.Equal(t, 480, MaintenanceEmergency.DurationMin())

	assert.Equal(t, 30, MaintenanceRoutine.WearReduction())
	assert.Equal(t, 30, MaintenancePreventive.WearReduction())
	assert.Equal(t, 50, MaintenanceCorrective.WearReduction())
	assert.Equal(t, 70, MaintenanceEmergency.WearReduction())

	assert.Equal(t, LevelNovice, MaintenanceRoutine.RequiredSkillLevel())
	assert.Equal(t, LevelIntermediate, MaintenancePreventive.RequiredSkillLevel())
	assert.Equal(t, LevelIntermediate, MaintenanceEmergency.RequiredSkillLevel())
}
