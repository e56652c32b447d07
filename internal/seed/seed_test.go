package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/factory"
	"github.com/selimslab/factory-simulator/internal/pool"
)

var seedStart = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

func TestSeedCollections_BuildAValidPool(t *testing.T) {
	p, err := pool.New(Workers(), Machines(seedStart), Materials())
	require.NoError(t, err)

	assert.Len(t, p.Workers(), 12)
	assert.Len(t, p.Machines(), 11)
}

func TestWorkers_EveryWorkerHasARoster(t *testing.T) {
	for _, w := range Workers() {
		assert.NotEmpty(t, w.Schedule.Shifts, "worker %s has no shifts", w.ID)
		assert.Equal(t, domain.StatusOffShift, w.Status, "workers start off shift")
		assert.Positive(t, w.BaseErrorRate)
		assert.NotEmpty(t, w.Skills)
	}
}

func TestModels_StepsResolveAgainstSeededResources(t *testing.T) {
	machineTypes := make(map[string]bool)
	for _, m := range Machines(seedStart) {
		machineTypes[m.Type] = true
	}
	materialIDs := make(map[string]bool)
	for _, mat := range Materials() {
		materialIDs[mat.ID] = true
	}
	workers := Workers()

	models := Models()
	require.Len(t, models, 3)

	for _, model := range models {
		require.NotEmpty(t, model.Steps, "model %s", model.ID)
		for _, step := range model.Steps {
			for _, mt := range step.RequiredMachines {
				assert.True(t, machineTypes[mt],
					"model %s step %s needs unseeded machine type %s", model.ID, step.ID, mt)
			}
			for id := range step.RequiredMaterials {
				assert.True(t, materialIDs[id],
					"model %s step %s needs unseeded material %s", model.ID, step.ID, id)
			}

			staffed := false
			for _, w := range workers {
				if w.MeetsAll(step.RequiredSkills) {
					staffed = true
					break
				}
			}
			assert.True(t, staffed,
				"model %s step %s has no worker who could ever perform it", model.ID, step.ID)
		}
	}
}

func TestMachines_FreshlyServicedAtTheGivenInstant(t *testing.T) {
	for _, m := range Machines(seedStart) {
		assert.False(t, m.NeedsService(seedStart), "machine %s starts overdue", m.ID)
		assert.Zero(t, m.Wear)
		assert.Equal(t, domain.StatusAvailable, m.Status)
	}
}

func TestFullWeek_StatisticsStayConsistent(t *testing.T) {
	s, err := factory.New(
		factory.Config{Start: seedStart, Seed: 42},
		Workers(), Machines(seedStart), Materials(), Models(),
	)
	require.NoError(t, err)

	s.GenerateOrders(10, 90)
	stats := s.Run(7 * 24 * 60)

	assert.Equal(t, stats.OrdersReceived,
		stats.OrdersCompleted+stats.OrdersCancelled+stats.IncompleteOrders,
		"every received order ends completed, cancelled, or still in production")
	assert.GreaterOrEqual(t, stats.AvgWorkerFatigue, 0.0)
	assert.LessOrEqual(t, stats.AvgWorkerFatigue, 100.0)
	if stats.BikesProduced > 0 {
		assert.Positive(t, stats.TotalProductionMin)
	}

	for _, w := range s.Pool().Workers() {
		assert.GreaterOrEqual(t, w.Fatigue, 0)
		assert.LessOrEqual(t, w.Fatigue, 100)
	}
	for _, m := range s.Pool().Machines() {
		assert.GreaterOrEqual(t, m.Wear, 0)
		assert.LessOrEqual(t, m.Wear, 100)
	}
}
