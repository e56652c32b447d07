package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/testutil"
)

func weldStep(durationMin int, machineTypes ...string) *domain.ProductionStep {
	return &domain.ProductionStep{
		ID:               "weld",
		Name:             "Frame welding",
		RequiredSkills:   map[domain.Skill]domain.SkillLevel{domain.SkillFrameWelding: domain.LevelIntermediate},
		RequiredMachines: machineTypes,
		RequiredMaterials: map[string]int{
			"steel_tube": 4,
		},
		DurationMin:   durationMin,
		QualityFactor: 0.95,
	}
}

func newSim(t *testing.T, workers []*domain.Worker, machines []*domain.Machine, materials []*domain.Material, models []*domain.BikeModel) *Simulation {
	t.Helper()
	s, err := New(Config{Start: testutil.FixtureStart, Seed: 42}, workers, machines, materials, models)
	require.NoError(t, err)
	return s
}

func TestSimulation_Models_SortedByID(t *testing.T) {
	models := []*domain.BikeModel{
		testutil.SingleStepModel("touring-9", weldStep(60)),
		testutil.SingleStepModel("bmx-2", weldStep(60)),
		testutil.SingleStepModel("road-1", weldStep(60)),
	}
	s := newSim(t, nil, nil, nil, models)

	var ids []string
	for _, m := range s.Models() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"bmx-2", "road-1", "touring-9"}, ids)
}

func TestSimulation_SingleOrder_CompletesWithDerivedDuration(t *testing.T) {
	expert := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert))
	model := testutil.SingleStepModel("road-1", weldStep(90))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 10}}

	s := newSim(t, []*domain.Worker{expert}, nil, materials, []*domain.BikeModel{model})

	o, err := s.SubmitOrder("Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats := s.Run(300)

	assert.Equal(t, domain.OrderCompleted, o.Status)
	assert.Equal(t, 1, stats.OrdersReceived)
	assert.Equal(t, 1, stats.OrdersCompleted)
	assert.Equal(t, 1, stats.BikesProduced)
	assert.Zero(t, stats.OrdersCancelled)

	require.Len(t, o.Tasks, 1)
	task := o.Tasks[0]
	assert.True(t, task.Completed)
	assert.Equal(t, "w-1", task.WorkerID)

	// 90 minutes x 0.8 skill factor (expert, two levels above) x 1.0
	// fatigue factor: the worker was fresh when the step started.
	assert.Equal(t, 72*time.Minute, task.EndTime.Sub(task.StartTime))
	assert.Equal(t, 72, stats.TotalProductionMin)
	assert.InDelta(t, 72.0, stats.AvgProductionMin, 1e-9)

	assert.InDelta(t, 0.95, task.Quality, 1e-9)
	assert.Equal(t, 6, s.Pool().MaterialQuantity("steel_tube"))
	assert.Equal(t, domain.StatusAvailable, expert.Status)
	assert.Equal(t, 2, expert.Fatigue, "72 worked minutes accrue two fatigue points")
}

func TestSimulation_SingleOrder_MachineReservedAndReleased(t *testing.T) {
	expert := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert))
	station := testutil.NewMachine("m-1", "welding_station")
	model := testutil.SingleStepModel("road-1", weldStep(45, "welding_station"))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 10}}

	s := newSim(t, []*domain.Worker{expert}, []*domain.Machine{station}, materials, []*domain.BikeModel{model})

	o, err := s.SubmitOrder("Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats := s.Run(300)

	assert.Equal(t, domain.OrderCompleted, o.Status)
	assert.Equal(t, 1, stats.OrdersCompleted)

	require.Len(t, o.Tasks, 1)
	assert.Equal(t, []string{"m-1"}, o.Tasks[0].MachineID)
	assert.Equal(t, domain.StatusAvailable, station.Status)
	assert.InDelta(t, 0.6, station.OperatingHours, 1e-9, "the realized 36 minutes are charged to the machine")
}

func TestSimulation_MultiUnitOrder_UnitsProducedInSequence(t *testing.T) {
	expert := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert))
	model := testutil.SingleStepModel("road-1", weldStep(60))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 12}}

	s := newSim(t, []*domain.Worker{expert}, nil, materials, []*domain.BikeModel{model})

	o, err := s.SubmitOrder("Acme Cycles", "road-1", 3, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats := s.Run(24 * 60)

	assert.Equal(t, domain.OrderCompleted, o.Status)
	assert.Equal(t, 3, stats.BikesProduced)
	assert.Equal(t, 3, o.UnitsDone)
	require.Len(t, o.Tasks, 3)

	// One worker, so the units cannot overlap.
	for i := 1; i < len(o.Tasks); i++ {
		assert.False(t, o.Tasks[i].StartTime.Before(o.Tasks[i-1].EndTime),
			"unit %d started before unit %d finished", i+1, i)
	}

	assert.Equal(t, 0, s.Pool().MaterialQuantity("steel_tube"), "4 tubes per unit, 3 units")
}

func TestSimulation_MaterialShortage_CancelsWithoutTouchingInventory(t *testing.T) {
	expert := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert))
	model := testutil.SingleStepModel("road-1", weldStep(90))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 3}} // one unit needs 4

	s := newSim(t, []*domain.Worker{expert}, nil, materials, []*domain.BikeModel{model})

	o, err := s.SubmitOrder("Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats := s.Run(300)

	assert.Equal(t, domain.OrderCancelled, o.Status)
	assert.Equal(t, 1, stats.OrdersCancelled)
	assert.Zero(t, stats.BikesProduced)
	assert.Equal(t, 3, s.Pool().MaterialQuantity("steel_tube"), "a cancelled order leaves the ledger untouched")
	assert.Empty(t, o.Tasks)
}

func TestSimulation_NoEligibleWorker_CancelsOrder(t *testing.T) {
	unskilled := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillPainting, domain.LevelExpert))
	model := testutil.SingleStepModel("road-1", weldStep(90))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 10}}

	s := newSim(t, []*domain.Worker{unskilled}, nil, materials, []*domain.BikeModel{model})

	o, err := s.SubmitOrder("Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats := s.Run(300)

	assert.Equal(t, domain.OrderCancelled, o.Status)
	assert.Equal(t, 1, stats.OrdersCancelled)

	var cancelled *Event
	for i := range s.Events() {
		if s.Events()[i].Type == EventOrderCancelled {
			cancelled = &s.Events()[i]
		}
	}
	require.NotNil(t, cancelled)
	assert.Contains(t, cancelled.Message, "no eligible worker")
}

func TestSimulation_HorizonLeavesOrderInProduction(t *testing.T) {
	expert := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert))
	model := testutil.SingleStepModel("road-1", weldStep(240)) // realized 192 min
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 10}}

	s := newSim(t, []*domain.Worker{expert}, nil, materials, []*domain.BikeModel{model})

	o, err := s.SubmitOrder("Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)

	stats := s.Run(100)

	assert.Equal(t, domain.OrderInProduction, o.Status)
	assert.Equal(t, 1, stats.IncompleteOrders)
	assert.Zero(t, stats.OrdersCompleted)
	assert.Positive(t, s.Engine().Pending(), "the completion stays queued past the horizon")
}

func TestSimulation_DurationScalesWithSkillAndFatigue(t *testing.T) {
	model := testutil.SingleStepModel("road-1", weldStep(90))
	materials := func() []*domain.Material {
		return []*domain.Material{{ID: "steel_tube", Quantity: 10}}
	}

	run := func(w *domain.Worker) time.Duration {
		s := newSim(t, []*domain.Worker{w}, nil, materials(), []*domain.BikeModel{model})
		o, err := s.SubmitOrder("Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
		require.NoError(t, err)
		s.Run(300)
		require.Equal(t, domain.OrderCompleted, o.Status)
		require.Len(t, o.Tasks, 1)
		return o.Tasks[0].EndTime.Sub(o.Tasks[0].StartTime)
	}

	fresh := run(testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert)))
	tired := run(testutil.NewWorker("w-2",
		testutil.WithSkill(domain.SkillFrameWelding, domain.LevelIntermediate),
		testutil.WithFatigue(60)))

	assert.Less(t, fresh, tired, "a fresh expert outpaces a fatigued at-minimum worker")
}

func TestSimulation_WorkerErrors_ShowUpInStatisticsAndQuality(t *testing.T) {
	clumsy := testutil.NewWorker("w-1",
		testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert),
		testutil.WithErrorRate(0.95, 1)) // error probability pinned at the cap
	step := weldStep(30)
	step.ErrorProne = true
	model := testutil.SingleStepModel("road-1", step)
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 400}}

	s := newSim(t, []*domain.Worker{clumsy}, nil, materials, []*domain.BikeModel{model})

	for i := 0; i < 10; i++ {
		_, err := s.SubmitOrderAfter(i*40, "Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
		require.NoError(t, err)
	}
	stats := s.Run(250)

	assert.Positive(t, stats.WorkerErrors)
	assert.Equal(t, stats.WorkerErrors, stats.QualityIncidents, "every slip is a quality incident here")

	// A slip on an error-prone step halves the task quality and extends it
	// by the rework period.
	degraded := 0
	for _, o := range s.Orders() {
		for _, task := range o.Tasks {
			if !task.Completed {
				continue
			}
			if task.Quality < 0.95 {
				degraded++
				assert.InDelta(t, 0.475, task.Quality, 1e-9)
			}
		}
	}
	assert.Positive(t, degraded)
}

func TestSimulation_ConcurrentTasksNeverShareResources(t *testing.T) {
	workers := []*domain.Worker{
		testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert)),
		testutil.NewWorker("w-2", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelIntermediate)),
		testutil.NewWorker("w-3", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelIntermediate)),
	}
	machines := []*domain.Machine{
		testutil.NewMachine("m-1", "welding_station"),
		testutil.NewMachine("m-2", "welding_station"),
	}
	model := testutil.SingleStepModel("road-1", weldStep(45, "welding_station"))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 1000}}

	s := newSim(t, workers, machines, materials, []*domain.BikeModel{model})
	for i := 0; i < 12; i++ {
		_, err := s.SubmitOrderAfter(i*10, "Acme Cycles", "road-1", 1, testutil.FixtureStart.AddDate(0, 0, 7))
		require.NoError(t, err)
	}
	s.Run(8 * 60)

	var tasks []*domain.ScheduledTask
	for _, o := range s.Orders() {
		for _, task := range o.Tasks {
			if task.Completed {
				tasks = append(tasks, task)
			}
		}
	}
	require.NotEmpty(t, tasks)

	overlap := func(a, b *domain.ScheduledTask) bool {
		return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
	}
	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			a, b := tasks[i], tasks[j]
			if !overlap(a, b) {
				continue
			}
			assert.NotEqual(t, a.WorkerID, b.WorkerID,
				"tasks %s and %s share a worker while overlapping", a.ID, b.ID)
			for _, am := range a.MachineID {
				assert.NotContains(t, b.MachineID, am,
					"tasks %s and %s share a machine while overlapping", a.ID, b.ID)
			}
		}
	}
}

func TestSimulation_SameSeedSameStatistics(t *testing.T) {
	build := func() *Simulation {
		workers := []*domain.Worker{
			testutil.NewWorker("w-1",
				testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert),
				testutil.WithErrorRate(0.2, 2)),
			testutil.NewWorker("w-2",
				testutil.WithSkill(domain.SkillFrameWelding, domain.LevelIntermediate),
				testutil.WithErrorRate(0.1, 5)),
		}
		model := testutil.SingleStepModel("road-1", weldStep(60))
		materials := []*domain.Material{{ID: "steel_tube", Quantity: 1000}}
		s := newSim(t, workers, nil, materials, []*domain.BikeModel{model})
		s.GenerateOrders(8, 45)
		return s
	}

	first := build().Run(6 * 60)
	second := build().Run(6 * 60)

	assert.Equal(t, first, second)
}

func TestSimulation_SubmitOrder_Validation(t *testing.T) {
	model := testutil.SingleStepModel("road-1", weldStep(90))
	s := newSim(t, nil, nil, nil, []*domain.BikeModel{model})

	_, err := s.SubmitOrder("Acme Cycles", "bmx-77", 1, testutil.FixtureStart)
	assert.ErrorContains(t, err, "unknown bike model")

	_, err = s.SubmitOrder("Acme Cycles", "road-1", 0, testutil.FixtureStart)
	assert.ErrorContains(t, err, "quantity must be positive")
}

func TestSimulation_MarkDelayed(t *testing.T) {
	model := testutil.SingleStepModel("road-1", weldStep(90))
	s := newSim(t, nil, nil, nil, []*domain.BikeModel{model})

	o, err := s.SubmitOrderAfter(60, "Acme Cycles", "road-1", 1, testutil.FixtureStart)
	require.NoError(t, err)

	require.NoError(t, s.MarkDelayed(o.ID))
	assert.Equal(t, domain.OrderDelayed, o.Status)
	assert.Equal(t, 1, s.Snapshot().OrdersDelayed)

	assert.Error(t, s.MarkDelayed(o.ID), "delayed is terminal")
	assert.Error(t, s.MarkDelayed("nope"))
}

func TestSimulation_EventsAreChronological(t *testing.T) {
	expert := testutil.NewWorker("w-1", testutil.WithSkill(domain.SkillFrameWelding, domain.LevelExpert))
	model := testutil.SingleStepModel("road-1", weldStep(60))
	materials := []*domain.Material{{ID: "steel_tube", Quantity: 100}}

	s := newSim(t, []*domain.Worker{expert}, nil, materials, []*domain.BikeModel{model})
	_, err := s.SubmitOrder("Acme Cycles", "road-1", 2, testutil.FixtureStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	s.Run(6 * 60)

	events := s.Events()
	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Time.Before(events[i-1].Time), "event %d out of order", i)
	}
}
