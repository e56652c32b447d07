package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimslab/factory-simulator/internal/domain"
	"github.com/selimslab/factory-simulator/internal/pool"
	"github.com/selimslab/factory-simulator/internal/sim"
	"github.com/selimslab/factory-simulator/internal/testutil"
)

func newShiftFixture(t *testing.T, start time.Time, workers ...*domain.Worker) (*sim.Engine, *Manager) {
	t.Helper()
	p, err := pool.New(workers, nil, nil)
	require.NoError(t, err)
	engine := sim.NewEngine(start)
	m := NewManager(engine, p)
	m.Start()
	return engine, m
}

func TestManager_Tick_BringsWorkerOnShift(t *testing.T) {
	monday5am := time.Date(2026, 1, 5, 5, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1", testutil.WithWorkerStatus(domain.StatusOffShift))
	engine, _ := newShiftFixture(t, monday5am, w)

	engine.Run(monday5am.Add(50 * time.Minute))
	assert.Equal(t, domain.StatusOffShift, w.Status, "still before 06:00")

	engine.Run(monday5am.Add(70 * time.Minute))
	assert.Equal(t, domain.StatusAvailable, w.Status, "the 06:00 tick opens the shift")
}

func TestManager_Tick_OffShiftWorkerRecoversFatigue(t *testing.T) {
	monday5am := time.Date(2026, 1, 5, 5, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1",
		testutil.WithWorkerStatus(domain.StatusOffShift),
		testutil.WithFatigue(10))
	engine, _ := newShiftFixture(t, monday5am, w)

	// Three off-shift ticks at 05:15, 05:30, 05:45.
	engine.Run(monday5am.Add(50 * time.Minute))
	assert.Equal(t, 7, w.Fatigue)
}

func TestManager_Tick_SendsWorkerOffShiftAtBoundary(t *testing.T) {
	monday1345 := time.Date(2026, 1, 5, 13, 45, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1")
	engine, _ := newShiftFixture(t, monday1345, w)

	engine.Run(monday1345.Add(20 * time.Minute))
	assert.Equal(t, domain.StatusOffShift, w.Status, "the 14:00 tick closes the morning shift")
}

func TestManager_Tick_FatigueTriggersFixedBreak(t *testing.T) {
	monday9am := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1", testutil.WithFatigue(80))
	engine, _ := newShiftFixture(t, monday9am, w)

	engine.Run(monday9am.Add(20 * time.Minute))
	assert.Equal(t, domain.StatusOnBreak, w.Status)

	// The break ends 30 minutes after it started (09:15 + 30 = 09:45).
	engine.Run(monday9am.Add(40 * time.Minute))
	assert.Equal(t, domain.StatusOnBreak, w.Status, "the 09:30 tick is before the break end")

	engine.Run(monday9am.Add(50 * time.Minute))
	assert.Equal(t, domain.StatusAvailable, w.Status)
	assert.Equal(t, 78, w.Fatigue, "a 30-minute break recovers two points")
}

func TestManager_Tick_ExactThresholdDoesNotBreak(t *testing.T) {
	monday9am := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1", testutil.WithFatigue(BreakThreshold))
	engine, _ := newShiftFixture(t, monday9am, w)

	engine.Run(monday9am.Add(35 * time.Minute))
	assert.Equal(t, domain.StatusAvailable, w.Status)
}

func TestManager_Tick_LeavesBusyWorkersAlone(t *testing.T) {
	monday9am := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1",
		testutil.WithWorkerStatus(domain.StatusBusy),
		testutil.WithFatigue(95))
	engine, _ := newShiftFixture(t, monday9am, w)

	engine.Run(monday9am.Add(65 * time.Minute))
	assert.Equal(t, domain.StatusBusy, w.Status, "task completion, not the tick, releases a busy worker")
	assert.Equal(t, 95, w.Fatigue)
}

func TestManager_Tick_VacationDayKeepsWorkerOff(t *testing.T) {
	monday5am := time.Date(2026, 1, 5, 5, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1", testutil.WithWorkerStatus(domain.StatusOffShift))
	w.Schedule.AddVacation(monday5am)
	engine, _ := newShiftFixture(t, monday5am, w)

	engine.Run(monday5am.Add(3 * time.Hour))
	assert.Equal(t, domain.StatusOffShift, w.Status)
}

func TestManager_Tick_ReportsTransitions(t *testing.T) {
	monday5am := time.Date(2026, 1, 5, 5, 0, 0, 0, time.UTC)
	w := testutil.NewWorker("w-1", testutil.WithWorkerStatus(domain.StatusOffShift))

	p, err := pool.New([]*domain.Worker{w}, nil, nil)
	require.NoError(t, err)
	engine := sim.NewEngine(monday5am)
	m := NewManager(engine, p)

	type edge struct{ from, to domain.ResourceStatus }
	var seen []edge
	m.OnTransition = func(_ *domain.Worker, from, to domain.ResourceStatus) {
		seen = append(seen, edge{from, to})
	}
	m.Start()

	engine.Run(monday5am.Add(70 * time.Minute))
	require.Len(t, seen, 1)
	assert.Equal(t, edge{domain.StatusOffShift, domain.StatusAvailable}, seen[0])
}
