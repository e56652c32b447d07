package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemoryAppliesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"runs", "run_events"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenDB_ForeignKeysCascadeEventDeletes(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO runs (
		id, seed, horizon_min, started_at,
		orders_received, orders_completed, orders_cancelled, incomplete_orders,
		bikes_produced, total_production_min, machine_breakdowns,
		quality_incidents, avg_worker_fatigue
	) VALUES ('r1', 1, 60, '2026-01-05T09:00:00Z', 0, 0, 0, 0, 0, 0, 0, 0, 0)`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO run_events (run_id, seq, sim_time, type)
		VALUES ('r1', 0, '2026-01-05T09:00:00Z', 'order_received')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM runs WHERE id = 'r1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM run_events`).Scan(&n))
	assert.Zero(t, n, "deleting a run cascades to its events")
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
}
