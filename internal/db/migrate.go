package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		horizon_min INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		orders_received INTEGER NOT NULL,
		orders_completed INTEGER NOT NULL,
		orders_cancelled INTEGER NOT NULL,
		incomplete_orders INTEGER NOT NULL,
		bikes_produced INTEGER NOT NULL,
		total_production_min INTEGER NOT NULL,
		machine_breakdowns INTEGER NOT NULL,
		quality_incidents INTEGER NOT NULL,
		avg_worker_fatigue REAL NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS run_events (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		sim_time TEXT NOT NULL,
		type TEXT NOT NULL,
		order_id TEXT,
		subject TEXT,
		message TEXT,
		PRIMARY KEY (run_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_run_events_type ON run_events(run_id, type)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
