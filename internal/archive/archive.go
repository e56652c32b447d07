// Package archive persists finished simulation runs so external reporting can
// compare scenarios later. It is a collaborator outside the scheduling core;
// the core's contract ends at the statistics snapshot and event log.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/selimslab/factory-simulator/internal/factory"
)

// Run is one archived simulation run.
type Run struct {
	ID         string
	Seed       int64
	HorizonMin int
	StartedAt  time.Time
	Stats      factory.Stats
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveRun writes the run row and its full event log in one transaction.
func (s *Store) SaveRun(run Run, events []factory.Event) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(`INSERT INTO runs (
		id, seed, horizon_min, started_at,
		orders_received, orders_completed, orders_cancelled, incomplete_orders,
		bikes_produced, total_production_min, machine_breakdowns,
		quality_incidents, avg_worker_fatigue
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.HorizonMin, run.StartedAt.Format(time.RFC3339),
		run.Stats.OrdersReceived, run.Stats.OrdersCompleted, run.Stats.OrdersCancelled,
		run.Stats.IncompleteOrders, run.Stats.BikesProduced, run.Stats.TotalProductionMin,
		run.Stats.MachineBreakdowns, run.Stats.QualityIncidents, run.Stats.AvgWorkerFatigue,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO run_events (run_id, seq, sim_time, type, order_id, subject, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing event insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range events {
		if _, err := stmt.Exec(run.ID, i, e.Time.Format(time.RFC3339), string(e.Type), e.OrderID, e.Subject, e.Message); err != nil {
			return "", fmt.Errorf("inserting event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	committed = true
	return run.ID, nil
}

// ListRuns returns archived runs, most recent first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT id, seed, horizon_min, started_at,
		orders_received, orders_completed, orders_cancelled, incomplete_orders,
		bikes_produced, total_production_min, machine_breakdowns,
		quality_incidents, avg_worker_fatigue
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Seed, &r.HorizonMin, &startedAt,
			&r.Stats.OrdersReceived, &r.Stats.OrdersCompleted, &r.Stats.OrdersCancelled,
			&r.Stats.IncompleteOrders, &r.Stats.BikesProduced, &r.Stats.TotalProductionMin,
			&r.Stats.MachineBreakdowns, &r.Stats.QualityIncidents, &r.Stats.AvgWorkerFatigue,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// EventCount returns how many events a run archived.
func (s *Store) EventCount(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM run_events WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}
