// Package journal persists the gate's decision stream to a local sqlite
// database for post-hoc audit.
//
// The journal records decisions and planner verdicts only. It never restores
// gate state: a Director is always constructed fresh per session, and the
// journal exists so an embedder can answer "why did the planner fire at step
// 14" after the session is gone.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/navikit/director"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at  TEXT    NOT NULL,
	step         INTEGER NOT NULL,
	action_id    TEXT    NOT NULL,
	url          TEXT    NOT NULL,
	call_planner INTEGER NOT NULL,
	reason       TEXT    NOT NULL,
	budget       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS reviews (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at TEXT    NOT NULL,
	step        INTEGER NOT NULL,
	reason      TEXT    NOT NULL,
	verdict     TEXT    NOT NULL
);`

// Journal appends one row per gate decision and one per planner review. It
// implements director.DecisionHook and director.PlannerReviewHook; register
// it with the runner's hook registry.
//
// Hook methods never fail the run: write errors are retained and exposed
// through LastErr for callers that want to check after the run.
//
// Journal is safe for use from a single run loop only, matching the
// Director's own concurrency contract.
type Journal struct {
	db      *sql.DB
	lastErr error
}

// Open opens a journal at path, creating the database and schema if needed.
// Use ":memory:" for an ephemeral journal in tests.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	// sqlite allows a single writer; one pooled connection also keeps
	// ":memory:" databases coherent across calls.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// OnDecision implements director.DecisionHook.
func (j *Journal) OnDecision(ctx context.Context, event director.DecisionEvent) {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO decisions
		   (recorded_at, step, action_id, url, call_planner, reason, budget)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		event.Step,
		event.Action.ActionID,
		event.Action.URL,
		boolToInt(event.Decision.CallPlanner),
		string(event.Decision.Reason),
		event.Decision.Budget,
	)
	if err != nil {
		j.lastErr = fmt.Errorf("journal: record decision: %w", err)
	}
}

// OnPlannerReview implements director.PlannerReviewHook.
func (j *Journal) OnPlannerReview(ctx context.Context, event director.PlannerReviewEvent) {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO reviews (recorded_at, step, reason, verdict)
		 VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		event.Step,
		string(event.Reason),
		string(event.Verdict),
	)
	if err != nil {
		j.lastErr = fmt.Errorf("journal: record review: %w", err)
	}
}

// LastErr returns the most recent write error, or nil. Hook methods never
// fail the run; callers that care should check LastErr after the run.
func (j *Journal) LastErr() error {
	return j.lastErr
}

// Entry is one journaled decision.
type Entry struct {
	Step        int
	ActionID    string
	URL         string
	CallPlanner bool
	Reason      director.Reason
	Budget      int
}

// Decisions returns all journaled decisions in insertion order.
func (j *Journal) Decisions(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT step, action_id, url, call_planner, reason, budget
		 FROM decisions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("journal: query decisions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var callPlanner int
		var reason string
		if err := rows.Scan(&e.Step, &e.ActionID, &e.URL, &callPlanner, &reason, &e.Budget); err != nil {
			return nil, fmt.Errorf("journal: scan decision: %w", err)
		}
		e.CallPlanner = callPlanner != 0
		e.Reason = director.Reason(reason)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate decisions: %w", err)
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compile-time checks.
var (
	_ director.DecisionHook      = (*Journal)(nil)
	_ director.PlannerReviewHook = (*Journal)(nil)
)
