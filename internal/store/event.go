package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter hands out a single increasing sequence shared by items
// and review events, so listings and history have a total order that does
// not depend on clock resolution.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func appendReviewEvent(ctx context.Context, ex execer, seq int64, itemID string, status Status, note string, at time.Time) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO review_events (seq, item_id, status, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		seq, itemID, string(status), note, formatTime(at),
	)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// eventRepo implements EventRepo.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) History(ctx context.Context, itemID string) ([]ReviewEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, item_id, status, note, created_at FROM review_events WHERE item_id = ? ORDER BY seq`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rows.Close()

	var events []ReviewEvent
	for rows.Next() {
		var (
			ev      ReviewEvent
			status  string
			created string
		)
		if err := rows.Scan(&ev.Sequence, &ev.ItemID, &status, &ev.Note, &created); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		ev.Status = Status(status)
		if ev.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
