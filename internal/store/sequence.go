package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter stamps appended events with a monotonic number. It is
// kept in its own row so Reset never causes a number to be reused.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter seeds the counter row if missing. The table itself is
// created by migrate.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	query, args := builder().
		Insert(sequenceTable).
		Columns(colID, colNextVal).
		Values(sequenceRowID, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if _, err := db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the current value and bumps the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args := builder().
		Update(sequenceTable).
		Add(colNextVal, 1).
		Where(entsql.EQ(colID, sequenceRowID)).
		Returning(colNextVal).
		Query()

	var next int64
	if err := sc.db.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next - 1, nil
}
