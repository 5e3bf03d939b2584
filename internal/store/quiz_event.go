package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	if data.Name == "" {
		return fmt.Errorf("append quiz event: empty name")
	}
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(quizEventsTable).
		Columns(colSequence, colTimestamp, colSessionID, colName, colResultType).
		Values(seqNum, ts.UTC(), data.SessionID, data.Name, data.ResultType).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) TypeDistribution(ctx context.Context) (map[string]int, error) {
	query, args := builder().
		Select(colResultType, entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(quizEventsTable)).
		Where(entsql.And(
			entsql.EQ(colName, EventComplete),
			entsql.NEQ(colResultType, ""),
		)).
		GroupBy(colResultType).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query type distribution: %w", err)
	}
	defer rows.Close()

	dist := map[string]int{}
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scan type distribution: %w", err)
		}
		dist[typ] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query type distribution: %w", err)
	}
	return dist, nil
}

func (r *eventRepo) Counts(ctx context.Context) (EventCounts, error) {
	query, args := builder().
		Select(colName, entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(quizEventsTable)).
		GroupBy(colName).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return EventCounts{}, fmt.Errorf("query event counts: %w", err)
	}
	defer rows.Close()

	var c EventCounts
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return EventCounts{}, fmt.Errorf("scan event counts: %w", err)
		}
		switch name {
		case EventStart:
			c.Starts = n
		case EventComplete:
			c.Completions = n
		case EventCTAClick:
			c.CTAClicks = n
		}
	}
	if err := rows.Err(); err != nil {
		return EventCounts{}, fmt.Errorf("query event counts: %w", err)
	}
	return c, nil
}

func (r *eventRepo) Recent(ctx context.Context, opts QueryOpts) ([]QuizEvent, error) {
	sel := builder().
		Select(colID, colSequence, colTimestamp, colSessionID, colName, colResultType).
		From(entsql.Table(quizEventsTable))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(colTimestamp, opts.To.UTC()))
	}
	if opts.Name != "" {
		preds = append(preds, entsql.EQ(colName, opts.Name))
	}
	if opts.SessionID != "" {
		preds = append(preds, entsql.EQ(colSessionID, opts.SessionID))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}

	sel = sel.OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}
	defer rows.Close()

	var events []QuizEvent
	for rows.Next() {
		var e QuizEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &e.Name, &e.ResultType); err != nil {
			return nil, fmt.Errorf("scan recent events: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	query, args := builder().Delete(quizEventsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset events: %w", err)
	}
	return nil
}
