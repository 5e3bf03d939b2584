package analytics

import (
	"context"

	"github.com/abhisek/sixteen/internal/store"
)

// StoreRecorder appends events to the local SQLite event log.
type StoreRecorder struct {
	repo store.EventRepo
}

// NewStoreRecorder returns a recorder backed by repo.
func NewStoreRecorder(repo store.EventRepo) *StoreRecorder {
	return &StoreRecorder{repo: repo}
}

func (s *StoreRecorder) Name() string { return "store" }

func (s *StoreRecorder) Record(ctx context.Context, e Event) error {
	return s.repo.AppendQuizEvent(ctx, store.QuizEventData{
		Name:       string(e.Name),
		SessionID:  e.SessionID,
		ResultType: e.ResultType,
		Timestamp:  e.Timestamp,
	})
}
