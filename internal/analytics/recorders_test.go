package analytics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/sixteen/internal/store"
)

func TestLogRecorder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewLogRecorder(zap.New(core))

	require.NoError(t, r.Record(context.Background(), Event{
		Name: EventSessionComplete, SessionID: "s1", ResultType: "ESFP",
	}))

	entries := logs.FilterMessage("analytics event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "diagnosis_complete", fields["event"])
	assert.Equal(t, "s1", fields["session_id"])
	assert.Equal(t, "ESFP", fields["result_type"])
}

func TestMetricsRecorder(t *testing.T) {
	m := NewMetricsRecorder()
	ctx := context.Background()

	require.NoError(t, m.Record(ctx, Event{Name: EventSessionStart}))
	require.NoError(t, m.Record(ctx, Event{Name: EventSessionComplete, ResultType: "INTJ"}))
	require.NoError(t, m.Record(ctx, Event{Name: EventSessionComplete, ResultType: "INTJ"}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("diagnosis_start", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("diagnosis_complete", "INTJ")))

	path := filepath.Join(t.TempDir(), "sixteen.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `sixteen_events_total{event="diagnosis_complete",type="INTJ"} 2`),
		"textfile missing counter:\n%s", data)
}

func TestStoreRecorderThroughDispatcher(t *testing.T) {
	s, err := store.Open("file:analytics_store?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()

	repo := s.EventRepo()
	d := NewDispatcher(zap.NewNop(), DispatcherConfig{}, NewStoreRecorder(repo))
	d.Emit(Event{Name: EventSessionStart, SessionID: "a"})
	d.Emit(Event{Name: EventSessionComplete, SessionID: "a", ResultType: "ISFJ"})
	d.Emit(Event{Name: EventCTAClick, SessionID: "a", ResultType: "ISFJ"})
	closeDispatcher(t, d)

	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, store.EventCounts{Starts: 1, Completions: 1, CTAClicks: 1}, counts)

	dist, err := repo.TypeDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ISFJ": 1}, dist)
}
