package learning

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-intelligence/pkg/kvstore"
	"task-intelligence/pkg/log"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newStore(t *testing.T) (*Store, *kvstore.Memory, *fakeClock) {
	t.Helper()
	kv := kvstore.NewMemory()
	clock := &fakeClock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	s, err := New(context.Background(), kv, log.NewNop(), DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, err)
	return s, kv, clock
}

func TestRecordCorrection_NoOpOnEquality(t *testing.T) {
	s, kv, _ := newStore(t)
	ctx := context.Background()

	recorded, err := s.RecordCorrection(ctx, FieldPriority, "medium", "medium", "pay rent")
	require.NoError(t, err)
	assert.False(t, recorded)
	assert.Equal(t, 0, s.Stats().Corrections)
	assert.Equal(t, 0, kv.Writes())

	recorded, err = s.RecordCorrection(ctx, FieldPriority, "medium", "Medium", "pay rent")
	require.NoError(t, err)
	assert.True(t, recorded, "equality is case sensitive")
}

func TestRecordCorrection_FIFOEviction(t *testing.T) {
	s, _, clock := newStore(t)
	ctx := context.Background()

	for i := 0; i < 101; i++ {
		_, err := s.RecordCorrection(ctx, FieldPriority, fmt.Sprintf("o%d", i), "x", "")
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	got := s.Corrections()
	require.Len(t, got, 100)
	assert.Equal(t, "o1", got[0].OriginalSuggestion, "oldest record should be dropped")
	assert.Equal(t, "o100", got[99].OriginalSuggestion)
}

func TestDecay(t *testing.T) {
	s, kv, clock := newStore(t)
	ctx := context.Background()

	_, err := s.RecordCorrection(ctx, FieldPriority, "low", "high", "weekly report")
	require.NoError(t, err)
	_, err = s.RecordCorrection(ctx, FieldPriority, "low", "high", "weekly report")
	require.NoError(t, err)
	require.NotEmpty(t, s.CorrectionsContext())

	clock.Advance(91 * 24 * time.Hour)
	assert.Empty(t, s.CorrectionsContext(), "expired corrections must not be mined")

	changed, err := s.Cleanup(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, s.Stats().Corrections)

	writes := kv.Writes()
	changed, err = s.Cleanup(ctx)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, writes, kv.Writes(), "an idle cleanup must not persist")
}

func TestStats_ExcludesExpiredWithoutCleanup(t *testing.T) {
	s, _, clock := newStore(t)
	ctx := context.Background()

	_, err := s.RecordCorrection(ctx, FieldPriority, "low", "high", "weekly report")
	require.NoError(t, err)
	_, err = s.RecordCorrection(ctx, FieldPriority, "low", "high", "weekly report")
	require.NoError(t, err)
	_, err = s.RecordDurationAccuracy(ctx, "work", 30, 60)
	require.NoError(t, err)
	require.NoError(t, s.RecordImpression(ctx))
	assert.Equal(t, Stats{Corrections: 2, DurationAccuracy: 1, Impressions: 1}, s.Stats())

	clock.Advance(91 * 24 * time.Hour)
	assert.Empty(t, s.CorrectionsContext())
	assert.Equal(t, Stats{}, s.Stats(), "expired records must not be counted")

	_, err = s.RecordCorrection(ctx, FieldCategory, "work", "home", "fix sink")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Stats().Corrections)
}

// failingKV fails every write while fail is set.
type failingKV struct {
	*kvstore.Memory
	fail bool
}

func (f *failingKV) Set(ctx context.Context, key string, v any) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Memory.Set(ctx, key, v)
}

func TestRecord_FailedWriteLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{Memory: kvstore.NewMemory()}
	clock := &fakeClock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	s, err := New(ctx, kv, log.NewNop(), DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, err)

	_, err = s.RecordCorrection(ctx, FieldPriority, "low", "high", "pay rent")
	require.NoError(t, err)

	kv.fail = true
	recorded, err := s.RecordCorrection(ctx, FieldPriority, "low", "urgent", "pay rent")
	require.Error(t, err)
	assert.False(t, recorded)
	ok, err := s.RecordDurationAccuracy(ctx, "home", 30, 45)
	require.Error(t, err)
	assert.False(t, ok)
	require.Error(t, s.RecordImpression(ctx))

	assert.Equal(t, Stats{Corrections: 1}, s.Stats())
	require.Len(t, s.Corrections(), 1)
	assert.Equal(t, "high", s.Corrections()[0].UserChoice)

	kv.fail = false
	reopened, err := New(ctx, kv, log.NewNop(), DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, s.Stats(), reopened.Stats(), "memory and storage must agree")
}

func TestCorrectionsContext_PatternMining(t *testing.T) {
	s, _, clock := newStore(t)
	ctx := context.Background()

	for _, c := range []struct{ from, to, text string }{
		{"A", "B", "weekly report draft"},
		{"A", "B", "weekly standup"},
		{"A", "C", "budget review"},
	} {
		_, err := s.RecordCorrection(ctx, FieldPriority, c.from, c.to, c.text)
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	got := s.CorrectionsContext()
	assert.Contains(t, got, "Corrections to priority suggestions:")
	assert.Contains(t, got, "User often changes A to B (seen 2 times)")
	assert.NotContains(t, got, "A to C")
	assert.Contains(t, got, "For tasks with 'weekly', user prefers B")
	assert.NotContains(t, got, "'budget'")
}

func TestCorrectionsContext_Caps(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		for j := 0; j < 2; j++ {
			_, err := s.RecordCorrection(ctx, FieldCategory, fmt.Sprintf("from%d", i), "to", fmt.Sprintf("alpha%d beta%d", i, i))
			require.NoError(t, err)
		}
	}

	got := s.CorrectionsContext()
	assert.Equal(t, 3, countOccurrences(got, "User often changes"))
	assert.Equal(t, 5, countOccurrences(got, "For tasks with"))
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}

func TestSuggestedOverride(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	s.RecordCorrection(ctx, FieldPriority, "low", "high", "Invoice client Acme")
	s.RecordCorrection(ctx, FieldPriority, "low", "high", "send invoice reminder")
	s.RecordCorrection(ctx, FieldPriority, "medium", "none", "invoice archive")

	choice, ok := s.SuggestedOverride(FieldPriority, "Prepare invoice for March", "low")
	assert.True(t, ok)
	assert.Equal(t, "high", choice)

	_, ok = s.SuggestedOverride(FieldPriority, "Prepare invoice for March", "medium")
	assert.False(t, ok, "a single occurrence is not enough")

	_, ok = s.SuggestedOverride(FieldPriority, "Walk the dog", "low")
	assert.False(t, ok, "no keyword overlap")

	_, ok = s.SuggestedOverride(FieldCategory, "Prepare invoice", "low")
	assert.False(t, ok, "other field")
}

func TestDurationAccuracy(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	recorded, err := s.RecordDurationAccuracy(ctx, "work", 0, 30)
	require.NoError(t, err)
	assert.False(t, recorded)
	recorded, _ = s.RecordDurationAccuracy(ctx, "work", 30, -1)
	assert.False(t, recorded)

	s.RecordDurationAccuracy(ctx, "work", 60, 63)
	s.RecordDurationAccuracy(ctx, "work", 60, 63)
	s.RecordDurationAccuracy(ctx, "errands", 20, 23)
	s.RecordDurationAccuracy(ctx, "errands", 20, 23)
	s.RecordDurationAccuracy(ctx, "health", 60, 30)

	got := s.DurationAccuracyContext()
	assert.Contains(t, got, "Estimates for work tasks are accurate (1.05x)")
	assert.Contains(t, got, "errands tasks usually take longer than estimated (1.15x)")
	assert.NotContains(t, got, "health", "one record is not enough")
}

func TestAccuracyLine_Banding(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1.05, "accurate"},
		{0.9, "accurate"},
		{1.1, "accurate"},
		{1.15, "longer than estimated"},
		{0.5, "shorter than estimated"},
	}
	for _, tt := range tests {
		assert.Contains(t, AccuracyLine("work", tt.ratio), tt.want, "ratio %v", tt.ratio)
	}
}

func TestCorrectionRate(t *testing.T) {
	s, _, clock := newStore(t)
	ctx := context.Background()

	assert.Equal(t, 0.0, s.CorrectionRate(7), "no impressions")

	s.RecordCorrection(ctx, FieldPriority, "a", "b", "")
	assert.Equal(t, 0.0, s.CorrectionRate(7), "corrections without impressions")

	s.RecordImpression(ctx)
	s.RecordCorrection(ctx, FieldPriority, "a", "c", "")
	assert.Equal(t, 1.0, s.CorrectionRate(7), "capped at 1")

	for i := 0; i < 7; i++ {
		s.RecordImpression(ctx)
	}
	assert.InDelta(t, 0.25, s.CorrectionRate(7), 1e-9)

	clock.Advance(10 * 24 * time.Hour)
	s.RecordImpression(ctx)
	assert.Equal(t, 0.0, s.CorrectionRate(7), "old corrections fall out of the window")
	assert.InDelta(t, 2.0/9.0, s.CorrectionRate(30), 1e-9)
}

func TestPersistence(t *testing.T) {
	s, kv, clock := newStore(t)
	ctx := context.Background()

	s.RecordCorrection(ctx, FieldCategory, "work", "home", "fix sink")
	s.RecordDurationAccuracy(ctx, "home", 30, 45)
	s.RecordImpression(ctx)

	reopened, err := New(ctx, kv, log.NewNop(), DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, Stats{Corrections: 1, DurationAccuracy: 1, Impressions: 1}, reopened.Stats())
	assert.Equal(t, []string{"fix", "sink"}, reopened.Corrections()[0].Keywords)

	require.NoError(t, reopened.Reset(ctx))
	assert.Equal(t, Stats{}, reopened.Stats())

	again, err := New(ctx, kv, log.NewNop(), DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, again.Stats())
}

func TestNew_CleansUpExpiredHistory(t *testing.T) {
	s, kv, clock := newStore(t)
	ctx := context.Background()
	s.RecordImpression(ctx)

	clock.Advance(100 * 24 * time.Hour)
	reopened, err := New(ctx, kv, log.NewNop(), DefaultConfig(), WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, 0, reopened.Stats().Impressions)
}
