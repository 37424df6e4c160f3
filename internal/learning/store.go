package learning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-intelligence/pkg/kvstore"
	"task-intelligence/pkg/log"
)

const (
	keyCorrections = "learning.corrections"
	keyAccuracy    = "learning.duration_accuracy"
	keyImpressions = "learning.impressions"
)

// Store is the bounded, time-decayed record of user corrections,
// duration accuracy and impressions. Every mutation is persisted before returning;
// a failed write leaves memory as it was.
type Store struct {
	mu  sync.Mutex
	kv  kvstore.Store
	l   log.Logger
	cfg Config
	now func() time.Time

	corrections *Buffer[CorrectionRecord]
	accuracy    *Buffer[DurationAccuracyRecord]
	impressions *Buffer[ImpressionRecord]
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New loads persisted history and runs Cleanup once.
func New(ctx context.Context, kv kvstore.Store, l log.Logger, cfg Config, opts ...Option) (*Store, error) {
	def := DefaultConfig()
	if cfg.CorrectionCapacity <= 0 {
		cfg.CorrectionCapacity = def.CorrectionCapacity
	}
	if cfg.AccuracyCapacity <= 0 {
		cfg.AccuracyCapacity = def.AccuracyCapacity
	}
	if cfg.ImpressionCapacity <= 0 {
		cfg.ImpressionCapacity = def.ImpressionCapacity
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = def.MaxAge
	}

	s := &Store{
		kv:          kv,
		l:           l,
		cfg:         cfg,
		now:         time.Now,
		corrections: NewBuffer[CorrectionRecord](cfg.CorrectionCapacity),
		accuracy:    NewBuffer[DurationAccuracyRecord](cfg.AccuracyCapacity),
		impressions: NewBuffer[ImpressionRecord](cfg.ImpressionCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := load(ctx, kv, keyCorrections, s.corrections); err != nil {
		return nil, err
	}
	if err := load(ctx, kv, keyAccuracy, s.accuracy); err != nil {
		return nil, err
	}
	if err := load(ctx, kv, keyImpressions, s.impressions); err != nil {
		return nil, err
	}

	if _, err := s.Cleanup(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func load[T Timestamped](ctx context.Context, kv kvstore.Store, key string, b *Buffer[T]) error {
	var items []T
	if err := kv.Get(ctx, key, &items); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	b.Load(items)
	return nil
}

// RecordCorrection stores an override. Identical suggestion and choice is a no-op
// and reports false.
func (s *Store) RecordCorrection(ctx context.Context, field, original, choice, sourceText string) (bool, error) {
	if original == choice {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := appendPersisted(ctx, s, keyCorrections, s.corrections, CorrectionRecord{
		ID:                 uuid.NewString(),
		Field:              field,
		OriginalSuggestion: original,
		UserChoice:         choice,
		Keywords:           Keywords(sourceText),
		Timestamp:          s.now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RecordDurationAccuracy stores how long a task took against its estimate.
// Non-positive values are ignored and report false.
func (s *Store) RecordDurationAccuracy(ctx context.Context, category string, estimatedMinutes, actualMinutes int) (bool, error) {
	if estimatedMinutes <= 0 || actualMinutes <= 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := appendPersisted(ctx, s, keyAccuracy, s.accuracy, DurationAccuracyRecord{
		ID:               uuid.NewString(),
		Category:         category,
		EstimatedMinutes: estimatedMinutes,
		ActualMinutes:    actualMinutes,
		Ratio:            float64(actualMinutes) / float64(estimatedMinutes),
		Timestamp:        s.now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RecordImpression marks one suggestion as shown.
func (s *Store) RecordImpression(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return appendPersisted(ctx, s, keyImpressions, s.impressions, ImpressionRecord{Timestamp: s.now()})
}

// CorrectionRate is corrections over impressions within the last days, capped at 1.
// It is 0 when the window has no impressions. Non-positive days cover all retained history.
func (s *Store) CorrectionRate(days int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.cfg.MaxAge)
	if days > 0 {
		cutoff = s.now().AddDate(0, 0, -days)
	}

	impressions := len(s.impressions.Since(cutoff))
	if impressions == 0 {
		return 0
	}
	rate := float64(len(s.corrections.Since(cutoff))) / float64(impressions)
	if rate > 1 {
		return 1
	}
	return rate
}

// Cleanup evicts records older than MaxAge, persisting only collections that changed.
func (s *Store) Cleanup(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	changed := false

	if s.corrections.EvictOlderThan(s.cfg.MaxAge, now) {
		changed = true
		if err := s.persist(ctx, keyCorrections, s.corrections.Items()); err != nil {
			return changed, err
		}
	}
	if s.accuracy.EvictOlderThan(s.cfg.MaxAge, now) {
		changed = true
		if err := s.persist(ctx, keyAccuracy, s.accuracy.Items()); err != nil {
			return changed, err
		}
	}
	if s.impressions.EvictOlderThan(s.cfg.MaxAge, now) {
		changed = true
		if err := s.persist(ctx, keyImpressions, s.impressions.Items()); err != nil {
			return changed, err
		}
	}

	if changed {
		s.l.Debug(ctx, "Learning history cleaned up",
			"corrections", s.corrections.Len(),
			"duration_accuracy", s.accuracy.Len(),
			"impressions", s.impressions.Len(),
		)
	}
	return changed, nil
}

// Reset forgets everything.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.corrections.Reset()
	s.accuracy.Reset()
	s.impressions.Reset()

	for _, key := range []string{keyCorrections, keyAccuracy, keyImpressions} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// Stats counts live records. Expired records are excluded whether or not
// Cleanup has evicted them yet.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.cfg.MaxAge)
	return Stats{
		Corrections:      len(s.corrections.Since(cutoff)),
		DurationAccuracy: len(s.accuracy.Since(cutoff)),
		Impressions:      len(s.impressions.Since(cutoff)),
	}
}

// Corrections returns the live (non-expired) corrections, oldest first.
func (s *Store) Corrections() []CorrectionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveCorrections()
}

func (s *Store) liveCorrections() []CorrectionRecord {
	return s.corrections.Since(s.now().Add(-s.cfg.MaxAge))
}

func (s *Store) liveAccuracy() []DurationAccuracyRecord {
	return s.accuracy.Since(s.now().Add(-s.cfg.MaxAge))
}

// appendPersisted appends v and writes the collection, restoring the previous
// contents when the write fails. The caller holds s.mu.
func appendPersisted[T Timestamped](ctx context.Context, s *Store, key string, b *Buffer[T], v T) error {
	prev := b.Items()
	b.Append(v)
	if err := s.persist(ctx, key, b.Items()); err != nil {
		b.Load(prev)
		return err
	}
	return nil
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	if err := s.kv.Set(ctx, key, v); err != nil {
		s.l.Error(ctx, "Failed to persist learning history", "key", key, "error", err.Error())
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
