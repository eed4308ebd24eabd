// Package app provides the analytics service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	eventqueue "github.com/abubakarirfan/huddled-takehome/internal/adapters/mq/queue"
	workerpool "github.com/abubakarirfan/huddled-takehome/internal/adapters/mq/worker"
	"github.com/abubakarirfan/huddled-takehome/internal/adapters/repository"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/aggregate"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/dedupe"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/localize"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/scoring"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/timezone"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/types"
	"github.com/abubakarirfan/huddled-takehome/pkg/logger"
	"github.com/abubakarirfan/huddled-takehome/pkg/metrics"
)

// Metric label values for the two analytics views.
const (
	viewHourlyEngagement = "hourly_engagement"
	viewVisitSummary     = "visit_summary"
)

// Service composes the analytics pipeline over a row store, plus the
// ingestion path that feeds it.
type Service struct {
	mu sync.RWMutex

	store    repository.Store
	resolver *timezone.Resolver
	scorer   *scoring.Scorer
	deduper  dedupe.Deduper
	queue    *eventqueue.InMemoryQueue
	pool     *workerpool.Pool

	shardCount  int
	queueSize   int
	workerCount int
	dedupeSize  int
	weights     map[string]int64
	hasWeights  bool

	started bool
	log     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the row store the pipeline reads from and ingestion writes
// to. Required.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithShardCount splits the hourly fold across n goroutines.
func WithShardCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

// WithQueueSize bounds the ingestion intake queue.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithWorkerCount sets the number of persistence workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithDedupeSize bounds the ingestion idempotency cache.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dedupeSize = n
		}
	}
}

// WithEventWeights overrides the engagement weight table.
func WithEventWeights(weights map[string]int64) Option {
	return func(s *Service) {
		if weights != nil {
			s.weights = weights
			s.hasWeights = true
		}
	}
}

// WithResolver sets a custom timezone resolver (tests pin its reference
// time).
func WithResolver(r *timezone.Resolver) Option {
	return func(s *Service) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		shardCount:  1,
		queueSize:   10000,
		workerCount: 4,
		dedupeSize:  50000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start wires the pipeline components and launches the ingestion workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.store == nil {
		return fmt.Errorf("service start: %w", ErrNoStore)
	}
	if s.log == nil {
		s.log = logger.Named("service")
	}
	if s.resolver == nil {
		s.resolver = timezone.New()
	}
	if s.scorer == nil {
		var scorerOpts []scoring.Option
		if s.hasWeights {
			scorerOpts = append(scorerOpts, scoring.WithWeights(s.weights))
		}
		s.scorer = scoring.New(scorerOpts...)
	}
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.queue = eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.store)
	s.pool.Start(ctx)

	s.started = true
	s.log.Info(ctx, "analytics service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("shardCount", s.shardCount),
	)
	return nil
}

// Stop shuts down the ingestion path.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.queue != nil {
		_ = s.queue.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}
	s.started = false
	s.log.Info(context.Background(), "analytics service stopped")
}

// HourlyEngagement computes the per-artist, per-local-hour engagement table:
// load users, resolve offsets, load events, localize and score each event,
// then fold and sort. A store failure aborts the whole call; per-user
// timezone failures do not.
func (s *Service) HourlyEngagement(ctx context.Context) ([]types.HourlyScoreRow, error) {
	if !s.running() {
		return nil, fmt.Errorf("hourly engagement: %w", ErrNotStarted)
	}
	start := time.Now()

	users, err := s.store.Users(ctx)
	if err != nil {
		metrics.RecordPipelineError(viewHourlyEngagement)
		return nil, fmt.Errorf("hourly engagement: %w", err)
	}

	// The offset table must be complete before any event is localized.
	offsets := s.resolver.Resolve(ctx, users)

	events, err := s.store.UserEvents(ctx)
	if err != nil {
		metrics.RecordPipelineError(viewHourlyEngagement)
		return nil, fmt.Errorf("hourly engagement: %w", err)
	}

	scored := make([]aggregate.ScoredEvent, len(events))
	for i, e := range events {
		scored[i] = aggregate.ScoredEvent{
			ArtistID:  e.ArtistID,
			LocalHour: localize.EventHour(e, offsets),
			Score:     s.scorer.Score(e.EventType),
		}
	}
	metrics.RecordEventsScored(len(scored))

	rows, err := aggregate.Hourly(ctx, scored, aggregate.WithShardCount(s.shardCount))
	if err != nil {
		metrics.RecordPipelineError(viewHourlyEngagement)
		return nil, fmt.Errorf("hourly engagement: %w", err)
	}
	metrics.RecordPipelineRun(viewHourlyEngagement, time.Since(start).Seconds())
	return rows, nil
}

// VisitSummary computes the per-artist visit duration and session table.
func (s *Service) VisitSummary(ctx context.Context) ([]types.VisitSummaryRow, error) {
	if !s.running() {
		return nil, fmt.Errorf("visit summary: %w", ErrNotStarted)
	}
	start := time.Now()

	visits, err := s.store.Visits(ctx)
	if err != nil {
		metrics.RecordPipelineError(viewVisitSummary)
		return nil, fmt.Errorf("visit summary: %w", err)
	}
	artists, err := s.store.Artists(ctx)
	if err != nil {
		metrics.RecordPipelineError(viewVisitSummary)
		return nil, fmt.Errorf("visit summary: %w", err)
	}

	rows, err := aggregate.Visits(ctx, visits, artists)
	if err != nil {
		metrics.RecordPipelineError(viewVisitSummary)
		return nil, fmt.Errorf("visit summary: %w", err)
	}
	metrics.RecordPipelineRun(viewVisitSummary, time.Since(start).Seconds())
	return rows, nil
}

// Overview runs both views concurrently. Neither view reads the other's
// state, and either failure fails the whole call.
func (s *Service) Overview(ctx context.Context) (types.Overview, error) {
	var overview types.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.HourlyEngagement(gctx)
		if err != nil {
			return err
		}
		overview.HourlyEngagement = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.VisitSummary(gctx)
		if err != nil {
			return err
		}
		overview.VisitSummary = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.Overview{}, err
	}
	return overview, nil
}

// running reports whether Start has wired the pipeline components.
func (s *Service) running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// SeenAndRecord atomically checks and records an ingestion event ID.
// Before Start it reports every ID as unseen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	if !s.running() {
		return false
	}
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordEventDuplicate()
	}
	return seen
}

// Unrecord releases an event ID so a failed ingest can retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	if !s.running() {
		return
	}
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits an event for asynchronous persistence. Returns false on
// backpressure, or if the service is not started.
func (s *Service) Enqueue(ctx context.Context, e model.UserEvent) bool {
	if !s.running() {
		return false
	}
	return s.queue.Enqueue(ctx, e)
}

// Stats returns service statistics for monitoring.
func (s *Service) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"shardCount":  s.shardCount,
	}
	if s.started {
		stats["queueLength"] = s.queue.Len(context.Background())
		stats["dedupeEntries"] = s.deduper.Size()
	}
	return stats
}
