// Package aggregate folds localized, scored events and visit rows into the
// two analytics result tables.
package aggregate

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/types"
)

// ScoredEvent is one event after localization and scoring. It exists only
// while folding.
type ScoredEvent struct {
	ArtistID  string
	LocalHour int
	Score     int64
}

type hourKey struct {
	artistID string
	hour     int
}

// HourlyOption applies a configuration option to the hourly fold.
type HourlyOption func(*hourlyConfig)

type hourlyConfig struct {
	shards int
}

// WithShardCount splits the fold across n goroutines. Partial tallies merge
// by addition, so the result is identical for any shard count.
func WithShardCount(n int) HourlyOption {
	return func(c *hourlyConfig) {
		if n > 0 {
			c.shards = n
		}
	}
}

// Hourly groups scored events by (artist, local hour) and sums scores.
// Every event touches its group, so a zero-score event still materializes a
// row. Rows come back sorted by artist ID ascending, then by the zero-padded
// hour string ascending.
func Hourly(ctx context.Context, events []ScoredEvent, opts ...HourlyOption) ([]types.HourlyScoreRow, error) {
	cfg := hourlyConfig{shards: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	var totals map[hourKey]int64
	if cfg.shards <= 1 || len(events) < cfg.shards {
		var err error
		if totals, err = foldHourly(ctx, events); err != nil {
			return nil, err
		}
	} else {
		var err error
		if totals, err = foldHourlySharded(ctx, events, cfg.shards); err != nil {
			return nil, err
		}
	}

	rows := make([]types.HourlyScoreRow, 0, len(totals))
	for key, total := range totals {
		rows = append(rows, types.HourlyScoreRow{
			ArtistID:   key.artistID,
			Hour:       fmt.Sprintf("%02d", key.hour),
			TotalScore: total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ArtistID != rows[j].ArtistID {
			return rows[i].ArtistID < rows[j].ArtistID
		}
		return rows[i].Hour < rows[j].Hour
	})
	return rows, nil
}

func foldHourly(ctx context.Context, events []ScoredEvent) (map[hourKey]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	totals := make(map[hourKey]int64)
	for _, e := range events {
		totals[hourKey{artistID: e.ArtistID, hour: e.LocalHour}] += e.Score
	}
	return totals, nil
}

func foldHourlySharded(ctx context.Context, events []ScoredEvent, shards int) (map[hourKey]int64, error) {
	partials := make([]map[hourKey]int64, shards)
	chunk := (len(events) + shards - 1) / shards

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(events))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			partial, err := foldHourly(gctx, events[lo:hi])
			if err != nil {
				return err
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Addition is commutative and associative, so shard boundaries cannot
	// change the merged totals.
	totals := make(map[hourKey]int64)
	for _, partial := range partials {
		for key, total := range partial {
			totals[key] += total
		}
	}
	return totals, nil
}
