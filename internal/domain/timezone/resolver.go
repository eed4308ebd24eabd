// Package timezone resolves per-user timezone names into UTC offsets.
//
// Resolution is best-effort: a user whose zone name is unknown or malformed
// falls back to UTC (offset 0). A resolution failure is never fatal to the
// calling pipeline.
package timezone

import (
	"context"
	"time"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/pkg/logger"
	"github.com/abubakarirfan/huddled-takehome/pkg/metrics"
)

// Offsets maps user IDs to their UTC offset in whole minutes. The table is
// total over the users it was built from; lookups for unknown users return 0.
type Offsets map[string]int

// Offset returns the offset in minutes for userID, defaulting to 0 (UTC).
func (o Offsets) Offset(userID string) int {
	return o[userID]
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithReferenceTime pins the instant at which zone offsets are read.
// Offsets vary with daylight-saving state, so tests pin this to a fixed
// moment; production uses time.Now.
func WithReferenceTime(t time.Time) Option {
	return func(r *Resolver) {
		if !t.IsZero() {
			r.now = func() time.Time { return t }
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver builds per-run offset tables from user rows.
//
// Offsets are read at a single reference moment rather than per event
// timestamp, so every event of a user shifts by the same amount within one
// run.
type Resolver struct {
	now func() time.Time
	log logger.Logger
}

// New creates a Resolver with the given options.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		now: time.Now,
		log: logger.Named("timezone"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps every user to a UTC offset in minutes. Every user gets an
// entry; users whose timezone cannot be interpreted get 0. Fractional-hour
// zones keep their exact minute offset.
func (r *Resolver) Resolve(ctx context.Context, users []model.User) Offsets {
	ref := r.now()
	offsets := make(Offsets, len(users))
	// Zone lookups hit the tz database, so resolve each distinct name once.
	byZone := make(map[string]int, len(users))

	for _, u := range users {
		if minutes, ok := byZone[u.Timezone]; ok {
			offsets[u.ID] = minutes
			continue
		}
		minutes, err := offsetMinutes(ref, u.Timezone)
		if err != nil {
			r.log.Warn(ctx, "failed to resolve user timezone; falling back to UTC",
				logger.String("user_id", u.ID),
				logger.String("timezone", u.Timezone),
				logger.Error(err),
			)
			metrics.RecordTimezoneFallback()
			minutes = 0
		}
		byZone[u.Timezone] = minutes
		offsets[u.ID] = minutes
	}
	return offsets
}

func offsetMinutes(ref time.Time, zone string) (int, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, err
	}
	_, seconds := ref.In(loc).Zone()
	return seconds / 60, nil
}
