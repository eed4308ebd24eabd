// Package seed generates realistic sample data for local development.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/pkg/logger"
)

// Visit and event generation bounds.
const (
	minVisitDuration = 30 * 1000        // 30 seconds in ms
	maxVisitDuration = 45 * 60 * 1000   // 45 minutes in ms
	historyWindow    = 30 * 24 * 3600 * 1000 // 30 days in ms
)

// timezones sampled for generated users. A few are deliberately invalid
// so the fallback path gets exercised with seeded data.
var timezones = []string{
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Kolkata",
	"Australia/Sydney",
	"Australia/Eucla",
	"Pacific/Chatham",
	"Not/AZone",
	"",
}

var eventTypes = []string{
	"like_track",
	"add_track_to_playlist",
	"play_track",
	"share_track",
	"follow_artist",
	"open_profile",
}

var artistNames = []string{
	"Mona Vale", "Delta Ray", "Glass Harbour", "Night Office", "Vera Lux",
	"The Quiet Part", "Copper Field", "Juniper Hale", "Low Tide Club", "Saint Motive",
}

// Config controls how much data the generator produces.
type Config struct {
	Users         int
	Artists       int
	VisitsPerUser int
	EventsPerUser int
	Seed          int64
}

// DefaultConfig returns a small but representative dataset.
func DefaultConfig() Config {
	return Config{
		Users:         50,
		Artists:       10,
		VisitsPerUser: 6,
		EventsPerUser: 20,
		Seed:          time.Now().UnixNano(),
	}
}

// Stats reports what a run produced.
type Stats struct {
	Users   int
	Artists int
	Visits  int
	Events  int
}

// Writer is the subset of the repository the generator needs.
type Writer interface {
	InsertUser(ctx context.Context, u model.User) error
	InsertArtist(ctx context.Context, a model.Artist) error
	InsertVisit(ctx context.Context, v model.Visit) error
	RecordEvent(ctx context.Context, e model.UserEvent) error
}

// Generator produces users, artists, visits and events.
type Generator struct {
	cfg Config
	rng *rand.Rand
	log logger.Logger
}

// New creates a generator for the given config.
func New(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		log: logger.Named("seed"),
	}
}

// Run writes a full dataset through w. The same Seed yields the same data.
func (g *Generator) Run(ctx context.Context, w Writer) (Stats, error) {
	var stats Stats
	now := time.Now().UnixMilli()

	artists := make([]model.Artist, 0, g.cfg.Artists)
	for i := 0; i < g.cfg.Artists; i++ {
		a := model.Artist{
			ID:   uuid.New().String(),
			Name: artistNames[i%len(artistNames)],
		}
		if err := w.InsertArtist(ctx, a); err != nil {
			return stats, fmt.Errorf("seed artist: %w", err)
		}
		artists = append(artists, a)
		stats.Artists++
	}

	for i := 0; i < g.cfg.Users; i++ {
		u := model.User{
			ID:       uuid.New().String(),
			Timezone: timezones[g.rng.Intn(len(timezones))],
		}
		if err := w.InsertUser(ctx, u); err != nil {
			return stats, fmt.Errorf("seed user: %w", err)
		}
		stats.Users++

		for v := 0; v < g.cfg.VisitsPerUser; v++ {
			start := now - g.rng.Int63n(historyWindow)
			visit := model.Visit{
				ArtistID:  artists[g.rng.Intn(len(artists))].ID,
				SessionID: uuid.New().String(),
				StartTime: start,
				EndTime:   start + minVisitDuration + g.rng.Int63n(maxVisitDuration-minVisitDuration),
			}
			if err := w.InsertVisit(ctx, visit); err != nil {
				return stats, fmt.Errorf("seed visit: %w", err)
			}
			stats.Visits++
		}

		for e := 0; e < g.cfg.EventsPerUser; e++ {
			event := model.UserEvent{
				UserID:    u.ID,
				ArtistID:  artists[g.rng.Intn(len(artists))].ID,
				EventType: model.ParseEventType(eventTypes[g.rng.Intn(len(eventTypes))]),
				CreatedAt: now - g.rng.Int63n(historyWindow),
			}
			if err := w.RecordEvent(ctx, event); err != nil {
				return stats, fmt.Errorf("seed event: %w", err)
			}
			stats.Events++
		}
	}

	g.log.Info(ctx, "seed complete",
		logger.Int("users", stats.Users),
		logger.Int("artists", stats.Artists),
		logger.Int("visits", stats.Visits),
		logger.Int("events", stats.Events),
	)
	return stats, nil
}
