package aggregate

import (
	"context"
	"sort"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/types"
	"github.com/abubakarirfan/huddled-takehome/pkg/logger"
)

// VisitsOption applies a configuration option to the visit fold.
type VisitsOption func(*visitsConfig)

type visitsConfig struct {
	log logger.Logger
}

// WithVisitsLogger sets the logger used for malformed-row warnings.
func WithVisitsLogger(log logger.Logger) VisitsOption {
	return func(c *visitsConfig) {
		if log != nil {
			c.log = log
		}
	}
}

type visitTotals struct {
	artistID string
	name     string
	duration int64
	sessions map[string]struct{}
}

// Visits inner-joins visit rows to the artist catalog and totals per artist
// duration and distinct session count. Visits naming an unknown artist are
// excluded. Negative durations clamp to zero with a logged warning; the row
// still counts toward the session set. Rows come back sorted by total
// duration descending; ties keep the order artists were first seen in the
// visit scan.
func Visits(ctx context.Context, visits []model.Visit, artists []model.Artist, opts ...VisitsOption) ([]types.VisitSummaryRow, error) {
	cfg := visitsConfig{log: logger.Named("aggregate")}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}

	byArtist := make(map[string]*visitTotals, len(artists))
	var order []string

	for _, v := range visits {
		name, ok := names[v.ArtistID]
		if !ok {
			continue
		}
		totals, ok := byArtist[v.ArtistID]
		if !ok {
			totals = &visitTotals{artistID: v.ArtistID, name: name, sessions: make(map[string]struct{})}
			byArtist[v.ArtistID] = totals
			order = append(order, v.ArtistID)
		}
		duration := v.EndTime - v.StartTime
		if duration < 0 {
			cfg.log.Warn(ctx, "visit with negative duration; clamping to zero",
				logger.String("artist_id", v.ArtistID),
				logger.String("session_id", v.SessionID),
				logger.Int64("start_time", v.StartTime),
				logger.Int64("end_time", v.EndTime),
			)
			duration = 0
		}
		totals.duration += duration
		totals.sessions[v.SessionID] = struct{}{}
	}

	rows := make([]types.VisitSummaryRow, 0, len(order))
	for _, artistID := range order {
		totals := byArtist[artistID]
		rows = append(rows, types.VisitSummaryRow{
			ArtistID:           totals.artistID,
			ArtistName:         totals.name,
			TotalVisitDuration: totals.duration,
			UniqueSessionCount: len(totals.sessions),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalVisitDuration > rows[j].TotalVisitDuration
	})
	return rows, nil
}
