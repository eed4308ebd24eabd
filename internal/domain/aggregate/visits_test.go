package aggregate_test

import (
	"context"
	"testing"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/aggregate"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitsTotalsAndSessions(t *testing.T) {
	rows, err := aggregate.Visits(context.Background(),
		[]model.Visit{
			{ArtistID: "X", SessionID: "1", StartTime: 1000, EndTime: 4000},
			{ArtistID: "X", SessionID: "1", StartTime: 5000, EndTime: 6000},
			{ArtistID: "X", SessionID: "2", StartTime: 0, EndTime: 1000},
		},
		[]model.Artist{{ID: "X", Name: "Xylo"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []types.VisitSummaryRow{
		{ArtistID: "X", ArtistName: "Xylo", TotalVisitDuration: 4000, UniqueSessionCount: 2},
	}, rows)
}

func TestVisitsInnerJoinExcludesUnknownArtists(t *testing.T) {
	rows, err := aggregate.Visits(context.Background(),
		[]model.Visit{
			{ArtistID: "known", SessionID: "1", StartTime: 0, EndTime: 100},
			{ArtistID: "ghost", SessionID: "2", StartTime: 0, EndTime: 9999},
		},
		[]model.Artist{{ID: "known", Name: "Known"}},
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "known", rows[0].ArtistID)
}

func TestVisitsOrderedByDurationDescending(t *testing.T) {
	rows, err := aggregate.Visits(context.Background(),
		[]model.Visit{
			{ArtistID: "small", SessionID: "1", StartTime: 0, EndTime: 10},
			{ArtistID: "big", SessionID: "2", StartTime: 0, EndTime: 500},
			{ArtistID: "mid", SessionID: "3", StartTime: 0, EndTime: 100},
		},
		[]model.Artist{
			{ID: "small", Name: "S"},
			{ID: "mid", Name: "M"},
			{ID: "big", Name: "B"},
		},
	)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "big", rows[0].ArtistID)
	assert.Equal(t, "mid", rows[1].ArtistID)
	assert.Equal(t, "small", rows[2].ArtistID)
}

func TestVisitsNegativeDurationClampsToZero(t *testing.T) {
	rows, err := aggregate.Visits(context.Background(),
		[]model.Visit{
			{ArtistID: "X", SessionID: "1", StartTime: 5000, EndTime: 1000},
			{ArtistID: "X", SessionID: "2", StartTime: 0, EndTime: 200},
		},
		[]model.Artist{{ID: "X", Name: "Xylo"}},
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// Clamped row contributes no duration but still counts its session.
	assert.Equal(t, int64(200), rows[0].TotalVisitDuration)
	assert.Equal(t, 2, rows[0].UniqueSessionCount)
}

func TestVisitsArtistsWithoutVisitsAreAbsent(t *testing.T) {
	rows, err := aggregate.Visits(context.Background(),
		[]model.Visit{{ArtistID: "X", SessionID: "1", StartTime: 0, EndTime: 10}},
		[]model.Artist{{ID: "X", Name: "Xylo"}, {ID: "Y", Name: "Quiet"}},
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "X", rows[0].ArtistID)
}

func TestVisitsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := aggregate.Visits(ctx, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
