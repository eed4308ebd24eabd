// Package types contains the result row shapes returned to API consumers.
package types

// HourlyScoreRow is one (artist, local hour) engagement total. Hour is the
// zero-padded hour-of-day string "00".."23" so lexicographic and numeric
// ordering agree.
type HourlyScoreRow struct {
	ArtistID   string `json:"artist_id"`
	Hour       string `json:"hour"`
	TotalScore int64  `json:"total_score"`
}

// VisitSummaryRow is one artist's visit totals.
type VisitSummaryRow struct {
	ArtistID           string `json:"artist_id"`
	ArtistName         string `json:"artist_name"`
	TotalVisitDuration int64  `json:"total_visit_duration"`
	UniqueSessionCount int    `json:"unique_session_count"`
}

// Overview bundles both analytics views for a single combined response.
type Overview struct {
	HourlyEngagement []HourlyScoreRow  `json:"hourly_engagement"`
	VisitSummary     []VisitSummaryRow `json:"visit_summary"`
}
