// Package model contains the row types passed between layers.
//
// All timestamps are epoch milliseconds, matching the storage schema.
package model

// EventType classifies a user interaction with an artist's catalog.
type EventType string

// Known event types. Anything else maps to EventOther.
const (
	EventLikeTrack          EventType = "like_track"
	EventAddTrackToPlaylist EventType = "add_track_to_playlist"
	EventPlayTrack          EventType = "play_track"
	EventShareTrack         EventType = "share_track"
	EventOther              EventType = "other"
)

// ParseEventType normalizes a raw event type string. Unrecognized values
// collapse to EventOther rather than failing.
func ParseEventType(s string) EventType {
	switch EventType(s) {
	case EventLikeTrack, EventAddTrackToPlaylist, EventPlayTrack, EventShareTrack:
		return EventType(s)
	default:
		return EventOther
	}
}

// User is a listener. Timezone is a user-supplied string and is not
// guaranteed to name a valid zone.
type User struct {
	ID       string
	Timezone string
}

// Artist is a catalog entry referenced by visits and events.
type Artist struct {
	ID   string
	Name string
}

// Visit is one listening session segment on an artist's page.
// EndTime >= StartTime is assumed of the data, not enforced here.
type Visit struct {
	ArtistID  string
	SessionID string
	StartTime int64
	EndTime   int64
}

// UserEvent is a raw interaction event.
type UserEvent struct {
	UserID    string
	ArtistID  string
	EventType EventType
	CreatedAt int64
}
