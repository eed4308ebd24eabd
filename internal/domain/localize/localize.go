// Package localize shifts event timestamps into each user's local clock.
package localize

import (
	"time"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/timezone"
)

// LocalHour returns the hour-of-day (0..23) of an epoch-millisecond instant
// shifted by offsetMinutes. Shifting the instant and reading its UTC hour is
// equivalent to reading the wall-clock hour in the user's zone. The function
// is total: any int64 is treated as UTC epoch milliseconds.
func LocalHour(createdAtMs int64, offsetMinutes int) int {
	shifted := time.UnixMilli(createdAtMs).UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	return shifted.Hour()
}

// EventHour localizes one event against a completed offset table. Users
// absent from the table shift by 0.
func EventHour(e model.UserEvent, offsets timezone.Offsets) int {
	return LocalHour(e.CreatedAt, offsets.Offset(e.UserID))
}
