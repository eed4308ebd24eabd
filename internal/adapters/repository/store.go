// Package repository defines the row store interface and its implementations.
package repository

import (
	"context"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
)

// Store provides read snapshots of the catalog and a write path for
// ingested events. Read methods return their full row sets; the analytics
// pipeline operates on bounded, already-materialized snapshots.
type Store interface {
	// Users returns all user rows.
	Users(ctx context.Context) ([]model.User, error)

	// Artists returns all artist rows.
	Artists(ctx context.Context) ([]model.Artist, error)

	// Visits returns all visit rows.
	Visits(ctx context.Context) ([]model.Visit, error)

	// UserEvents returns all user event rows.
	UserEvents(ctx context.Context) ([]model.UserEvent, error)

	// RecordEvent persists one ingested user event.
	RecordEvent(ctx context.Context, e model.UserEvent) error
}
