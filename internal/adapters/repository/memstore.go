package repository

import (
	"context"
	"sync"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
)

// MemStore implements Store in memory. It backs tests and local runs that
// have no database file.
type MemStore struct {
	mu      sync.RWMutex
	users   []model.User
	artists []model.Artist
	visits  []model.Visit
	events  []model.UserEvent
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Users(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...), nil
}

func (s *MemStore) Artists(ctx context.Context) ([]model.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Artist(nil), s.artists...), nil
}

func (s *MemStore) Visits(ctx context.Context) ([]model.Visit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Visit(nil), s.visits...), nil
}

func (s *MemStore) UserEvents(ctx context.Context) ([]model.UserEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.UserEvent(nil), s.events...), nil
}

func (s *MemStore) RecordEvent(ctx context.Context, e model.UserEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

// InsertUser adds a user row.
func (s *MemStore) InsertUser(ctx context.Context, u model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.AddUsers(u)
	return nil
}

// InsertArtist adds an artist row.
func (s *MemStore) InsertArtist(ctx context.Context, a model.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.AddArtists(a)
	return nil
}

// InsertVisit adds a visit row.
func (s *MemStore) InsertVisit(ctx context.Context, v model.Visit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.AddVisits(v)
	return nil
}

// AddUsers seeds user rows.
func (s *MemStore) AddUsers(users ...model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, users...)
}

// AddArtists seeds artist rows.
func (s *MemStore) AddArtists(artists ...model.Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists = append(s.artists, artists...)
}

// AddVisits seeds visit rows.
func (s *MemStore) AddVisits(visits ...model.Visit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = append(s.visits, visits...)
}

// AddEvents seeds user event rows.
func (s *MemStore) AddEvents(events ...model.UserEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}
