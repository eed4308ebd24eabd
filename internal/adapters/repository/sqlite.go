package repository

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
)

// SQLiteStore implements Store on a sqlite3 database file via gorm.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if necessary) a migrated sqlite3 database file.
func OpenSQLite(filename string) (*SQLiteStore, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: opening db file at '%s': %v", ErrOpen, filename, err)
	}
	if err := gdb.AutoMigrate(&model.User{}, &model.Artist{}, &model.Visit{}, &model.UserEvent{}); err != nil {
		return nil, fmt.Errorf("%w: migrating db at '%s': %v", ErrOpen, filename, err)
	}
	return &SQLiteStore{db: gdb}, nil
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	pool, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("error getting connection pool: %w", err)
	}
	return pool.Close()
}

func (s *SQLiteStore) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: listing users: %v", ErrQuery, err)
	}
	return users, nil
}

func (s *SQLiteStore) Artists(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := s.db.WithContext(ctx).Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("%w: listing artists: %v", ErrQuery, err)
	}
	return artists, nil
}

func (s *SQLiteStore) Visits(ctx context.Context) ([]model.Visit, error) {
	var visits []model.Visit
	if err := s.db.WithContext(ctx).Find(&visits).Error; err != nil {
		return nil, fmt.Errorf("%w: listing visits: %v", ErrQuery, err)
	}
	return visits, nil
}

func (s *SQLiteStore) UserEvents(ctx context.Context) ([]model.UserEvent, error) {
	var events []model.UserEvent
	if err := s.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("%w: listing user events: %v", ErrQuery, err)
	}
	return events, nil
}

func (s *SQLiteStore) RecordEvent(ctx context.Context, e model.UserEvent) error {
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return fmt.Errorf("%w: inserting user event for user '%s': %v", ErrRecord, e.UserID, err)
	}
	return nil
}

// InsertUser seeds one user row.
func (s *SQLiteStore) InsertUser(ctx context.Context, u model.User) error {
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return fmt.Errorf("%w: inserting user '%s': %v", ErrRecord, u.ID, err)
	}
	return nil
}

// InsertArtist seeds one artist row.
func (s *SQLiteStore) InsertArtist(ctx context.Context, a model.Artist) error {
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return fmt.Errorf("%w: inserting artist '%s': %v", ErrRecord, a.Name, err)
	}
	return nil
}

// InsertVisit seeds one visit row.
func (s *SQLiteStore) InsertVisit(ctx context.Context, v model.Visit) error {
	if err := s.db.WithContext(ctx).Create(&v).Error; err != nil {
		return fmt.Errorf("%w: inserting visit for artist '%s': %v", ErrRecord, v.ArtistID, err)
	}
	return nil
}
