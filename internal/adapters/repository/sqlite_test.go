package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abubakarirfan/huddled-takehome/internal/adapters/repository"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSQLiteStore(t *testing.T) {
	Convey("Given a fresh sqlite database file", t, func() {
		path := filepath.Join(t.TempDir(), "analytics.db")
		store, err := repository.OpenSQLite(path)
		So(err, ShouldBeNil)
		defer func() { _ = store.Close() }()

		ctx := context.Background()

		Convey("inserted rows read back", func() {
			So(store.InsertUser(ctx, model.User{ID: "u1", Timezone: "Asia/Tokyo"}), ShouldBeNil)
			So(store.InsertArtist(ctx, model.Artist{ID: "a1", Name: "Glass Harbour"}), ShouldBeNil)
			So(store.InsertVisit(ctx, model.Visit{ArtistID: "a1", SessionID: "s1", StartTime: 100, EndTime: 4100}), ShouldBeNil)

			users, err := store.Users(ctx)
			So(err, ShouldBeNil)
			So(users, ShouldHaveLength, 1)
			So(users[0].Timezone, ShouldEqual, "Asia/Tokyo")

			artists, err := store.Artists(ctx)
			So(err, ShouldBeNil)
			So(artists[0].Name, ShouldEqual, "Glass Harbour")

			visits, err := store.Visits(ctx)
			So(err, ShouldBeNil)
			So(visits, ShouldHaveLength, 1)
			So(visits[0].EndTime, ShouldEqual, 4100)
		})

		Convey("RecordEvent persists across reopen", func() {
			So(store.RecordEvent(ctx, model.UserEvent{
				UserID: "u1", ArtistID: "a1", EventType: model.EventShareTrack, CreatedAt: 1704067200000,
			}), ShouldBeNil)
			So(store.Close(), ShouldBeNil)

			reopened, err := repository.OpenSQLite(path)
			So(err, ShouldBeNil)
			defer func() { _ = reopened.Close() }()

			events, err := reopened.UserEvents(ctx)
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 1)
			So(events[0].EventType, ShouldEqual, model.EventShareTrack)
		})

		Convey("reads respect context cancellation", func() {
			canceled, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := store.Users(canceled)
			So(err, ShouldNotBeNil)
		})
	})
}
