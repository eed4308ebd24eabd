package seed_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/abubakarirfan/huddled-takehome/internal/adapters/repository"
	"github.com/abubakarirfan/huddled-takehome/internal/seed"
)

func TestGenerator_Run(t *testing.T) {
	Convey("Given a generator with a fixed seed", t, func() {
		cfg := seed.Config{
			Users:         5,
			Artists:       3,
			VisitsPerUser: 2,
			EventsPerUser: 4,
			Seed:          42,
		}
		gen := seed.New(cfg)
		store := repository.NewMemStore()
		ctx := context.Background()

		Convey("When running against a memory store", func() {
			stats, err := gen.Run(ctx, store)

			Convey("Then it should report the configured counts", func() {
				So(err, ShouldBeNil)
				So(stats.Users, ShouldEqual, 5)
				So(stats.Artists, ShouldEqual, 3)
				So(stats.Visits, ShouldEqual, 10)
				So(stats.Events, ShouldEqual, 20)
			})

			Convey("And the store should hold the generated rows", func() {
				So(err, ShouldBeNil)

				users, err := store.Users(ctx)
				So(err, ShouldBeNil)
				So(len(users), ShouldEqual, 5)

				visits, err := store.Visits(ctx)
				So(err, ShouldBeNil)
				So(len(visits), ShouldEqual, 10)
				for _, v := range visits {
					So(v.EndTime, ShouldBeGreaterThan, v.StartTime)
				}

				events, err := store.UserEvents(ctx)
				So(err, ShouldBeNil)
				So(len(events), ShouldEqual, 20)
			})
		})
	})
}

func TestGenerator_InsertErrorsPropagate(t *testing.T) {
	Convey("Given a generator writing to a canceled context", t, func() {
		gen := seed.New(seed.Config{Users: 2, Artists: 1, VisitsPerUser: 1, EventsPerUser: 1, Seed: 7})
		store := repository.NewMemStore()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When running", func() {
			_, err := gen.Run(ctx, store)

			Convey("Then the store error should propagate", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
