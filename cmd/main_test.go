package main

import (
	"context"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/abubakarirfan/huddled-takehome/internal/adapters/http/api"
	"github.com/abubakarirfan/huddled-takehome/internal/adapters/repository"
	"github.com/abubakarirfan/huddled-takehome/internal/app"
	"github.com/abubakarirfan/huddled-takehome/internal/config"
	"github.com/abubakarirfan/huddled-takehome/pkg/metrics"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			t.Setenv("HUDDLED_ADDR", ":8080")
			t.Setenv("HUDDLED_QUEUE_SIZE", "1000")
			t.Setenv("HUDDLED_WORKER_COUNT", "4")

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 1000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithStore(repository.NewMemStore()),
					app.WithWorkerCount(8),
					app.WithQueueSize(2000),
					app.WithDedupeSize(1000),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New(app.WithStore(repository.NewMemStore()))

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager()
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}
