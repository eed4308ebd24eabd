package queue_test

import (
	"context"
	"testing"

	"github.com/abubakarirfan/huddled-takehome/internal/adapters/mq/queue"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a bounded queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()
		e := model.UserEvent{UserID: "u1", ArtistID: "a1", EventType: model.EventPlayTrack, CreatedAt: 1}

		Convey("events enqueue until capacity", func() {
			So(q.Enqueue(ctx, e), ShouldBeTrue)
			So(q.Enqueue(ctx, e), ShouldBeTrue)
			So(q.Enqueue(ctx, e), ShouldBeFalse)
			So(q.Len(ctx), ShouldEqual, 2)
		})

		Convey("dequeued events arrive in order", func() {
			first := e
			first.CreatedAt = 1
			second := e
			second.CreatedAt = 2
			So(q.Enqueue(ctx, first), ShouldBeTrue)
			So(q.Enqueue(ctx, second), ShouldBeTrue)

			ch := q.Dequeue(ctx)
			So((<-ch).CreatedAt, ShouldEqual, 1)
			So((<-ch).CreatedAt, ShouldEqual, 2)
		})

		Convey("a closed queue rejects events and closes the channel", func() {
			So(q.Close(), ShouldBeNil)
			So(q.IsClosed(), ShouldBeTrue)
			So(q.Enqueue(ctx, e), ShouldBeFalse)
			_, open := <-q.Dequeue(ctx)
			So(open, ShouldBeFalse)
			// Closing twice is a no-op.
			So(q.Close(), ShouldBeNil)
		})
	})
}
