package queue_test

import (
	"context"
	"testing"
	"time"

	queue "github.com/okian/tandem/internal/adapters/mq/queue"
	"github.com/okian/tandem/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	Convey("Given an in-memory job queue", t, func() {
		ctx := context.Background()

		Convey("When enqueuing within capacity", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(4), queue.WithBufferSize(4))

			ok := q.Enqueue(ctx, queue.Job{Index: 0, Seeker: model.Seeker{ID: "s1"}})

			Convey("Then the job is accepted", func() {
				So(ok, ShouldBeTrue)
				So(q.Len(ctx), ShouldEqual, 1)
			})
		})

		Convey("When the queue is full", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(1), queue.WithBufferSize(1))

			So(q.Enqueue(ctx, queue.Job{Index: 0}), ShouldBeTrue)
			ok := q.Enqueue(ctx, queue.Job{Index: 1})

			Convey("Then enqueue reports backpressure instead of blocking", func() {
				So(ok, ShouldBeFalse)
				So(q.Len(ctx), ShouldEqual, 1)
			})
		})

		Convey("When dequeuing jobs", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(4), queue.WithBufferSize(4))

			So(q.Enqueue(ctx, queue.Job{Index: 7, Seeker: model.Seeker{ID: "s7"}}), ShouldBeTrue)

			jobChan := q.Dequeue(ctx)

			Convey("Then jobs arrive with their payload intact", func() {
				select {
				case job := <-jobChan:
					So(job.Index, ShouldEqual, 7)
					So(job.Seeker.ID, ShouldEqual, "s7")
				case <-time.After(time.Second):
					So("timed out waiting for job", ShouldBeEmpty)
				}
			})
		})

		Convey("When the queue is closed", func() {
			q := queue.NewInMemoryQueue()

			So(q.IsClosed(), ShouldBeFalse)
			So(q.Close(), ShouldBeNil)

			Convey("Then further enqueues are refused", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, queue.Job{Index: 0}), ShouldBeFalse)
			})

			Convey("And closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})

			Convey("And the dequeue channel drains then closes", func() {
				jobChan := q.Dequeue(ctx)
				select {
				case _, open := <-jobChan:
					So(open, ShouldBeFalse)
				case <-time.After(time.Second):
					So("timed out waiting for close", ShouldBeEmpty)
				}
			})
		})

		Convey("When the dequeue context is cancelled", func() {
			q := queue.NewInMemoryQueue()
			cancelCtx, cancel := context.WithCancel(context.Background())

			jobChan := q.Dequeue(cancelCtx)
			So(q.Enqueue(ctx, queue.Job{Index: 0}), ShouldBeTrue)
			cancel()

			Convey("Then the consumer channel eventually closes", func() {
				deadline := time.After(2 * time.Second)
				for {
					select {
					case _, open := <-jobChan:
						if !open {
							So(open, ShouldBeFalse)
							return
						}
					case <-deadline:
						So("timed out waiting for close", ShouldBeEmpty)
						return
					}
				}
			})
		})
	})
}
