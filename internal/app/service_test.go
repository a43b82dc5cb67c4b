package app_test

import (
	"context"
	"testing"
	"time"

	app "github.com/docuflow/mockocr/internal/app"
	"github.com/docuflow/mockocr/internal/domain/batch"
	"github.com/smartystreets/goconvey/convey"
)

func TestServiceLifecycle(t *testing.T) {
	convey.Convey("Given a new service", t, func() {
		svc := app.New(app.WithScanDelay(0), app.WithSubmitDelay(0))
		ctx := context.Background()

		convey.Convey("When starting it", func() {
			err := svc.Start(ctx)
			defer svc.Stop()

			convey.Convey("Then it should start cleanly", func() {
				convey.So(err, convey.ShouldBeNil)
			})

			convey.Convey("And a second start should fail", func() {
				convey.So(svc.Start(ctx), convey.ShouldWrap, app.ErrAlreadyStarted)
			})
		})

		convey.Convey("When stopped and restarted", func() {
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			svc.Stop()

			convey.Convey("Then starting again should succeed", func() {
				convey.So(svc.Start(ctx), convey.ShouldBeNil)
				svc.Stop()
			})
		})
	})
}

func TestServiceScan(t *testing.T) {
	convey.Convey("Given a service with a short scan delay", t, func() {
		const delay = 50 * time.Millisecond
		svc := app.New(app.WithScanDelay(delay), app.WithSubmitDelay(0))
		ctx := context.Background()

		convey.Convey("When scanning", func() {
			start := time.Now()
			res, err := svc.Scan(ctx)
			elapsed := time.Since(start)

			convey.Convey("Then it should return the canned batch", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(res, convey.ShouldResemble, batch.DemoScan())
			})

			convey.Convey("Then the simulated delay should not be optimized away", func() {
				convey.So(elapsed, convey.ShouldBeGreaterThanOrEqualTo, delay)
			})
		})

		convey.Convey("When the request context is cancelled mid-scan", func() {
			cancelCtx, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
			defer cancel()

			_, err := svc.Scan(cancelCtx)

			convey.Convey("Then it should return the context error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, context.DeadlineExceeded)
			})
		})

		convey.Convey("When scanning repeatedly", func() {
			first, err1 := svc.Scan(ctx)
			second, err2 := svc.Scan(ctx)

			convey.Convey("Then results should be identical across calls", func() {
				convey.So(err1, convey.ShouldBeNil)
				convey.So(err2, convey.ShouldBeNil)
				convey.So(first, convey.ShouldResemble, second)
			})
		})
	})
}

func TestServiceSubmit(t *testing.T) {
	convey.Convey("Given a service with a short submit delay", t, func() {
		const delay = 50 * time.Millisecond
		svc := app.New(app.WithScanDelay(0), app.WithSubmitDelay(delay))
		ctx := context.Background()

		convey.Convey("When submitting", func() {
			start := time.Now()
			r, err := svc.Submit(ctx)
			elapsed := time.Since(start)

			convey.Convey("Then it should return the canned receipt", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(r.OK, convey.ShouldBeTrue)
				convey.So(r.ItemID, convey.ShouldEqual, "mock-1234")
			})

			convey.Convey("Then the simulated delay should be observed", func() {
				convey.So(elapsed, convey.ShouldBeGreaterThanOrEqualTo, delay)
			})
		})
	})
}

func TestServiceStats(t *testing.T) {
	convey.Convey("Given a started service with zero delays", t, func() {
		svc := app.New(app.WithScanDelay(0), app.WithSubmitDelay(0))
		ctx := context.Background()
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When serving a scan and two submissions", func() {
			_, _ = svc.Scan(ctx)
			_, _ = svc.Submit(ctx)
			_, _ = svc.Submit(ctx)

			stats := svc.GetStats()

			convey.Convey("Then counters should reflect served requests", func() {
				convey.So(stats["scansServed"], convey.ShouldEqual, int64(1))
				convey.So(stats["submissionsServed"], convey.ShouldEqual, int64(2))
			})

			convey.Convey("Then configured delays should be reported", func() {
				convey.So(stats["scanDelayMs"], convey.ShouldEqual, int64(0))
				convey.So(stats["submitDelayMs"], convey.ShouldEqual, int64(0))
			})
		})
	})
}
