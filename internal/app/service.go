// Package app provides the mock engine service that implements the
// dependencies required by the HTTP API.
//
// The engine performs no real OCR. It sleeps for a configured interval
// to approximate the latency of the real document pipeline, then hands
// back the canned fixtures from the batch package.
package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/docuflow/mockocr/internal/domain/batch"
	"github.com/docuflow/mockocr/pkg/logger"
	"github.com/docuflow/mockocr/pkg/metrics"
)

// Default simulated latency for both operations.
const defaultDelay = time.Second

// Service simulates the document-processing backend.
type Service struct {
	scanDelay   time.Duration
	submitDelay time.Duration

	// State
	started   atomic.Bool
	startedAt time.Time

	// Counters for the stats endpoint
	scans       atomic.Int64
	submissions atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithScanDelay sets the simulated latency for upload processing.
func WithScanDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.scanDelay = d
		}
	}
}

// WithSubmitDelay sets the simulated latency for item submission.
func WithSubmitDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.submitDelay = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scanDelay:   defaultDelay,
		submitDelay: defaultDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start marks the service as running. It exists so the lifecycle mirrors
// the real backend this server stands in for.
func (s *Service) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	s.startedAt = time.Now()
	if s.logger != nil {
		s.logger.Info(ctx, "mock engine started",
			logger.Duration("scan_delay", s.scanDelay),
			logger.Duration("submit_delay", s.submitDelay))
	}
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.started.Store(false)
}

// Scan pretends to run OCR over an uploaded batch. It blocks for the
// configured scan delay (honoring ctx) and returns the fixed demo result.
func (s *Service) Scan(ctx context.Context) (batch.ScanResult, error) {
	if err := s.pause(ctx, s.scanDelay); err != nil {
		return batch.ScanResult{}, err
	}
	s.scans.Add(1)
	metrics.RecordScan()
	metrics.RecordSimulatedDelay(float64(s.scanDelay.Milliseconds()))
	if s.logger != nil {
		s.logger.Debug(ctx, "served canned scan result", logger.String("batch_id", batch.DemoBatch))
	}
	return batch.DemoScan(), nil
}

// Submit pretends to persist a reviewed item. It blocks for the configured
// submit delay (honoring ctx) and returns the fixed acknowledgement.
func (s *Service) Submit(ctx context.Context) (batch.Receipt, error) {
	if err := s.pause(ctx, s.submitDelay); err != nil {
		return batch.Receipt{}, err
	}
	s.submissions.Add(1)
	metrics.RecordSubmission()
	metrics.RecordSimulatedDelay(float64(s.submitDelay.Milliseconds()))
	if s.logger != nil {
		s.logger.Debug(ctx, "served canned submission receipt", logger.String("item_id", batch.DemoItemID))
	}
	return batch.DemoReceipt(), nil
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	uptime := 0.0
	if s.started.Load() {
		uptime = time.Since(s.startedAt).Seconds()
	}
	return map[string]interface{}{
		"scansServed":       s.scans.Load(),
		"submissionsServed": s.submissions.Load(),
		"uptimeSeconds":     uptime,
		"scanDelayMs":       s.scanDelay.Milliseconds(),
		"submitDelayMs":     s.submitDelay.Milliseconds(),
	}
}

// pause blocks for d or until ctx is done, whichever comes first.
func (s *Service) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated processing interrupted: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}
