package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/nmbmarques/water-ie-outage/internal/config"
	"github.com/nmbmarques/water-ie-outage/internal/domain"
	"github.com/nmbmarques/water-ie-outage/internal/observability"
	"github.com/nmbmarques/water-ie-outage/internal/report"
)

// Fetcher retrieves the current raw outage records for a county.
type Fetcher interface {
	FetchOpenOutages(ctx context.Context, county string) ([]domain.RawRecord, error)
}

// Notifier delivers a rendered change report out of band.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// Monitor polls the feature service and raises a notification whenever the
// filtered outage set changes.
type Monitor struct {
	cfg      *config.Config
	fetcher  Fetcher
	notifier Notifier
	out      io.Writer
	logger   *slog.Logger
	metrics  *observability.Metrics
	detector *Detector
	ready    atomic.Bool
}

// New creates a Monitor. notifier may be nil when email delivery is
// disabled; reports then go to out only.
func New(cfg *config.Config, fetcher Fetcher, notifier Notifier, out io.Writer, logger *slog.Logger, metrics *observability.Metrics) *Monitor {
	return &Monitor{
		cfg:      cfg,
		fetcher:  fetcher,
		notifier: notifier,
		out:      out,
		logger:   logger,
		metrics:  metrics,
		detector: NewDetector(""),
	}
}

// CheckReadiness returns nil once at least one poll cycle has completed,
// or an error describing why the service is not yet ready.
func (m *Monitor) CheckReadiness(_ context.Context) error {
	if !m.ready.Load() {
		return errors.New("monitor has not completed a poll cycle yet")
	}
	return nil
}

// Run polls until the context is cancelled. A failed cycle is logged and
// retried on the next tick; the change detector only advances on success.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info("monitor started",
		"county", m.cfg.County,
		"interval", m.cfg.Interval(),
		"refnum", m.cfg.Refnum,
		"location_contains", m.cfg.LocationContains,
		"verbose", m.cfg.Verbose,
		"email_enabled", m.notifier != nil,
	)
	m.metrics.MonitorRunning.Set(1)
	defer m.metrics.MonitorRunning.Set(0)

	for {
		if err := m.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				m.logger.Info("monitor stopping", "reason", ctx.Err())
				return nil
			}
			m.logger.Error("poll cycle failed", "error", err)
			m.metrics.CycleErrors.Inc()
		}

		if !m.sleepInterval(ctx) {
			m.logger.Info("monitor stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// cycle runs one fetch-compare-report pass. The detector only advances after
// the report, and the notification when one is due, went out.
func (m *Monitor) cycle(ctx context.Context) error {
	start := time.Now()
	m.metrics.CyclesTotal.Inc()

	fetchStart := time.Now()
	records, err := m.fetcher.FetchOpenOutages(ctx, m.cfg.County)
	if err != nil {
		return fmt.Errorf("fetch outages: %w", err)
	}
	m.metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())

	outages := make([]domain.Outage, 0, len(records))
	for _, rec := range records {
		outages = append(outages, domain.NormalizeOutage(rec))
	}
	outages = domain.ApplyFilters(outages, m.cfg.Refnum, m.cfg.LocationContains)

	digest, err := domain.Fingerprint(outages)
	if err != nil {
		return fmt.Errorf("fingerprint outages: %w", err)
	}

	transition := m.detector.Classify(digest)
	m.logger.Debug("digest classified", "transition", transition, "digest", digest)

	switch transition {
	case TransitionBaseline:
		m.logger.Info("initial state fetched", "matching_outages", len(outages))
		if m.cfg.Verbose {
			fmt.Fprint(m.out, m.reportBody(outages))
		}
		m.detector.Commit(digest)

	case TransitionChanged:
		m.logger.Info("change detected", "matching_outages", len(outages))
		m.metrics.ChangesDetected.Inc()
		body := m.reportBody(outages)
		if m.cfg.Verbose {
			fmt.Fprint(m.out, body)
		}
		if m.notifier != nil {
			subject := report.Subject(m.cfg.SubjectPrefix, m.cfg.County, m.cfg.Refnum, m.cfg.LocationContains)
			if err := m.notifier.Notify(ctx, subject, body); err != nil {
				return fmt.Errorf("notify change: %w", err)
			}
			m.metrics.EmailsSent.Inc()
		}
		m.detector.Commit(digest)

	case TransitionUnchanged:
		m.logger.Info("no change", "matching_outages", len(outages))
	}

	m.metrics.MatchingOutages.Set(float64(len(outages)))
	m.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	m.ready.Store(true)
	return nil
}

func (m *Monitor) reportBody(outages []domain.Outage) string {
	return report.Render(outages, m.cfg.County, m.cfg.Refnum, m.cfg.LocationContains)
}

// sleepInterval waits one poll interval. Returns false when the context is
// cancelled first.
func (m *Monitor) sleepInterval(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-clock.After(m.cfg.Interval()):
		return true
	}
}
