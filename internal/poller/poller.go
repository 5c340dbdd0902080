package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/live-scores-service/internal/logging"
	"github.com/preston-bernstein/live-scores-service/internal/metrics"
)

const (
	defaultInterval = 30 * time.Second
	// readyFailures consecutive failed cycles take the service out of rotation.
	readyFailures = 3
)

// Refresher reloads match data; store.MatchStore satisfies it.
type Refresher interface {
	FetchMatches(ctx context.Context) error
}

// Status describes the recent health of the refresh loop.
type Status struct {
	Cycles              int       `json:"cycles"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// IsReady is true once a cycle has succeeded and failures have not piled up since.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero() && s.ConsecutiveFailures < readyFailures
}

// Poller drives a Refresher once at start and then on every tick.
type Poller struct {
	target   Refresher
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	startMu  sync.Mutex
	started  bool
	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	statusMu sync.RWMutex
	status   Status
}

// New returns an idle Poller. A non-positive interval means 30s.
func New(target Refresher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		target:   target,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the loop. Later calls are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	go p.run(ctx, p.ticker.C)
}

func (p *Poller) run(ctx context.Context, ticks <-chan time.Time) {
	defer close(p.stopped)
	defer p.ticker.Stop()
	logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))

	p.fetchOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "poller stopped", "reason", "context")
			return
		case <-p.done:
			logging.Info(p.logger, "poller stopped", "reason", "stop")
			return
		case <-ticks:
			p.fetchOnce(ctx)
		}
	}
}

// Stop ends the loop and waits for the in-flight cycle to finish or for ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.done) })

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) fetchOnce(ctx context.Context) {
	if p.target == nil {
		return
	}
	start := p.now()
	err := p.target.FetchMatches(ctx)
	elapsed := time.Since(start)

	p.metrics.RecordPollerCycle(elapsed, err)
	p.record(start, err)

	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		return
	}
	logging.Debug(p.logger, "poller refreshed matches", slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
}

func (p *Poller) record(at time.Time, err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Cycles++
	p.status.LastAttempt = at
	if err != nil {
		p.status.ConsecutiveFailures++
		p.status.LastError = err.Error()
		return
	}
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
