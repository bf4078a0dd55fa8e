package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Egor213/BotStats/internal/metrics"
	"github.com/coder/quartz"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSweepInterval  = 6 * time.Hour
	DefaultSweepThreshold = 100
)

// Sweeper periodically runs Store.Sweep to keep the log sequences bounded.
type Sweeper struct {
	store     *Store
	clock     quartz.Clock
	interval  time.Duration
	threshold int
	dropped   metrics.Counter

	mu     sync.Mutex
	cancel context.CancelFunc
	waiter quartz.Waiter
}

type SweeperOption func(*Sweeper)

func SweepClock(clock quartz.Clock) SweeperOption {
	return func(w *Sweeper) {
		w.clock = clock
	}
}

func SweepInterval(d time.Duration) SweeperOption {
	return func(w *Sweeper) {
		if d > 0 {
			w.interval = d
		}
	}
}

// SweepThreshold sets how many log entries survive a sweep. Zero enables the deep reset.
func SweepThreshold(n int) SweeperOption {
	return func(w *Sweeper) {
		if n >= 0 {
			w.threshold = n
		}
	}
}

func SweepDroppedCounter(c metrics.Counter) SweeperOption {
	return func(w *Sweeper) {
		w.dropped = c
	}
}

func NewSweeper(s *Store, opts ...SweeperOption) *Sweeper {
	w := &Sweeper{
		store:     s,
		clock:     quartz.NewReal(),
		interval:  DefaultSweepInterval,
		threshold: DefaultSweepThreshold,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Start schedules the sweeps. Calling Start on a running sweeper does nothing.
func (w *Sweeper) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.waiter = w.clock.TickerFunc(ctx, w.interval, func() error {
		w.sweep()
		return nil
	}, "sweeper")

	log.WithFields(log.Fields{
		"interval":  w.interval.String(),
		"threshold": w.threshold,
	}).Info("Retention sweeper started")
}

func (w *Sweeper) sweep() {
	res := w.store.Sweep(w.threshold)

	if w.dropped != nil {
		w.dropped.Add(float64(res.AccountLogsDropped), "account")
		w.dropped.Add(float64(res.KeywordLogsDropped), "keyword")
	}

	log.WithFields(log.Fields{
		"accounts":             res.Accounts,
		"account_logs_dropped": res.AccountLogsDropped,
		"keyword_logs_dropped": res.KeywordLogsDropped,
		"reset":                res.Reset,
	}).Info("Retention sweep finished")
}

// Close stops scheduling new sweeps and waits for a running one to finish.
func (w *Sweeper) Close() error {
	w.mu.Lock()
	cancel, waiter := w.cancel, w.waiter
	w.cancel, w.waiter = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	err := waiter.Wait()
	log.Info("Retention sweeper stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
