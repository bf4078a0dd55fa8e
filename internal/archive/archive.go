package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/Egor213/BotStats/internal/metrics"
	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	defaultMaxRetries      = 2
	defaultInitialInterval = 200 * time.Millisecond
	breakerInterval        = time.Minute
	breakerOpenTimeout     = 5 * time.Minute
	breakerMinRequests     = 3
)

// Sink is one destination for account snapshots.
type Sink interface {
	Name() string
	Save(ctx context.Context, snapshot domain.AccountStats) error
}

type guardedSink struct {
	Sink
	breaker *gobreaker.CircuitBreaker
}

// Archiver saves every snapshot to all its sinks. Each sink sits behind its own circuit
// breaker and is retried with exponential backoff until the context expires.
type Archiver struct {
	sinks           []guardedSink
	counter         metrics.Counter
	maxRetries      uint64
	initialInterval time.Duration
}

type Option func(*Archiver)

func WithCounter(c metrics.Counter) Option {
	return func(a *Archiver) {
		a.counter = c
	}
}

func WithRetries(maxRetries uint64, initialInterval time.Duration) Option {
	return func(a *Archiver) {
		a.maxRetries = maxRetries
		a.initialInterval = initialInterval
	}
}

func New(sinks []Sink, opts ...Option) *Archiver {
	a := &Archiver{
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
	}

	for _, opt := range opts {
		opt(a)
	}

	for _, s := range sinks {
		a.sinks = append(a.sinks, guardedSink{Sink: s, breaker: newBreaker(s.Name())})
	}

	return a
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "archive-" + name,
		Interval: breakerInterval,
		Timeout:  breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= breakerMinRequests && counts.ConsecutiveFailures >= breakerMinRequests
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})
}

func (a *Archiver) Len() int {
	return len(a.sinks)
}

// Save tries every sink and joins their errors.
func (a *Archiver) Save(ctx context.Context, snapshot domain.AccountStats) error {
	var errs []error
	for _, s := range a.sinks {
		if err := a.save(ctx, s, snapshot); err != nil {
			a.inc(s.Name(), "failed")
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		a.inc(s.Name(), "ok")
	}
	return errors.Join(errs...)
}

func (a *Archiver) save(ctx context.Context, s guardedSink, snapshot domain.AccountStats) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = a.initialInterval

	return backoff.Retry(func() error {
		_, err := s.breaker.Execute(func() (interface{}, error) {
			return nil, s.Save(ctx, snapshot)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, a.maxRetries), ctx))
}

func (a *Archiver) inc(sink, status string) {
	if a.counter != nil {
		a.counter.Inc(sink, status)
	}
}
