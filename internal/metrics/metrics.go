package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(v float64, labels ...string)
}

type Counters struct {
	Updates      Counter
	LogsAppended Counter
	SweepDropped Counter
	Archives     Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botstats",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: newCounterVec(name, help, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(v float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(v)
}

type counterOpts struct {
	name   string
	help   string
	labels []string
}

var (
	updatesOpts      = counterOpts{"updates_total", "Number of store operations applied", []string{"operation"}}
	logsAppendedOpts = counterOpts{"logs_appended_total", "Number of log entries stored", []string{"scope", "kind"}}
	sweepDroppedOpts = counterOpts{"sweep_dropped_total", "Number of log entries evicted by the retention sweeper", []string{"scope"}}
	archivesOpts     = counterOpts{"archives_total", "Number of account archive attempts", []string{"sink", "status"}}
)

func New() *Counters {
	return build(func(o counterOpts) Counter {
		return NewPrometheusCounter(o.name, o.help, o.labels)
	})
}

// NewTestCounters registers the counters in a private registry, so it can be called
// any number of times.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()
	return build(func(o counterOpts) Counter {
		c := &PrometheusCounter{counter: newCounterVec(o.name, o.help, o.labels)}
		reg.MustRegister(c.counter)
		return c
	})
}

func build(newCounter func(counterOpts) Counter) *Counters {
	return &Counters{
		Updates:      newCounter(updatesOpts),
		LogsAppended: newCounter(logsAppendedOpts),
		SweepDropped: newCounter(sweepDroppedOpts),
		Archives:     newCounter(archivesOpts),
	}
}
