package service

import (
	"time"

	"alcyxob/training-diary/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultPendingLookback is how far back unreported trainings stay pending.
const DefaultPendingLookback = 7 * 24 * time.Hour

type Option func(*options)

type options struct {
	now      func() time.Time
	location *time.Location
	lookback time.Duration
	metrics  *metrics.Manager
}

func newOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		location: time.UTC,
		lookback: DefaultPendingLookback,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		// unregistered, so nothing is exported
		o.metrics = metrics.NewManager("training_diary", "service", prometheus.NewRegistry())
	}
	return o
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLocation sets the zone weeks and days are computed in.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithLookback sets the pending window of the diary.
func WithLookback(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.lookback = d
		}
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(o *options) {
		o.metrics = m
	}
}
