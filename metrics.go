package clustergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each fit attempt. iterations is the number
	// of assign/update rounds completed, duration the total time taken,
	// err nil if successful.
	RecordFit(iterations int, duration time.Duration, err error)

	// RecordSnapshotSave is called after each snapshot save.
	RecordSnapshotSave(duration time.Duration, err error)

	// RecordSnapshotLoad is called after each snapshot load.
	RecordSnapshotLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordSnapshotSave(time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshotLoad(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount       atomic.Int64
	FitErrors      atomic.Int64
	FitIterations  atomic.Int64
	FitTotalNanos  atomic.Int64
	SnapshotSaves  atomic.Int64
	SnapshotLoads  atomic.Int64
	SnapshotErrors atomic.Int64
}

// RecordFit implements MetricsCollector.
func (c *BasicMetricsCollector) RecordFit(iterations int, duration time.Duration, err error) {
	c.FitCount.Add(1)
	c.FitIterations.Add(int64(iterations))
	c.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.FitErrors.Add(1)
	}
}

// RecordSnapshotSave implements MetricsCollector.
func (c *BasicMetricsCollector) RecordSnapshotSave(_ time.Duration, err error) {
	c.SnapshotSaves.Add(1)
	if err != nil {
		c.SnapshotErrors.Add(1)
	}
}

// RecordSnapshotLoad implements MetricsCollector.
func (c *BasicMetricsCollector) RecordSnapshotLoad(_ time.Duration, err error) {
	c.SnapshotLoads.Add(1)
	if err != nil {
		c.SnapshotErrors.Add(1)
	}
}

// AverageFitNanos returns the mean fit duration in nanoseconds, or 0 when no
// fit has been recorded.
func (c *BasicMetricsCollector) AverageFitNanos() int64 {
	count := c.FitCount.Load()
	if count == 0 {
		return 0
	}
	return c.FitTotalNanos.Load() / count
}
