package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop timing.
type Metrics struct {
	// Event processing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	eventMaxNs   atomic.Int64

	// Frame drawing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordEvent records how long one event took to handle.
func (m *Metrics) RecordEvent(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.eventCount.Add(1)
	m.eventTotalNs.Add(ns)

	for {
		old := m.eventMaxNs.Load()
		if ns <= old || m.eventMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordFrame records how long one screen update took.
func (m *Metrics) RecordFrame(duration time.Duration) {
	m.frameCount.Add(1)
	m.frameTotalNs.Add(duration.Nanoseconds())
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	eventCount := m.eventCount.Load()
	frameCount := m.frameCount.Load()

	var avgEventNs, avgFrameNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	return MetricsSnapshot{
		Uptime:     time.Since(m.startTime),
		EventCount: eventCount,
		AvgEventNs: avgEventNs,
		MaxEventNs: m.eventMaxNs.Load(),
		FrameCount: frameCount,
		AvgFrameNs: avgFrameNs,
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime     time.Duration
	EventCount uint64
	AvgEventNs int64
	MaxEventNs int64
	FrameCount uint64
	AvgFrameNs int64
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
