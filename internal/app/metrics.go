package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics counts what happened during a session. It is logged on exit.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	keys         atomic.Uint64
	scriptKeys   atomic.Uint64
	saves        atomic.Uint64
	saveFailures atomic.Uint64
	reloads      atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records how long one render took.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records a handled key. scripted is true when a script binding
// consumed it.
func (m *Metrics) RecordKey(scripted bool) {
	m.keys.Add(1)
	if scripted {
		m.scriptKeys.Add(1)
	}
}

// RecordSave records the outcome of a save attempt.
func (m *Metrics) RecordSave(ok bool) {
	if ok {
		m.saves.Add(1)
	} else {
		m.saveFailures.Add(1)
	}
}

// RecordReload records a configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()

	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(m.frameTotalNs.Load() / int64(frames))
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		Frames:       frames,
		AvgFrame:     avg,
		MaxFrame:     time.Duration(m.frameMaxNs.Load()),
		Keys:         m.keys.Load(),
		ScriptKeys:   m.scriptKeys.Load(),
		Saves:        m.saves.Load(),
		SaveFailures: m.saveFailures.Load(),
		Reloads:      m.reloads.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	Frames       uint64
	AvgFrame     time.Duration
	MaxFrame     time.Duration
	Keys         uint64
	ScriptKeys   uint64
	Saves        uint64
	SaveFailures uint64
	Reloads      uint64
}

// Fields returns the snapshot as logger fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":       s.Uptime.Round(time.Millisecond).String(),
		"frames":       s.Frames,
		"avgFrame":     s.AvgFrame.String(),
		"maxFrame":     s.MaxFrame.String(),
		"keys":         s.Keys,
		"scriptKeys":   s.ScriptKeys,
		"saves":        s.Saves,
		"saveFailures": s.SaveFailures,
		"reloads":      s.Reloads,
	}
}

func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("%d frames, %d keys, %d saves", s.Frames, s.Keys, s.Saves)
}
