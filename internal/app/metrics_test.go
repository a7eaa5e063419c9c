package app

import (
	"testing"
	"time"
)

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()
	m.RecordFrame(2 * time.Millisecond)
	m.RecordFrame(6 * time.Millisecond)
	m.RecordFrame(1 * time.Millisecond)

	s := m.Snapshot()
	if s.Frames != 3 {
		t.Errorf("Frames = %d, want 3", s.Frames)
	}
	if s.AvgFrame != 3*time.Millisecond {
		t.Errorf("AvgFrame = %v, want 3ms", s.AvgFrame)
	}
	if s.MaxFrame != 6*time.Millisecond {
		t.Errorf("MaxFrame = %v, want 6ms", s.MaxFrame)
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()
	m.RecordKey(false)
	m.RecordKey(true)
	m.RecordSave(true)
	m.RecordSave(false)
	m.RecordSave(false)
	m.RecordReload()

	s := m.Snapshot()
	if s.Keys != 2 || s.ScriptKeys != 1 {
		t.Errorf("keys = %d/%d, want 2/1", s.Keys, s.ScriptKeys)
	}
	if s.Saves != 1 || s.SaveFailures != 2 {
		t.Errorf("saves = %d/%d, want 1/2", s.Saves, s.SaveFailures)
	}
	if s.Reloads != 1 {
		t.Errorf("Reloads = %d, want 1", s.Reloads)
	}
	if got := s.String(); got != "0 frames, 2 keys, 1 saves" {
		t.Errorf("String() = %q", got)
	}
	if s.Fields()["saveFailures"] != uint64(2) {
		t.Errorf("Fields saveFailures = %v", s.Fields()["saveFailures"])
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.Frames != 0 || s.AvgFrame != 0 || s.MaxFrame != 0 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}
