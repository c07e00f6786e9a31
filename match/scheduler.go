package match

import (
	"reflect"
	"time"
)

// SchedulerStats summarizes how long each system has taken across ticks.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds timing for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name          string
	count         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Scheduler runs a match's systems in order once per tick and flushes their commands.
type Scheduler struct {
	match   *Match
	systems []System
	timings []*systemTimings
}

// NewScheduler creates an empty scheduler for m.
func NewScheduler(m *Match) *Scheduler {
	return &Scheduler{match: m}
}

// Register appends a system. Systems are named after their type in stats.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.timings = append(s.timings, &systemTimings{
		name:        t.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every system for one tick of length dt, then flushes the tick's commands.
func (s *Scheduler) Once(dt time.Duration, tick int64) {
	frame := newUpdateFrame(dt, tick, s.match)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		t := s.timings[i]
		t.count++
		t.lastDuration = duration
		t.totalDuration += duration
		t.minDuration = min(t.minDuration, duration)
		t.maxDuration = max(t.maxDuration, duration)
	}

	frame.Commands.Flush(s.match)
}

// GetStats returns per-system timing.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.timings)),
	}

	for i, t := range s.timings {
		var avg time.Duration
		if t.count > 0 {
			avg = t.totalDuration / time.Duration(t.count)
		}
		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    t.minDuration,
			MaxDuration:    t.maxDuration,
			AvgDuration:    avg,
			LastDuration:   t.lastDuration,
			TotalDuration:  t.totalDuration,
		}
		stats.TotalExecutions += t.count
	}
	return stats
}
