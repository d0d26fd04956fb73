package ecs

import (
	"reflect"
	"time"

	"github.com/rotisserie/eris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order, one pass each per tick.
// It never sleeps; pacing belongs to whoever calls Once.
type Scheduler[F any] struct {
	systems     []System[F]
	systemStats []*systemStatsInternal
}

// NewScheduler creates an empty scheduler.
func NewScheduler[F any]() *Scheduler[F] {
	return &Scheduler[F]{
		systems: make([]System[F], 0),
	}
}

// Register appends a system to the execution order.
func (s *Scheduler[F]) Register(system System[F]) {
	s.RegisterNamed(systemName(system), system)
}

// RegisterNamed appends a system under an explicit name.
func (s *Scheduler[F]) RegisterNamed(name string, system System[F]) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system any) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// Once executes every registered system once against frame. The first system
// error stops the tick and is returned wrapped with the system's name.
func (s *Scheduler[F]) Once(frame F) error {
	for i, system := range s.systems {
		start := time.Now()
		err := system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			return eris.Wrapf(err, "system %s failed", stats.name)
		}
	}
	return nil
}

// GetStats returns statistics about system execution.
func (s *Scheduler[F]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
