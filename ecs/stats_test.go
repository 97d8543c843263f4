package ecs

import (
	"testing"
	"time"
)

func TestWorldStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)

	world := NewWorld(registry)

	stats := world.CollectStats()
	if stats.ArchetypeCount != 0 {
		t.Errorf("expected 0 archetypes, got %d", stats.ArchetypeCount)
	}
	if stats.EntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.EntityCount)
	}
	if stats.ResourceCount != 0 {
		t.Errorf("expected 0 resources, got %d", stats.ResourceCount)
	}

	world.Spawn(42, "hello")
	world.Spawn(100, "world")
	world.Spawn(200.0, "test")

	InsertResource(world, 3.14)
	InsertResource(world, "resource")

	stats = world.CollectStats()

	if stats.ArchetypeCount != 2 {
		t.Errorf("expected 2 archetypes, got %d", stats.ArchetypeCount)
	}

	if stats.EntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.EntityCount)
	}

	if stats.ResourceCount != 2 {
		t.Errorf("expected 2 resources, got %d", stats.ResourceCount)
	}

	if len(stats.Archetypes) != 2 {
		t.Errorf("expected 2 archetype entries, got %d", len(stats.Archetypes))
	}

	if len(world.ResourceTypes()) != 2 {
		t.Errorf("expected 2 resource types, got %d", len(world.ResourceTypes()))
	}

	// Archetypes are sorted by descending entity count.
	if stats.Archetypes[0].EntityCount != 2 || stats.Archetypes[1].EntityCount != 1 {
		t.Errorf("archetype breakdown incorrect: %+v", stats.Archetypes)
	}

	for _, arch := range stats.Archetypes {
		if arch.Capacity < arch.EntityCount {
			t.Errorf("capacity %d below entity count %d", arch.Capacity, arch.EntityCount)
		}
		if len(arch.ComponentTypes) != 2 {
			t.Errorf("expected 2 component types, got %v", arch.ComponentTypes)
		}
	}
}

type timedSystem struct {
	updateCount int
	sleepDur    time.Duration
}

func (s *timedSystem) Update(tick *Tick) {
	s.updateCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerStats(t *testing.T) {
	registry := NewComponentRegistry()
	world := NewWorld(registry)
	scheduler := NewScheduler(world)

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &timedSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &timedSystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(Update, sys1)
	scheduler.Register(PostUpdate, sys2)

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}

	scheduler.Tick(0.016)
	scheduler.Tick(0.016)
	scheduler.Tick(0.016)

	stats = scheduler.GetStats()

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 ticks), got %d", stats.TotalExecutions)
	}

	if len(stats.Systems) != 2 {
		t.Errorf("expected 2 system stats, got %d", len(stats.Systems))
	}

	if stats.Systems[0].Phase != Update || stats.Systems[1].Phase != PostUpdate {
		t.Errorf("expected phase order Update, PostUpdate, got %v, %v",
			stats.Systems[0].Phase, stats.Systems[1].Phase)
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "timedSystem" {
			t.Errorf("expected system name 'timedSystem', got '%s'", sysStats.Name)
		}

		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}

		if sysStats.MinDuration == 0 {
			t.Errorf("expected non-zero min duration")
		}

		if sysStats.MaxDuration == 0 {
			t.Errorf("expected non-zero max duration")
		}

		if sysStats.AvgDuration == 0 {
			t.Errorf("expected non-zero avg duration")
		}

		if sysStats.LastDuration == 0 {
			t.Errorf("expected non-zero last duration")
		}

		if sysStats.TotalDuration == 0 {
			t.Errorf("expected non-zero total duration")
		}

		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}

		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if sys1.updateCount != 3 {
		t.Errorf("expected sys1 to update 3 times, got %d", sys1.updateCount)
	}

	if sys2.updateCount != 3 {
		t.Errorf("expected sys2 to update 3 times, got %d", sys2.updateCount)
	}
}

func TestSchedulerStatsBeforeFirstTick(t *testing.T) {
	registry := NewComponentRegistry()
	world := NewWorld(registry)
	scheduler := NewScheduler(world)
	scheduler.Register(Update, &timedSystem{})

	stats := scheduler.GetStats()
	if len(stats.Systems) != 1 {
		t.Fatalf("expected 1 system stat, got %d", len(stats.Systems))
	}

	// A system that never executed reports zeroed timings, not the
	// internal min-tracking sentinel.
	sys := stats.Systems[0]
	if sys.ExecutionCount != 0 {
		t.Errorf("expected 0 executions, got %d", sys.ExecutionCount)
	}
	if sys.MinDuration != 0 {
		t.Errorf("expected zero min duration, got %v", sys.MinDuration)
	}
	if sys.MaxDuration != 0 || sys.AvgDuration != 0 || sys.TotalDuration != 0 {
		t.Errorf("expected zeroed durations, got %+v", sys)
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{
		Startup:    "startup",
		PreUpdate:  "pre_update",
		Update:     "update",
		PostUpdate: "post_update",
		Cleanup:    "cleanup",
	}
	for phase, want := range cases {
		if phase.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, phase.String(), want)
		}
	}
}
