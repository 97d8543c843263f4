package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// Phase is an execution stage within a frame. Startup systems run once on
// the first tick; the remaining phases run in order every frame, and the
// command buffer is flushed after each phase.
type Phase int

const (
	Startup Phase = iota
	PreUpdate
	Update
	PostUpdate
	Cleanup

	numPhases
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Startup:
		return "startup"
	case PreUpdate:
		return "pre_update"
	case Update:
		return "update"
	case PostUpdate:
		return "post_update"
	case Cleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// SchedulerStats summarizes scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds execution timings for a single system.
type SystemStats struct {
	Name           string
	Phase          Phase
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type scheduledSystem struct {
	system System
	name   string
	// Execute closures of the system's Query fields, run before the
	// system each frame so snapshots are fresh.
	queryExecutes []func()

	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems against a world in phase order.
type Scheduler struct {
	world       *World
	phases      [numPhases][]*scheduledSystem
	startupDone bool
}

// NewScheduler creates a scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{world: world}
}

// Register adds a system to a phase, initializing its Query and Resource
// fields. Registration order within a phase is execution order.
func (s *Scheduler) Register(phase Phase, system System) {
	if phase < Startup || phase >= numPhases {
		panic("invalid scheduler phase")
	}

	scheduled := &scheduledSystem{
		system:      system,
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	}
	scheduled.queryExecutes = s.initializeFields(system)

	s.phases[phase] = append(s.phases[phase], scheduled)
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// initializeFields calls Init(world) on every Query and Resource field of
// the system and collects the queries' Execute closures.
func (s *Scheduler) initializeFields(system System) []func() {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	systemType := systemValue.Type()
	var executes []func()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		isQuery := strings.HasPrefix(typeName, "Query[")
		isResource := strings.HasPrefix(typeName, "Resource[")
		if !isQuery && !isResource {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(s.world)})

		if isQuery {
			executeMethod := field.Addr().MethodByName("Execute")
			if !executeMethod.IsValid() {
				panic("Execute method not found on field: " + fieldType.Name)
			}
			execute := executeMethod.Interface().(func())
			executes = append(executes, execute)
		}
	}

	return executes
}

func (s *Scheduler) runPhase(phase Phase, dt float64) {
	systems := s.phases[phase]
	if len(systems) == 0 {
		return
	}

	tick := newTick(dt, s.world)

	for _, scheduled := range systems {
		for _, execute := range scheduled.queryExecutes {
			execute()
		}

		start := time.Now()
		scheduled.system.Update(tick)
		duration := time.Since(start)

		scheduled.executionCount++
		scheduled.lastDuration = duration
		scheduled.totalDuration += duration

		if duration < scheduled.minDuration {
			scheduled.minDuration = duration
		}
		if duration > scheduled.maxDuration {
			scheduled.maxDuration = duration
		}
	}

	tick.Commands.Flush(s.world)
}

// Tick executes one frame: Startup once on the first call, then
// PreUpdate through Cleanup in order, flushing commands after each phase.
func (s *Scheduler) Tick(dt float64) {
	if !s.startupDone {
		s.runPhase(Startup, dt)
		s.startupDone = true
	}

	for phase := PreUpdate; phase <= Cleanup; phase++ {
		s.runPhase(phase, dt)
	}
}

// Run ticks the scheduler at the given interval until the context is
// cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Tick(dt)
		}
	}
}

// GetStats returns execution statistics for every registered system, in
// phase then registration order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{}

	var totalExecs int64
	for phase := Startup; phase < numPhases; phase++ {
		for _, scheduled := range s.phases[phase] {
			avgDuration := time.Duration(0)
			minDuration := time.Duration(0)
			if scheduled.executionCount > 0 {
				avgDuration = scheduled.totalDuration / time.Duration(scheduled.executionCount)
				minDuration = scheduled.minDuration
			}

			stats.Systems = append(stats.Systems, SystemStats{
				Name:           scheduled.name,
				Phase:          phase,
				ExecutionCount: scheduled.executionCount,
				MinDuration:    minDuration,
				MaxDuration:    scheduled.maxDuration,
				AvgDuration:    avgDuration,
				LastDuration:   scheduled.lastDuration,
				TotalDuration:  scheduled.totalDuration,
			})
			totalExecs += scheduled.executionCount
		}
	}

	stats.SystemCount = len(stats.Systems)
	stats.TotalExecutions = totalExecs
	return stats
}
