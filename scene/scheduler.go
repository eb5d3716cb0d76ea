package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/mono/input"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pass names one stage of a frame.
type Pass int

const (
	PassInput Pass = iota
	PassUpdate
	PassSpatial
	PassRealUpdate
	PassDebugDraw
	PassCommands
	passCount
)

func (p Pass) String() string {
	switch p {
	case PassInput:
		return "Input"
	case PassUpdate:
		return "Update"
	case PassSpatial:
		return "Spatial"
	case PassRealUpdate:
		return "RealUpdate"
	case PassDebugDraw:
		return "DebugDraw"
	case PassCommands:
		return "Commands"
	default:
		return "Unknown"
	}
}

// DebugHost lays out the debug pass. The scheduler calls Begin once per frame,
// BeginObject/DrawBehavior/EndObject for each object in order, and End once,
// even when Begin returned false.
type DebugHost interface {
	Begin() bool
	BeginObject(g *GameObject) bool
	DrawBehavior(g *GameObject, b Behavior)
	EndObject(g *GameObject)
	End()
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames int64
	Passes []PassStats
}

// PassStats provides execution statistics for a single pass.
type PassStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type passStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *passStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// Scheduler drives frames over a World:
//
//	input.BeginFrame, source.Pump, input.Advance
//	Update on every behavior of every object
//	Transform.RealUpdate on every object (spatial pass)
//	RealUpdate on every other behavior
//	DebugDraw (when a DebugHost is installed)
//	Commands.Flush
//
// Objects are visited in creation order and behaviors in attachment order.
type Scheduler struct {
	world    *World
	input    *input.Sampler
	source   input.Source
	debug    DebugHost
	parallel int

	frames int64
	stats  [passCount]passStatsInternal
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithInput sets the sampler and the source that feeds it.
func WithInput(sampler *input.Sampler, source input.Source) SchedulerOption {
	return func(s *Scheduler) {
		s.input = sampler
		s.source = source
	}
}

// WithDebugHost enables the debug pass.
func WithDebugHost(host DebugHost) SchedulerOption {
	return func(s *Scheduler) {
		s.debug = host
	}
}

// WithParallelUpdate runs the Update pass across objects on up to n goroutines.
// Behaviors of one object still run in order on one goroutine, but objects are
// no longer visited in creation order, and behaviors must only touch their own
// object; cross-object structural changes go through Frame.Commands.
func WithParallelUpdate(n int) SchedulerOption {
	return func(s *Scheduler) {
		s.parallel = n
	}
}

// NewScheduler creates a scheduler for w.
func NewScheduler(w *World, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		world: w,
		input: input.NewSampler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.stats {
		s.stats[i].minDuration = time.Duration(1<<63 - 1)
	}
	return s
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *World {
	return s.world
}

// Input returns the sampler the scheduler advances.
func (s *Scheduler) Input() *input.Sampler {
	return s.input
}

// Once runs a single frame with the given delta time in seconds.
func (s *Scheduler) Once(dt float32) {
	commands := newCommands()
	frame := newFrame(dt, s.frames, s.input, s.world, commands)
	s.frames++

	s.timed(PassInput, func() {
		s.input.BeginFrame()
		if s.source != nil {
			s.source.Pump(s.input)
		}
		s.input.Advance()
	})

	objects := s.world.Objects()

	s.timed(PassUpdate, func() {
		if s.parallel > 1 {
			s.parallelUpdate(objects, frame)
			return
		}
		for _, g := range objects {
			g.update(frame)
		}
	})

	s.timed(PassSpatial, func() {
		for _, g := range objects {
			g.spatialUpdate(frame)
		}
	})

	s.timed(PassRealUpdate, func() {
		for _, g := range objects {
			g.realUpdate(frame)
		}
	})

	if s.debug != nil {
		s.timed(PassDebugDraw, func() {
			s.debugDraw(objects)
		})
	}

	s.timed(PassCommands, func() {
		commands.Flush(s.world)
	})
}

// UpdatePanic is raised on the scheduler goroutine when a behavior panics
// during a parallel Update pass.
type UpdatePanic struct {
	Object string
	ID     ObjectID
	Value  any
}

func (p *UpdatePanic) Error() string {
	return fmt.Sprintf("update of %q (id %d) panicked: %v", p.Object, p.ID, p.Value)
}

// parallelUpdate re-raises the first behavior panic on the calling goroutine
// once every object has finished, wrapped in an *UpdatePanic naming the object.
func (s *Scheduler) parallelUpdate(objects []*GameObject, frame *Frame) {
	var group errgroup.Group
	group.SetLimit(s.parallel)
	for _, g := range objects {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &UpdatePanic{Object: g.Name, ID: g.ID, Value: r}
				}
			}()
			g.update(frame)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		s.world.Logger().Error("parallel update failed", zap.Int64("frame", frame.Index), zap.Error(err))
		panic(err)
	}
}

func (s *Scheduler) debugDraw(objects []*GameObject) {
	defer s.debug.End()
	if !s.debug.Begin() {
		return
	}

	for _, g := range objects {
		if g.Destroyed() || !s.debug.BeginObject(g) {
			continue
		}
		for _, b := range g.behaviors {
			if StateOf(b) == StateActive {
				s.debug.DrawBehavior(g, b)
			}
		}
		s.debug.EndObject(g)
	}
}

func (s *Scheduler) timed(p Pass, fn func()) {
	start := time.Now()
	fn()
	s.stats[p].record(time.Since(start))
}

// Run executes frames at the given interval until the context is cancelled.
// With a fixed timestep every frame gets the configured delta; otherwise the
// measured time since the previous frame.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	timing := s.world.Settings().Time
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := float32(now.Sub(lastTime).Seconds())
			lastTime = now
			if timing.Fixed {
				dt = timing.Delta
			}
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about pass execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames: s.frames,
		Passes: make([]PassStats, 0, passCount),
	}

	for p := range passCount {
		internal := s.stats[p]
		if internal.executionCount == 0 {
			continue
		}

		stats.Passes = append(stats.Passes, PassStats{
			Name:           p.String(),
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    internal.totalDuration / time.Duration(internal.executionCount),
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}

	return stats
}
