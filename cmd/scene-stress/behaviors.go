package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/behavior"
	"github.com/plus3/mono/scene"
)

// drifter moves its owner along a fixed velocity.
type drifter struct {
	scene.BaseBehavior
	Velocity mgl32.Vec3
}

func (d *drifter) Update(frame *scene.Frame) {
	d.Transform().Translate(d.Velocity.Mul(frame.DeltaTime))
}

// bouncer reverses a sibling drifter when its owner leaves the arena.
type bouncer struct {
	scene.BaseBehavior
	Extent float32
}

func (b *bouncer) RealUpdate(*scene.Frame) {
	d, ok := scene.GetComponent[*drifter](b.GameObject())
	if !ok {
		return
	}
	p := b.Transform().Position
	for i := range 3 {
		if p[i] > b.Extent || p[i] < -b.Extent {
			d.Velocity[i] = -d.Velocity[i]
		}
	}
}

// mortal destroys its owner after a number of frames and queues a
// replacement, keeping the object count steady while churning ids.
type mortal struct {
	scene.BaseBehavior
	Frames int
	spawn  func(c *scene.Commands)
}

func (m *mortal) RealUpdate(frame *scene.Frame) {
	m.Frames--
	if m.Frames > 0 {
		return
	}
	frame.Commands.Destroy(m.GameObject())
	if m.spawn != nil {
		m.spawn(frame.Commands)
	}
}

const behaviorKinds = 5

// attachRandom gives g n distinct behaviors drawn from the stress set.
func attachRandom(g *scene.GameObject, n int, respawn func(c *scene.Commands)) {
	for _, kind := range rand.Perm(behaviorKinds)[:min(n, behaviorKinds)] {
		switch kind {
		case 0:
			scene.Attach(g, &behavior.Rotator{Rate: rand.Float32()})
		case 1:
			scene.Attach(g, &drifter{Velocity: mgl32.Vec3{rand.Float32() - 0.5, rand.Float32() - 0.5, rand.Float32() - 0.5}})
		case 2:
			scene.Attach(g, &bouncer{Extent: 50})
		case 3:
			scene.Attach(g, &mortal{Frames: 50 + rand.IntN(500), spawn: respawn})
		case 4:
			scene.AttachNew[behavior.PointLight](g)
		}
	}
}

// janitor prunes the lights of destroyed objects every Interval frames.
type janitor struct {
	scene.BaseBehavior
	Interval int64
	Pruned   int
}

func (j *janitor) RealUpdate(frame *scene.Frame) {
	if frame.Index%j.Interval == 0 {
		j.Pruned += j.World().PruneLights()
	}
}
