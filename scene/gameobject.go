package scene

import (
	"fmt"
	"sync/atomic"
	"weak"
)

// ObjectID identifies a GameObject for the lifetime of the process. Ids are
// handed out in increasing order starting at 1 and never reused; 0 means none.
type ObjectID uint64

var lastObjectID atomic.Uint64

func nextObjectID() ObjectID {
	return ObjectID(lastObjectID.Add(1))
}

// GameObject is an identity plus an ordered list of owned behaviors.
// Attachment order is preserved and is the order behaviors run in.
type GameObject struct {
	ID      ObjectID
	Name    string
	Enabled bool

	world     *World
	behaviors []Behavior
	transform *Transform
	destroyed bool
}

func newGameObject(w *World, name string) *GameObject {
	return &GameObject{
		ID:      nextObjectID(),
		Name:    name,
		Enabled: true,
		world:   w,
	}
}

// World returns the world the object is registered in.
func (g *GameObject) World() *World {
	return g.world
}

// Transform returns the spatial state attached by the factory, or nil if it
// has been removed.
func (g *GameObject) Transform() *Transform {
	return g.transform
}

// Behaviors returns the attached behaviors in attachment order. The returned
// slice must not be modified.
func (g *GameObject) Behaviors() []Behavior {
	return g.behaviors
}

// Destroyed reports whether the object has been torn down.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) String() string {
	return fmt.Sprintf("%s#%d", g.Name, g.ID)
}

// Attach takes ownership of a caller-constructed behavior, binds it to g,
// appends it and runs its Start. The behavior is active when Attach returns.
func Attach[T Behavior](g *GameObject, b T) T {
	g.attach(b)
	return b
}

// AttachNew constructs a zero T, then attaches it as Attach does.
//
//	rot := scene.AttachNew[behavior.Rotator](obj)
func AttachNew[T any, PT interface {
	*T
	Behavior
}](g *GameObject) PT {
	b := PT(new(T))
	g.attach(b)
	return b
}

func (g *GameObject) attach(b Behavior) {
	if g.destroyed {
		panic(fmt.Errorf("attach %T to %s: %w", b, g, ErrObjectDestroyed))
	}

	base := b.base()
	if base.state != StateUnattached {
		panic(fmt.Errorf("attach %T to %s: %w", b, g, ErrAlreadyAttached))
	}

	base.owner = weak.Make(g)
	base.ownerID = g.ID
	base.state = StateStarted

	if t, ok := b.(*Transform); ok && g.transform == nil {
		g.transform = t
	}

	// Appending never disturbs a pass ranging over the previous slice header.
	g.behaviors = append(g.behaviors, b)

	b.Start()
	if base.state == StateStarted {
		base.state = StateActive
	}
}

// GetComponent returns the first attached behavior assignable to T, in
// attachment order. The boolean is false when there is none.
func GetComponent[T any](g *GameObject) (T, bool) {
	for _, b := range g.behaviors {
		if t, ok := b.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// GetComponents returns every attached behavior assignable to T, in attachment order.
func GetComponents[T any](g *GameObject) []T {
	var out []T
	for _, b := range g.behaviors {
		if t, ok := b.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// RemoveComponent detaches and destroys the first behavior assignable to T.
// It reports whether anything was removed.
func RemoveComponent[T any](g *GameObject) bool {
	for i, b := range g.behaviors {
		if _, ok := b.(T); ok {
			g.removeAt(i)
			return true
		}
	}
	return false
}

// Remove detaches and destroys b if it is attached to g.
func (g *GameObject) Remove(b Behavior) bool {
	for i, attached := range g.behaviors {
		if attached == b {
			g.removeAt(i)
			return true
		}
	}
	return false
}

func (g *GameObject) removeAt(i int) {
	b := g.behaviors[i]

	// Copy instead of shifting in place so an in-flight pass keeps its view.
	g.behaviors = append(g.behaviors[:i:i], g.behaviors[i+1:]...)

	if t, ok := b.(*Transform); ok && t == g.transform {
		g.transform = nil
	}
	destroyBehavior(b)
}

func (g *GameObject) destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	for _, b := range g.behaviors {
		destroyBehavior(b)
	}
	g.behaviors = nil
	g.transform = nil
}

func (g *GameObject) update(frame *Frame) {
	if !g.Enabled {
		return
	}
	for _, b := range g.behaviors {
		if isActive(b) {
			b.Update(frame)
		}
	}
}

func (g *GameObject) spatialUpdate(frame *Frame) {
	if !g.Enabled {
		return
	}
	for _, b := range g.behaviors {
		if t, ok := b.(*Transform); ok && isActive(t) {
			t.RealUpdate(frame)
		}
	}
}

func (g *GameObject) realUpdate(frame *Frame) {
	if !g.Enabled {
		return
	}
	for _, b := range g.behaviors {
		if _, ok := b.(*Transform); ok {
			continue
		}
		if isActive(b) {
			b.RealUpdate(frame)
		}
	}
}
