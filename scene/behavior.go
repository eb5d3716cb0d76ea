package scene

import "weak"

// State is the lifecycle stage of a behavior.
type State int

const (
	StateUnattached State = iota
	StateStarted
	StateActive
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateStarted:
		return "started"
	case StateActive:
		return "active"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Behavior is a unit of per-object logic attached to a GameObject.
//
// Start runs exactly once, right after attachment. Update runs in the variable
// pass and RealUpdate in the fixed pass of every frame while the behavior is
// active. DebugDraw runs in the debug pass when a DebugHost is installed.
// Destroy releases resources the behavior owns; it runs once, when the behavior
// is removed or its owner destroyed.
//
// Implementations embed BaseBehavior and override the methods they need.
type Behavior interface {
	Start()
	Update(frame *Frame)
	RealUpdate(frame *Frame)
	DebugDraw()
	Destroy()

	GameObject() *GameObject
	Enabled() bool
	SetEnabled(enabled bool)

	base() *BaseBehavior
}

// BaseBehavior carries the bookkeeping every behavior needs: the back-reference
// to its owner, the lifecycle state and the enable flag. The owner reference is
// weak; the GameObject owns its behaviors, never the other way round.
type BaseBehavior struct {
	owner    weak.Pointer[GameObject]
	ownerID  ObjectID
	state    State
	disabled bool
}

func (b *BaseBehavior) base() *BaseBehavior { return b }

func (b *BaseBehavior) Start()            {}
func (b *BaseBehavior) Update(*Frame)     {}
func (b *BaseBehavior) RealUpdate(*Frame) {}
func (b *BaseBehavior) DebugDraw()        {}
func (b *BaseBehavior) Destroy()          {}

// GameObject returns the owner. It panics with ErrNotYetStarted when the
// behavior has not been attached, and returns nil once the owner is gone.
func (b *BaseBehavior) GameObject() *GameObject {
	if b.state == StateUnattached {
		panic(ErrNotYetStarted)
	}
	return b.owner.Value()
}

// OwnerID returns the id of the owner, or 0 before attachment.
func (b *BaseBehavior) OwnerID() ObjectID {
	return b.ownerID
}

// Transform returns the owner's spatial state.
func (b *BaseBehavior) Transform() *Transform {
	g := b.GameObject()
	if g == nil {
		return nil
	}
	return g.Transform()
}

// World returns the world the owner lives in.
func (b *BaseBehavior) World() *World {
	g := b.GameObject()
	if g == nil {
		return nil
	}
	return g.World()
}

func (b *BaseBehavior) Enabled() bool {
	return !b.disabled
}

func (b *BaseBehavior) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// StateOf returns the lifecycle state of b.
func StateOf(b Behavior) State {
	return b.base().state
}

func isActive(b Behavior) bool {
	base := b.base()
	return base.state == StateActive && !base.disabled
}

func destroyBehavior(b Behavior) {
	base := b.base()
	if base.state == StateDestroyed {
		return
	}
	base.state = StateDestroyed
	b.Destroy()
}
