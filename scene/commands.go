package scene

import "sync"

// Commands buffers structural changes requested during a frame and applies
// them once the frame's passes are over, so no pass sees the object or
// behavior lists change under it.
type Commands struct {
	mu       sync.Mutex
	spawns   []spawnCommand
	destroys []*GameObject
	removes  []removeCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	name  string
	setup func(g *GameObject)
}

type removeCommand struct {
	object   *GameObject
	behavior Behavior
}

// Spawn queues the creation of a GameObject; setup, if non-nil, runs right
// after creation to attach behaviors.
func (c *Commands) Spawn(name string, setup func(g *GameObject)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spawns = append(c.spawns, spawnCommand{name: name, setup: setup})
}

// Destroy queues the destruction of g.
func (c *Commands) Destroy(g *GameObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroys = append(c.destroys, g)
}

// Remove queues the removal of b from g.
func (c *Commands) Remove(g *GameObject, b Behavior) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removes = append(c.removes, removeCommand{object: g, behavior: b})
}

// Defer queues fn to run after the other commands.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defers = append(c.defers, fn)
}

// Flush applies the buffered commands to w and resets the buffer. Destroys run
// first, then removals on surviving objects, then spawns, then deferred funcs.
func (c *Commands) Flush(w *World) {
	c.mu.Lock()
	spawns, destroys, removes, defers := c.spawns, c.destroys, c.removes, c.defers
	c.spawns, c.destroys, c.removes, c.defers = nil, nil, nil, nil
	c.mu.Unlock()

	for _, g := range destroys {
		if !g.Destroyed() {
			w.Destroy(g)
		}
	}

	for _, cmd := range removes {
		if !cmd.object.Destroyed() {
			cmd.object.Remove(cmd.behavior)
		}
	}

	for _, cmd := range spawns {
		g := w.NewGameObject(cmd.name)
		if cmd.setup != nil {
			cmd.setup(g)
		}
	}

	for _, fn := range defers {
		fn()
	}
}

// Len returns the number of buffered commands.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.spawns) + len(c.destroys) + len(c.removes) + len(c.defers)
}
