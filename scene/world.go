package scene

import (
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"github.com/plus3/mono/config"
	"go.uber.org/zap"
)

// World is the registry a frame loop runs over: the live GameObjects in
// creation order, the live lights in registration order, the main camera and
// the shared settings.
//
// A World is constructed explicitly and handed to the scheduler; behaviors reach
// it through their owner. Registry mutations are serialized by a mutex so a
// parallel Update pass may spawn objects, but traversals always run over a
// snapshot and only see new objects from the next pass on.
type World struct {
	mu sync.Mutex

	objects []*GameObject
	index   *intmap.Map[ObjectID, *GameObject]
	lights  []Light

	mainCamera  Camera
	mouseLocked bool

	settings config.Settings
	logger   *zap.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for registry events.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithSettings replaces the default settings.
func WithSettings(settings config.Settings) Option {
	return func(w *World) {
		w.settings = settings
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		index:    intmap.New[ObjectID, *GameObject](64),
		settings: config.Defaults(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.mouseLocked = w.settings.Input.LockMouse
	return w
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.logger
}

// Settings returns the world's settings.
func (w *World) Settings() *config.Settings {
	return &w.settings
}

// NewGameObject creates a GameObject with a single Transform at the origin
// and registers it.
func (w *World) NewGameObject(name string) *GameObject {
	g := newGameObject(w, name)
	w.RegisterObject(g)
	Attach(g, NewTransform(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))

	w.logger.Debug("game object created", zap.String("name", name), zap.Uint64("id", uint64(g.ID)))
	return g
}

// RegisterObject appends g to the object list. NewGameObject calls it.
func (w *World) RegisterObject(g *GameObject) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if g.world == nil {
		g.world = w
	}
	w.objects = append(w.objects, g)
	w.index.Put(g.ID, g)
}

// Destroy unregisters g and destroys every behavior it owns, in attachment
// order. Lights owned by g stay in the light list until PruneLights. If g owns
// the main camera the slot is emptied; no other camera is promoted.
func (w *World) Destroy(g *GameObject) {
	w.mu.Lock()
	if i := slices.Index(w.objects, g); i >= 0 {
		w.objects = append(w.objects[:i:i], w.objects[i+1:]...)
	}
	w.index.Del(g.ID)
	if w.mainCamera != nil && w.mainCamera.base().ownerID == g.ID {
		w.mainCamera = nil
	}
	w.mu.Unlock()

	g.destroy()
	w.logger.Debug("game object destroyed", zap.String("name", g.Name), zap.Uint64("id", uint64(g.ID)))
}

// Clear destroys every object. Used at teardown.
func (w *World) Clear() {
	for _, g := range w.Objects() {
		w.Destroy(g)
	}
	w.mu.Lock()
	w.lights = nil
	w.mu.Unlock()
}

// Objects returns a snapshot of the live objects in creation order.
func (w *World) Objects() []*GameObject {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.objects[:len(w.objects):len(w.objects)]
}

// FindByID returns the live object with the given id.
func (w *World) FindByID(id ObjectID) (*GameObject, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index.Get(id)
}

// FindByName returns the first live object with the given name.
func (w *World) FindByName(name string) (*GameObject, bool) {
	for _, g := range w.Objects() {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// RegisterLight appends l to the light list.
func (w *World) RegisterLight(l Light) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lights = append(w.lights, l)
}

// UnregisterLight removes l from the light list.
func (w *World) UnregisterLight(l Light) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := slices.Index(w.lights, l)
	if i < 0 {
		return false
	}
	w.lights = append(w.lights[:i:i], w.lights[i+1:]...)
	return true
}

// PruneLights drops lights whose behavior has been destroyed and returns how
// many were removed.
func (w *World) PruneLights() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	before := len(w.lights)
	w.lights = slices.DeleteFunc(slices.Clone(w.lights), func(l Light) bool {
		return StateOf(l) == StateDestroyed
	})

	pruned := before - len(w.lights)
	if pruned > 0 {
		w.logger.Info("pruned destroyed lights", zap.Int("count", pruned))
	}
	return pruned
}

// Lights returns a snapshot of the registered lights in registration order.
func (w *World) Lights() []Light {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lights[:len(w.lights):len(w.lights)]
}

// CountLightsOfType returns how many registered lights have type t.
func (w *World) CountLightsOfType(t LightType) int {
	n := 0
	for _, l := range w.Lights() {
		if l.LightType() == t {
			n++
		}
	}
	return n
}

// LightSlot returns the number of lights of l's type registered before l, which
// is the index l occupies in its shader array. It is derived from the current
// registry order on every call, so it shifts when earlier lights come or go.
// It returns -1 when l is not registered.
func (w *World) LightSlot(l Light) int {
	slot := 0
	for _, other := range w.Lights() {
		if other == l {
			return slot
		}
		if other.LightType() == l.LightType() {
			slot++
		}
	}
	return -1
}

// SetMainCamera binds c as the main camera unless one is already bound. It
// reports whether c became the main camera.
//
// The binding is never handed to another camera. The one exception to its
// permanence is Destroy: destroying the owner of the main camera leaves the
// slot empty so that a later SetMainCamera (or a newly started camera) can
// claim it instead of the world holding a destroyed camera.
func (w *World) SetMainCamera(c Camera) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.mainCamera != nil {
		return false
	}
	w.mainCamera = c
	return true
}

// MainCamera returns the bound main camera, or nil.
func (w *World) MainCamera() Camera {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mainCamera
}

func (w *World) MouseLocked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mouseLocked
}

func (w *World) SetMouseLocked(locked bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mouseLocked = locked
}
