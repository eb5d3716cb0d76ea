package render

import (
	"maps"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformMap is an in-memory Program that records every uniform set on it.
// The wireframe device uses it for its programs, and tests use it to inspect
// what a material or light wrote.
type UniformMap struct {
	mu     sync.Mutex
	name   string
	uses   int
	values map[string]any
}

// NewUniformMap returns an empty recorder.
func NewUniformMap(name string) *UniformMap {
	return &UniformMap{name: name, values: map[string]any{}}
}

func (u *UniformMap) Name() string { return u.name }

func (u *UniformMap) Use() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.uses++
}

func (u *UniformMap) Release() {
	u.mu.Lock()
	defer u.mu.Unlock()
	clear(u.values)
}

func (u *UniformMap) set(name string, value any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.values[name] = value
}

func (u *UniformMap) SetBool(name string, value bool)       { u.set(name, value) }
func (u *UniformMap) SetInt(name string, value int32)       { u.set(name, value) }
func (u *UniformMap) SetFloat(name string, value float32)   { u.set(name, value) }
func (u *UniformMap) SetVec3(name string, value mgl32.Vec3) { u.set(name, value) }
func (u *UniformMap) SetMat4(name string, value mgl32.Mat4) { u.set(name, value) }

// Uses returns how many times Use was called.
func (u *UniformMap) Uses() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uses
}

// Get returns the last value set under name.
func (u *UniformMap) Get(name string) (any, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.values[name]
	return v, ok
}

// Vec3 returns the vector set under name, or the zero vector.
func (u *UniformMap) Vec3(name string) mgl32.Vec3 {
	v, _ := u.Get(name)
	vec, _ := v.(mgl32.Vec3)
	return vec
}

// Mat4 returns the matrix set under name, or the zero matrix.
func (u *UniformMap) Mat4(name string) mgl32.Mat4 {
	v, _ := u.Get(name)
	m, _ := v.(mgl32.Mat4)
	return m
}

// Names returns the recorded uniform names, sorted.
func (u *UniformMap) Names() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Sorted(maps.Keys(u.values))
}
