package scene_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/scene"
)

// journal collects lifecycle calls across behaviors so tests can assert on
// global ordering.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

type probe struct {
	scene.BaseBehavior
	tag string
	log *journal

	onStart  func(p *probe)
	onUpdate func(p *probe, frame *scene.Frame)
}

func newProbe(tag string, log *journal) *probe {
	return &probe{tag: tag, log: log}
}

func (p *probe) Start() {
	p.log.add("%s.start", p.tag)
	if p.onStart != nil {
		p.onStart(p)
	}
}

func (p *probe) Update(frame *scene.Frame) {
	p.log.add("%s.update", p.tag)
	if p.onUpdate != nil {
		p.onUpdate(p, frame)
	}
}

func (p *probe) RealUpdate(*scene.Frame) {
	p.log.add("%s.real", p.tag)
}

func (p *probe) DebugDraw() {
	p.log.add("%s.debug", p.tag)
}

func (p *probe) Destroy() {
	p.log.add("%s.destroy", p.tag)
}

type counter struct {
	scene.BaseBehavior
	updates int
	reals   int
}

func (c *counter) Update(*scene.Frame)     { c.updates++ }
func (c *counter) RealUpdate(*scene.Frame) { c.reals++ }

type testLight struct {
	scene.BaseBehavior
	kind scene.LightType
}

func (l *testLight) LightType() scene.LightType { return l.kind }

type testCamera struct {
	scene.BaseBehavior
}

func (c *testCamera) Start() {
	c.World().SetMainCamera(c)
}

func (c *testCamera) View() mgl32.Mat4       { return mgl32.Ident4() }
func (c *testCamera) Projection() mgl32.Mat4 { return mgl32.Ident4() }
