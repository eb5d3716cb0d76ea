package behavior

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/debugui"
	"github.com/plus3/mono/scene"
)

// Rotator spins its owner about Y by Rate degrees every Update, independent
// of frame time.
type Rotator struct {
	scene.BaseBehavior
	Rate float32
}

func (r *Rotator) Update(*scene.Frame) {
	t := r.Transform()
	if t == nil {
		return
	}
	t.Rotation = t.Rotation.Add(mgl32.Vec3{0, r.Rate, 0})
}

func (r *Rotator) DebugDraw() {
	debugui.Float("rate", &r.Rate)
}
