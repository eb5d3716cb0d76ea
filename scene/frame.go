package scene

import "github.com/plus3/mono/input"

// Frame is what every Update and RealUpdate call receives.
type Frame struct {
	DeltaTime float32
	Index     int64
	Input     *input.Sampler
	World     *World
	Commands  *Commands
}

func newFrame(dt float32, index int64, sampler *input.Sampler, world *World, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Index:     index,
		Input:     sampler,
		World:     world,
		Commands:  commands,
	}
}
