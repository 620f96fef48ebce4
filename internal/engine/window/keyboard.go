package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-locomotion/internal/engine/input"
)

// Key bindings. Each axis reads any of its keys.
var (
	keysRight     = []sdl.Scancode{sdl.SCANCODE_D, sdl.SCANCODE_RIGHT}
	keysLeft      = []sdl.Scancode{sdl.SCANCODE_A, sdl.SCANCODE_LEFT}
	keysForward   = []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_UP}
	keysBack      = []sdl.Scancode{sdl.SCANCODE_S, sdl.SCANCODE_DOWN}
	keysTurnLeft  = []sdl.Scancode{sdl.SCANCODE_Q}
	keysTurnRight = []sdl.Scancode{sdl.SCANCODE_E}
)

// Keyboard is an input.Source reading the SDL key state. Q and E orbit the
// camera, which turns the movement basis.
type Keyboard struct {
	horizontal *input.Axis
	vertical   *input.Axis
	camera     input.Camera
	turnSpeed  float32 // radians per second

	state func() []uint8
}

// NewKeyboard creates a keyboard source with default axis smoothing.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		horizontal: input.NewAxis(),
		vertical:   input.NewAxis(),
		turnSpeed:  1.5,
		state:      sdl.GetKeyboardState,
	}
}

// Next implements input.Source. Poll must run first in the same frame so
// the key state is current.
func (k *Keyboard) Next(dt float32) input.Frame {
	keys := k.state()

	k.camera.Yaw += float32(rawAxis(keys, keysTurnRight, keysTurnLeft)) * k.turnSpeed * dt
	forward, right := k.camera.Basis()

	return input.Frame{
		Horizontal:    k.horizontal.Update(rawAxis(keys, keysRight, keysLeft), dt),
		Vertical:      k.vertical.Update(rawAxis(keys, keysForward, keysBack), dt),
		CameraForward: forward,
		CameraRight:   right,
	}
}

// rawAxis returns 1, -1 or 0 for the pressed direction. Opposite keys cancel.
func rawAxis(keys []uint8, positive, negative []sdl.Scancode) int {
	v := 0
	if anyPressed(keys, positive) {
		v++
	}
	if anyPressed(keys, negative) {
		v--
	}
	return v
}

func anyPressed(keys []uint8, codes []sdl.Scancode) bool {
	for _, c := range codes {
		if int(c) < len(keys) && keys[c] != 0 {
			return true
		}
	}
	return false
}
