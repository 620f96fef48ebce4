package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func pressed(codes ...sdl.Scancode) []uint8 {
	keys := make([]uint8, 512)
	for _, c := range codes {
		keys[c] = 1
	}
	return keys
}

func TestRawAxis(t *testing.T) {
	tests := []struct {
		name string
		keys []uint8
		want int
	}{
		{"none", pressed(), 0},
		{"right letter", pressed(sdl.SCANCODE_D), 1},
		{"right arrow", pressed(sdl.SCANCODE_RIGHT), 1},
		{"left", pressed(sdl.SCANCODE_A), -1},
		{"both cancel", pressed(sdl.SCANCODE_A, sdl.SCANCODE_RIGHT), 0},
		{"short state", []uint8{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rawAxis(tt.keys, keysRight, keysLeft); got != tt.want {
				t.Errorf("rawAxis = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyboardNext(t *testing.T) {
	keys := pressed(sdl.SCANCODE_W)
	k := NewKeyboard()
	k.state = func() []uint8 { return keys }

	var v float32
	for i := 0; i < 4; i++ {
		v = k.Next(0.125).Vertical
	}
	if v != 1 {
		t.Errorf("vertical after holding W = %v, want 1", v)
	}

	keys = pressed(sdl.SCANCODE_E)
	f := k.Next(0.25)
	if f.Vertical != 0.25 {
		t.Errorf("vertical after release = %v, want 0.25", f.Vertical)
	}
	if f.CameraForward.X <= 0 {
		t.Errorf("camera did not turn right: forward %v", f.CameraForward)
	}
}
