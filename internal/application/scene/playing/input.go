package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/system"
)

// InputSource yields the input for the next frame. The autopilot and the
// local keyboard/mouse both satisfy it.
type InputSource interface {
	Next(snap session.Snapshot) system.InputState
}

// KeyboardMouse polls ebiten for WASD/arrow movement, mouse aim, left-click
// or space to fire and R to restart.
type KeyboardMouse struct {
	// screen pixels to field units
	scaleX float64
	scaleY float64
}

// NewKeyboardMouse creates an input source for a field drawn at screenW x screenH
func NewKeyboardMouse(fieldW, fieldH float64, screenW, screenH int) *KeyboardMouse {
	return &KeyboardMouse{
		scaleX: fieldW / float64(screenW),
		scaleY: fieldH / float64(screenH),
	}
}

// Next samples the devices
func (k *KeyboardMouse) Next(_ session.Snapshot) system.InputState {
	mx, my := ebiten.CursorPosition()
	return system.InputState{
		Up:      anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:    anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		AimX:    float64(mx) * k.scaleX,
		AimY:    float64(my) * k.scaleY,
		Fire:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
