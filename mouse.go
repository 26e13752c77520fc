package gofoot

import "github.com/hajimehoshi/ebiten/v2"

// MouseInfo is a snapshot of the cursor position and button states.
type MouseInfo struct {
	X, Y   int
	Left   bool
	Right  bool
	Middle bool
}

// Mouse returns the current cursor position and pressed buttons.
func Mouse() MouseInfo {
	x, y := ebiten.CursorPosition()
	return MouseInfo{
		X:      x,
		Y:      y,
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	}
}
