package gofoot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{720.5, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeAngle(tt.in), 1e-9, "normalizeAngle(%v)", tt.in)
	}
}

func TestAngleTo(t *testing.T) {
	// Screen coordinates: y grows down, angles clockwise from straight up.
	assert.InDelta(t, 0, angleTo(0, 0, 0, -10), 1e-9, "up")
	assert.InDelta(t, 90, angleTo(0, 0, 10, 0), 1e-9, "right")
	assert.InDelta(t, 180, angleTo(0, 0, 0, 10), 1e-9, "down")
	assert.InDelta(t, 270, angleTo(0, 0, -10, 0), 1e-9, "left")
	assert.InDelta(t, 45, angleTo(0, 0, 10, -10), 1e-9, "up-right")
}

func TestCellOffset(t *testing.T) {
	assert.Equal(t, 0, cellOffset(1, 50), "pixel world has no offset")
	assert.Equal(t, 7, cellOffset(64, 50), "centered in a 64px cell")
	assert.Equal(t, 0, cellOffset(64, 64), "exact fit")
	assert.Equal(t, -8, cellOffset(48, 64), "oversized image hangs over")
}

func TestPixelBounds(t *testing.T) {
	// Pixel world: cell position is the pixel position.
	assert.Equal(t, image.Rect(10, 20, 60, 70), pixelBounds(10, 20, 1, 50, 50))

	// Grid world: position scales by cell size, image centered in cell.
	assert.Equal(t, image.Rect(135, 71, 185, 121), pixelBounds(2, 1, 64, 50, 50))
}

func TestRotationNormalized(t *testing.T) {
	var a Actor
	a.Rotate(400)
	assert.InDelta(t, 40, a.Rotation(), 1e-9)
	a.SetRotation(-30)
	assert.InDelta(t, 330, a.Rotation(), 1e-9)
}
