package gofoot

import (
	"image"
	"math"
)

// normalizeAngle maps an angle in degrees into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// angleTo returns the angle in degrees, clockwise from straight up, of the
// vector from (x0, y0) to (x1, y1) in screen coordinates (y grows down).
func angleTo(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return normalizeAngle(math.Atan2(dx, -dy) * 180 / math.Pi)
}

// cellOffset centers an image of the given dimension inside a grid cell.
// Pixel worlds (cellSize 1) have no offset.
func cellOffset(cellSize, imgDim int) int {
	if cellSize <= 1 {
		return 0
	}
	return (cellSize - imgDim) / 2
}

// pixelBounds returns the screen-pixel rectangle of an actor-sized image
// at cell position (x, y).
func pixelBounds(x, y, cellSize, w, h int) image.Rectangle {
	px := x*cellSize + cellOffset(cellSize, w)
	py := y*cellSize + cellOffset(cellSize, h)
	return image.Rect(px, py, px+w, py+h)
}

// distance returns the Euclidean distance between two points.
func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
