package gofoot

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is what the game loop runs: a World, or a user type embedding
// *World with its own per-frame Act.
type Scene interface {
	Act()
	world() *World
}

// World is the stage actors live on. Create one with NewWorld or
// NewGridWorld; creation makes it the current world so a following
// Start call runs it.
type World struct {
	widthCells  int
	heightCells int
	cellSize    int
	speed       int

	// Insertion order, so per-frame iteration and queries are deterministic.
	actors []Performer

	bgImage   *Image
	bgColor   color.Color
	tileBG    bool
	defaultBG bool

	// Composed frame, kept so ColorAt can read back pixels.
	frame *ebiten.Image
}

// NewWorld creates a pixel world of the given size and makes it current.
func NewWorld(width, height int) *World {
	return NewGridWorld(width, height, 1)
}

// NewGridWorld creates a world whose actors move in cells of cellSize
// pixels, and makes it current. A cellSize of 1 is a plain pixel world.
func NewGridWorld(width, height, cellSize int) *World {
	w := &World{
		widthCells:  width,
		heightCells: height,
		cellSize:    max(cellSize, 1),
		speed:       60,
		defaultBG:   true,
	}
	SetWorld(w)
	return w
}

func (w *World) world() *World { return w }

// Act runs once per frame before the actors and does nothing by default.
// Override it by embedding *World in your own scene type.
func (w *World) Act() {}

// Width returns the world width in pixels.
func (w *World) Width() int { return w.widthCells * w.cellSize }

// Height returns the world height in pixels.
func (w *World) Height() int { return w.heightCells * w.cellSize }

// CellSize returns the cell size in pixels.
func (w *World) CellSize() int { return w.cellSize }

// Speed returns the game speed in frames per second.
func (w *World) Speed() int { return w.speed }

// SetSpeed changes how many times per second the game loop runs.
func (w *World) SetSpeed(fps int) {
	w.speed = max(fps, 1)
	if CurrentWorld() == w {
		ebiten.SetTPS(w.speed)
	}
}

// Add puts actors into the world at their current positions.
func (w *World) Add(performers ...Performer) {
	for _, p := range performers {
		w.add(p)
	}
}

// AddAt puts an actor into the world at cell (x, y).
func (w *World) AddAt(p Performer, x, y int) {
	p.actor().SetLocation(x, y)
	w.add(p)
}

func (w *World) add(p Performer) {
	for _, q := range w.actors {
		if q.actor() == p.actor() {
			return
		}
	}
	// Grid worlds size actors to their cell, like the placeholder sprite.
	if w.cellSize > 1 {
		a := p.actor()
		if a.w == 0 && a.h == 0 && a.img == nil {
			a.w, a.h = w.cellSize, w.cellSize
		}
	}
	w.actors = append(w.actors, p)
}

// Remove takes an actor out of the world.
func (w *World) Remove(p Performer) {
	for i, q := range w.actors {
		if q.actor() == p.actor() {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			return
		}
	}
}

// All returns every performer in the world, in insertion order. Use the
// generic Objects function to filter by type.
func (w *World) All() []Performer {
	out := make([]Performer, len(w.actors))
	copy(out, w.actors)
	return out
}

// ShowText adds a Text actor displaying msg at cell (x, y).
func (w *World) ShowText(msg string, x, y int) *Text {
	t := NewText(msg)
	w.AddAt(t, x, y)
	return t
}

// SetBackgroundColor sets a solid background color.
func (w *World) SetBackgroundColor(c color.Color) {
	w.bgColor = c
	w.bgImage = nil
	w.defaultBG = false
}

// SetBackgroundImage sets the background. Images smaller than the world
// in a grid world are tiled per cell; otherwise the image is stretched.
func (w *World) SetBackgroundImage(img *Image) {
	w.bgImage = img
	w.bgColor = nil
	w.defaultBG = false
	w.tileBG = w.cellSize > 1
	if !w.tileBG {
		img.Scale(w.Width(), w.Height())
	} else {
		img.Scale(w.cellSize, w.cellSize)
	}
}

// SetBackground loads an image from disk and uses it as the background.
func (w *World) SetBackground(path string) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	w.SetBackgroundImage(img)
	return nil
}

// generateDefaultBackground draws the stock backdrop: white with a
// diagonal line pattern, or cell grid lines for grid worlds.
func (w *World) generateDefaultBackground() *Image {
	img := NewImage(w.Width(), w.Height())
	img.Fill(color.White)
	line := color.RGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff}
	if w.cellSize == 1 {
		width, height := w.Width(), w.Height()
		for i := 0; i < width; i += 30 {
			img.DrawLine(i, 0, width, height-i, line)
		}
		for i := 0; i < height; i += 30 {
			img.DrawLine(0, i, width-i, height, line)
		}
	} else {
		for x := 0; x <= w.Width(); x += w.cellSize {
			img.DrawLine(x, 0, x, w.Height(), line)
		}
		for y := 0; y <= w.Height(); y += w.cellSize {
			img.DrawLine(0, y, w.Width(), y, line)
		}
	}
	return img
}

// ColorAt returns the color of the composed frame at pixel (x, y).
func (w *World) ColorAt(x, y int) color.Color {
	if w.frame == nil {
		return color.RGBA{}
	}
	return w.frame.At(x, y)
}

// draw composes the frame (background, then actors in insertion order)
// and blits it to the screen.
func (w *World) draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImage(max(w.Width(), 1), max(w.Height(), 1))
	}

	switch {
	case w.bgColor != nil:
		w.frame.Fill(w.bgColor)
	case w.bgImage != nil && w.tileBG:
		for x := 0; x < w.Width(); x += w.cellSize {
			for y := 0; y < w.Height(); y += w.cellSize {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(y))
				w.frame.DrawImage(w.bgImage.surface, op)
			}
		}
	case w.bgImage != nil:
		w.frame.DrawImage(w.bgImage.surface, nil)
	default:
		if w.defaultBG {
			w.bgImage = w.generateDefaultBackground()
			w.defaultBG = false
			w.frame.DrawImage(w.bgImage.surface, nil)
		}
	}

	for _, p := range w.actors {
		w.drawActor(p.actor())
	}

	screen.DrawImage(w.frame, nil)
}

// drawActor renders one actor with its rotation applied about the sprite
// center.
func (w *World) drawActor(a *Actor) {
	a.ensureImage()
	b := a.bounds(w)
	iw, ih := a.size()

	op := &ebiten.DrawImageOptions{}
	if a.rotation != 0 {
		op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		op.GeoM.Rotate(a.rotation * math.Pi / 180)
		op.GeoM.Translate(float64(iw)/2, float64(ih)/2)
	}
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	w.frame.DrawImage(a.img.surface, op)
}
