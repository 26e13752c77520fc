package gofoot

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultActorSize is the sprite size for actors that never set an image,
// in pixel worlds. Grid worlds size actors to the cell instead.
const defaultActorSize = 50

// Performer is what a World holds: anything embedding Actor. User types
// override Act to run game logic once per frame.
type Performer interface {
	Act()
	actor() *Actor
}

// Actor is a game object with a position, a sprite and a per-frame Act
// hook. Embed it in your own struct and override Act:
//
//	type Crab struct {
//		gofoot.Actor
//	}
//
//	func (c *Crab) Act() { c.X++ }
//
// X and Y are in world cells; for pixel worlds (CellSize 1) a cell is a
// pixel.
type Actor struct {
	X, Y int

	img      *Image
	rotation float64
	// Pending sprite size, applied when the default sprite materializes.
	w, h int
}

func (a *Actor) actor() *Actor { return a }

// Act runs once per frame and does nothing by default. Override it in
// the embedding type.
func (a *Actor) Act() {}

// SetLocation moves the actor to cell (x, y).
func (a *Actor) SetLocation(x, y int) {
	a.X = x
	a.Y = y
}

// Rotation returns the actor's rotation in degrees, in [0, 360).
func (a *Actor) Rotation() float64 {
	return a.rotation
}

// SetRotation sets the actor's rotation in degrees; any value is
// normalized into [0, 360).
func (a *Actor) SetRotation(degrees float64) {
	a.rotation = normalizeAngle(degrees)
}

// Rotate turns the actor by the given angle in degrees.
func (a *Actor) Rotate(degrees float64) {
	a.SetRotation(a.rotation + degrees)
}

// SetImage replaces the actor's sprite.
func (a *Actor) SetImage(img *Image) {
	a.img = img
	if img != nil {
		a.w, a.h = img.Size()
	}
}

// LoadImage replaces the actor's sprite with an image loaded from disk.
func (a *Actor) LoadImage(path string) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	a.SetImage(img)
	return nil
}

// Image returns the actor's sprite, materializing the default placeholder
// if none was set.
func (a *Actor) Image() *Image {
	a.ensureImage()
	return a.img
}

// Scale resizes the actor's sprite.
func (a *Actor) Scale(width, height int) {
	if a.img != nil {
		a.img.Scale(width, height)
	}
	a.w, a.h = width, height
}

// size returns the sprite dimensions without materializing the default
// sprite, so geometry queries stay cheap and test-friendly.
func (a *Actor) size() (int, int) {
	if a.img != nil {
		return a.img.Size()
	}
	if a.w > 0 && a.h > 0 {
		return a.w, a.h
	}
	return defaultActorSize, defaultActorSize
}

// ensureImage builds the placeholder sprite for actors that never set one:
// a translucent box with a border, sized per size().
func (a *Actor) ensureImage() {
	if a.img != nil {
		return
	}
	w, h := a.size()
	img := NewImage(w, h)
	img.Fill(color.RGBA{R: 0x4a, G: 0x8f, B: 0x5c, A: 0xff})
	img.DrawingWidth = 2
	img.DrawRect(1, 1, w-2, h-2, color.RGBA{R: 0x1e, G: 0x3a, B: 0x26, A: 0xff})
	a.img = img
}

// World returns the world the actor lives in. It panics if no world has
// been created yet, mirroring how every other per-frame call assumes a
// running game.
func (a *Actor) World() *World {
	w := CurrentWorld()
	if w == nil {
		panic("gofoot: create a World before using actors")
	}
	return w
}

// bounds returns the actor's screen-pixel rectangle.
func (a *Actor) bounds(w *World) image.Rectangle {
	iw, ih := a.size()
	return pixelBounds(a.X, a.Y, w.cellSize, iw, ih)
}

// center returns the actor's center point in screen pixels.
func (a *Actor) center(w *World) (float64, float64) {
	b := a.bounds(w)
	return float64(b.Min.X+b.Max.X) / 2, float64(b.Min.Y+b.Max.Y) / 2
}

// Touching reports whether this actor's sprite rectangle overlaps the
// other actor's.
func (a *Actor) Touching(other Performer) bool {
	w := a.World()
	o := other.actor()
	if o == a {
		return false
	}
	return a.bounds(w).Overlaps(o.bounds(w))
}

// TurnTowards rotates the actor to face another actor.
func (a *Actor) TurnTowards(other Performer) {
	w := a.World()
	x0, y0 := a.center(w)
	x1, y1 := other.actor().center(w)
	a.SetRotation(angleTo(x0, y0, x1, y1))
}

// AtEdge reports whether any part of the actor's sprite is outside the
// world.
func (a *Actor) AtEdge() bool {
	w := a.World()
	b := a.bounds(w)
	return b.Min.X < 0 || b.Min.Y < 0 || b.Max.X > w.Width() || b.Max.Y > w.Height()
}

// MouseOver reports whether the cursor is over the actor's sprite.
func (a *Actor) MouseOver() bool {
	w := a.World()
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(a.bounds(w))
}

// Clicked reports whether a mouse button was released over the actor this
// frame.
func (a *Actor) Clicked() bool {
	if !a.MouseOver() {
		return false
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle)
}

// Objects returns every performer of type T in the world.
func Objects[T Performer](w *World) []T {
	var out []T
	for _, p := range w.actors {
		if t, ok := p.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Touching reports whether p overlaps any performer of type T.
func Touching[T Performer](p Performer) bool {
	_, ok := Intersecting[T](p)
	return ok
}

// Intersecting returns the first performer of type T whose sprite overlaps
// p's, if any.
func Intersecting[T Performer](p Performer) (T, bool) {
	a := p.actor()
	w := a.World()
	for _, q := range w.actors {
		t, ok := q.(T)
		if !ok || q.actor() == a {
			continue
		}
		if a.bounds(w).Overlaps(q.actor().bounds(w)) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Closest returns the performer of type T nearest to p, if any.
func Closest[T Performer](p Performer) (T, bool) {
	a := p.actor()
	w := a.World()
	x0, y0 := a.center(w)

	var best T
	found := false
	bestDist := math.Inf(1)
	for _, q := range w.actors {
		t, ok := q.(T)
		if !ok || q.actor() == a {
			continue
		}
		x1, y1 := q.actor().center(w)
		if d := distance(x0, y0, x1, y1); d < bestDist {
			bestDist = d
			best = t
			found = true
		}
	}
	return best, found
}
