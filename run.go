package gofoot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// The current scene. The game loop runs on a single goroutine, like the
// ebiten callbacks that read it.
var (
	current  Scene
	stopping bool
)

// SetWorld changes the scene the game loop runs. Use it to switch worlds
// mid-game or to install a custom scene type embedding *World.
func SetWorld(s Scene) {
	current = s
}

// CurrentWorld returns the world most recently created or set, or nil.
func CurrentWorld() *World {
	if current == nil {
		return nil
	}
	return current.world()
}

// SetTitle sets the window title.
func SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetIcon sets the window icon from an image file.
func SetIcon(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loading icon: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding icon %s: %w", path, err)
	}
	ebiten.SetWindowIcon([]image.Image{img})
	return nil
}

// ColorAt returns the color of the current world's last composed frame at
// pixel (x, y).
func ColorAt(x, y int) color.Color {
	w := CurrentWorld()
	if w == nil {
		panic("gofoot: create a World before calling ColorAt")
	}
	return w.ColorAt(x, y)
}

// Stop makes Start return cleanly at the end of the current frame.
func Stop() {
	stopping = true
}

// Start opens the window and runs the game loop on the current world
// until the window is closed or Stop is called. Each frame runs the
// scene's Act, then every actor's Act in insertion order, then renders.
func Start() error {
	if current == nil {
		return errors.New("gofoot: create a World before calling Start")
	}
	stopping = false

	w := current.world()
	ebiten.SetWindowSize(w.Width(), w.Height())
	ebiten.SetTPS(w.speed)

	if err := ebiten.RunGame(&game{}); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

type game struct{}

func (g *game) Update() error {
	if stopping {
		return ebiten.Termination
	}
	s := current
	s.Act()
	// Snapshot so actors may add or remove others while acting.
	for _, p := range s.world().All() {
		p.Act()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	current.world().draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := current.world()
	return w.Width(), w.Height()
}
