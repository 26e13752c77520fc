package gofoot

import (
	"bytes"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const defaultFontSize = 15

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// defaultFace returns a face of the embedded Go Regular font.
func defaultFace(size float64) text.Face {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// The font is compiled in; a decode failure is a build defect.
			panic("gofoot: decoding embedded font: " + err.Error())
		}
		fontSource = src
	})
	return &text.GoTextFace{Source: fontSource, Size: size}
}

// drawString renders msg onto dst at (x, y).
func drawString(dst *ebiten.Image, msg string, x, y float64, size float64, clr color.Color) {
	face := defaultFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, msg, face, op)
}

// Text is an actor that displays a string. Change it with SetMessage;
// the sprite re-renders automatically.
type Text struct {
	Actor

	message    string
	FontSize   float64
	Color      color.Color
	Background color.Color // nil means transparent
}

// NewText creates a text actor with the default face, size and color.
func NewText(message string) *Text {
	t := &Text{
		message:  message,
		FontSize: defaultFontSize,
		Color:    color.Black,
	}
	t.render()
	return t
}

// Message returns the displayed string.
func (t *Text) Message() string {
	return t.message
}

// SetMessage changes the displayed string and re-renders the sprite.
func (t *Text) SetMessage(message string) {
	t.message = message
	t.render()
}

// Render re-renders the sprite, picking up FontSize, Color and Background
// changes.
func (t *Text) Render() {
	t.render()
}

func (t *Text) render() {
	face := defaultFace(t.FontSize)
	w, h := text.Measure(t.message, face, t.FontSize*1.2)

	img := NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
	if t.Background != nil {
		img.Fill(t.Background)
	}
	clr := t.Color
	if clr == nil {
		clr = color.Black
	}
	drawString(img.surface, t.message, 0, 0, t.FontSize, clr)
	t.SetImage(img)
}
