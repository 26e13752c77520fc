package gofoot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// whiteSubImage is the standard Ebitengine trick for drawing filled paths
// with DrawTriangles: a 1x1 white region sampled for every vertex.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Image is a drawable surface. It backs actor sprites and world
// backgrounds, and every draw method renders onto it. The underlying
// ebiten image is exposed through Surface for anything these methods
// don't cover.
type Image struct {
	surface *ebiten.Image

	// DrawingColor is used by draw methods when they are given a nil color.
	DrawingColor color.Color
	// DrawingWidth is the stroke width of outlines; 0 means fill.
	DrawingWidth float32
}

// NewImage creates a blank transparent image to draw on.
func NewImage(width, height int) *Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Image{
		surface:      ebiten.NewImage(width, height),
		DrawingColor: color.Black,
		DrawingWidth: 1,
	}
}

// FromSurface wraps an existing ebiten image.
func FromSurface(surface *ebiten.Image) *Image {
	return &Image{surface: surface, DrawingColor: color.Black, DrawingWidth: 1}
}

// imageExts are the file types LoadImage accepts.
var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}

// LoadImage reads an image from disk. Supported types are png, jpg and gif.
func LoadImage(path string) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !imageExts[ext] {
		return nil, fmt.Errorf("loading image %s: file type %q is not supported", path, ext)
	}
	surface, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return FromSurface(surface), nil
}

// Surface returns the underlying ebiten image for direct manipulation.
func (img *Image) Surface() *ebiten.Image {
	return img.surface
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.surface.Bounds().Dx()
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.surface.Bounds().Dy()
}

// Size returns the width and height in pixels.
func (img *Image) Size() (int, int) {
	return img.Width(), img.Height()
}

// Scale resizes the image to the given size.
func (img *Image) Scale(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := ebiten.NewImage(width, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(width)/float64(img.Width()),
		float64(height)/float64(img.Height()),
	)
	dst.DrawImage(img.surface, op)
	img.surface = dst
}

// ScaleBy resizes the image linearly by a factor.
func (img *Image) ScaleBy(factor float64) {
	img.Scale(int(float64(img.Width())*factor), int(float64(img.Height())*factor))
}

// Rotate rotates the image content by the given angle in degrees,
// growing the surface so nothing is clipped.
func (img *Image) Rotate(degrees float64) {
	rad := degrees * math.Pi / 180
	w := float64(img.Width())
	h := float64(img.Height())
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	nw := int(math.Ceil(w*cos + h*sin))
	nh := int(math.Ceil(w*sin + h*cos))

	dst := ebiten.NewImage(max(nw, 1), max(nh, 1))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rad)
	op.GeoM.Translate(float64(nw)/2, float64(nh)/2)
	dst.DrawImage(img.surface, op)
	img.surface = dst
}

// col resolves a possibly-nil color against the drawing color.
func (img *Image) col(c color.Color) color.Color {
	if c == nil {
		return img.DrawingColor
	}
	return c
}

// Fill fills the whole image. A nil color means the drawing color.
func (img *Image) Fill(c color.Color) {
	img.surface.Fill(img.col(c))
}

// DrawRect draws a rectangle. DrawingWidth 0 fills it, otherwise the
// outline is stroked.
func (img *Image) DrawRect(x, y, width, height int, c color.Color) {
	fx, fy, fw, fh := float32(x), float32(y), float32(width), float32(height)
	if img.DrawingWidth == 0 {
		vector.DrawFilledRect(img.surface, fx, fy, fw, fh, img.col(c), true)
		return
	}
	vector.StrokeRect(img.surface, fx, fy, fw, fh, img.DrawingWidth, img.col(c), true)
}

// DrawCircle draws a circle centered at (cx, cy).
func (img *Image) DrawCircle(cx, cy int, radius float64, c color.Color) {
	fx, fy, fr := float32(cx), float32(cy), float32(radius)
	if img.DrawingWidth == 0 {
		vector.DrawFilledCircle(img.surface, fx, fy, fr, img.col(c), true)
		return
	}
	vector.StrokeCircle(img.surface, fx, fy, fr, img.DrawingWidth, img.col(c), true)
}

// DrawLine draws a line between two points.
func (img *Image) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	width := img.DrawingWidth
	if width == 0 {
		width = 1
	}
	vector.StrokeLine(img.surface, float32(x0), float32(y0), float32(x1), float32(y1), width, img.col(c), true)
}

// DrawPolygon draws a closed polygon through the given points.
// DrawingWidth 0 fills it, otherwise the outline is stroked.
func (img *Image) DrawPolygon(points []image.Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	if img.DrawingWidth > 0 {
		prev := points[len(points)-1]
		for _, p := range points {
			img.DrawLine(prev.X, prev.Y, p.X, p.Y, c)
			prev = p
		}
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := img.col(c).RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.NonZero,
	}
	img.surface.DrawTriangles(vs, is, whiteSubImage, op)
}

// DrawImage draws another image onto this one at (x, y).
func (img *Image) DrawImage(other *Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	img.surface.DrawImage(other.surface, op)
}

// DrawText renders a string at (x, y) with the default face.
func (img *Image) DrawText(msg string, x, y int, c color.Color) {
	drawString(img.surface, msg, float64(x), float64(y), defaultFontSize, img.col(c))
}

// ColorAt returns the color of the pixel at (x, y).
func (img *Image) ColorAt(x, y int) color.Color {
	return img.surface.At(x, y)
}
