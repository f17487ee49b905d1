// Package patch provides drawable UI images: stretchable nine-patch images
// and plain fixed images behind one interface.
package patch

import (
	"image"
	"image/draw"
	"math"

	"github.com/srlehn/ninepatch/tile"
)

// Resizer scales the stretchable tiles of a nine-patch.
type Resizer = tile.Resizer

// Image is an image that can be rendered for a target size.
type Image interface {
	// Render returns the image for the given size in device pixels.
	// The returned Bitmap must not be modified.
	Render(size image.Point) (*Bitmap, error)
	// NaturalSize is the unscaled size in device pixels.
	NaturalSize() image.Point
	// Draw renders the image for r.Size() and draws it over dst at r.Min.
	Draw(dst draw.Image, r image.Rectangle) error
	Close() error
}

var (
	_ Image = (*NinePatch)(nil)
	_ Image = (*Fixed)(nil)
)

// Bitmap is a decoded image tagged with its device pixel density.
type Bitmap struct {
	image.Image
	// Density is the number of device pixels per logical pixel (>= 1).
	Density float64
}

// NewBitmap wraps img. Densities below 1 are treated as 1.
func NewBitmap(img image.Image, density float64) *Bitmap {
	return &Bitmap{Image: img, Density: normDensity(density)}
}

// LogicalSize is the pixel size divided by the density.
func (b *Bitmap) LogicalSize() image.Point {
	if b == nil || b.Image == nil {
		return image.Point{}
	}
	return toLogical(b.Bounds().Size(), b.Density)
}

// ValidDensity reports whether d is a finite density of at least 1.
func ValidDensity(d float64) bool {
	return d >= 1 && !math.IsInf(d, 0)
}

func normDensity(d float64) float64 {
	if !ValidDensity(d) {
		return 1
	}
	return d
}

func toDevice(p image.Point, density float64) image.Point {
	density = normDensity(density)
	return image.Point{
		X: int(math.Round(float64(p.X) * density)),
		Y: int(math.Round(float64(p.Y) * density)),
	}
}

func toLogical(p image.Point, density float64) image.Point {
	density = normDensity(density)
	return image.Point{
		X: int(math.Round(float64(p.X) / density)),
		Y: int(math.Round(float64(p.Y) / density)),
	}
}

// drawAt draws bmp over dst with its origin at pt.
func drawAt(dst draw.Image, pt image.Point, bmp *Bitmap) {
	b := bmp.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(b.Size())}
	draw.Draw(dst, r, bmp.Image, b.Min, draw.Over)
}
