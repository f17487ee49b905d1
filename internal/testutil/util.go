// Package testutil builds synthetic nine-patch images for tests.
package testutil

import (
	"image"
	"image/color"
)

var (
	Marker      = color.NRGBA{A: 255}
	Transparent = color.NRGBA{}
)

// Img wraps an image.NRGBA with mutators for creating mock nine-patch images.
type Img struct {
	*image.NRGBA
}

// NewImg allocates an Img of the given total size (border included).
func NewImg(size image.Point) *Img {
	return &Img{
		NRGBA: image.NewNRGBA(image.Rectangle{Max: size}),
	}
}

// NewInterior allocates an Img whose interior has the given size and fills
// the interior with Pattern.
func NewInterior(interior image.Point) *Img {
	img := NewImg(interior.Add(image.Pt(2, 2)))
	return img.FillInterior(Pattern)
}

// Interior returns the bounds of the image without its border.
func (img *Img) Interior() image.Rectangle {
	return img.Bounds().Inset(1)
}

// Top marks length pixels along the first row, starting at border position first.
func (img *Img) Top(first, length int) *Img {
	b := img.Bounds()
	for x := first; x < first+length; x++ {
		img.Set(b.Min.X+x, b.Min.Y, Marker)
	}
	return img
}

// Bottom marks length pixels along the last row.
func (img *Img) Bottom(first, length int) *Img {
	b := img.Bounds()
	for x := first; x < first+length; x++ {
		img.Set(b.Min.X+x, b.Max.Y-1, Marker)
	}
	return img
}

// Left marks length pixels along the first column.
func (img *Img) Left(first, length int) *Img {
	b := img.Bounds()
	for y := first; y < first+length; y++ {
		img.Set(b.Min.X, b.Min.Y+y, Marker)
	}
	return img
}

// Right marks length pixels along the last column.
func (img *Img) Right(first, length int) *Img {
	b := img.Bounds()
	for y := first; y < first+length; y++ {
		img.Set(b.Max.X-1, b.Min.Y+y, Marker)
	}
	return img
}

// StretchX marks an interior interval as horizontally stretchable.
func (img *Img) StretchX(start, length int) *Img { return img.Top(start+1, length) }

// StretchY marks an interior interval as vertically stretchable.
func (img *Img) StretchY(start, length int) *Img { return img.Left(start+1, length) }

// FillInterior colors every interior pixel with fn, called with interior
// coordinates.
func (img *Img) FillInterior(fn func(x, y int) color.NRGBA) *Img {
	in := img.Interior()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		for x := in.Min.X; x < in.Max.X; x++ {
			img.SetNRGBA(x, y, fn(x-in.Min.X, y-in.Min.Y))
		}
	}
	return img
}

// Pattern is an opaque color unique for every position of a 256x256 area.
func Pattern(x, y int) color.NRGBA {
	return color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(128 + (x+y)%100), A: 255}
}

// Mismatch returns the first offset at which the region of a at ra differs
// from the region of b starting at pb. ok is false when they are identical.
func Mismatch(a image.Image, ra image.Rectangle, b image.Image, pb image.Point) (at image.Point, ok bool) {
	for y := 0; y < ra.Dy(); y++ {
		for x := 0; x < ra.Dx(); x++ {
			ca := color.NRGBAModel.Convert(a.At(ra.Min.X+x, ra.Min.Y+y))
			cb := color.NRGBAModel.Convert(b.At(pb.X+x, pb.Y+y))
			if ca != cb {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Equal reports whether both images have the same bounds size and pixels.
func Equal(a, b image.Image) bool {
	if a.Bounds().Size() != b.Bounds().Size() {
		return false
	}
	_, differ := Mismatch(a, a.Bounds(), b, b.Bounds().Min)
	return !differ
}
