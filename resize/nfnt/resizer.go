package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/tile"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct {
	// Interpolation defaults to resize.Bilinear (the zero value is resize.NearestNeighbor)
	Interpolation *resize.InterpolationFunction
}

var _ tile.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if size.X <= 0 || size.Y <= 0 {
		// resize.Resize treats 0 as "keep aspect ratio"
		return nil, errors.New(`invalid size`)
	}
	interp := resize.Bilinear
	if r != nil && r.Interpolation != nil {
		interp = *r.Interpolation
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
