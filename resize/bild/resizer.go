package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/tile"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct {
	// Filter defaults to transform.Linear
	Filter *transform.ResampleFilter
}

var _ tile.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	filter := transform.Linear
	if r != nil && r.Filter != nil {
		filter = *r.Filter
	}
	return transform.Resize(img, size.X, size.Y, filter), nil
}
