package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/tile"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	// Filter defaults to imaging.Linear
	Filter *imaging.ResampleFilter
}

var _ tile.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	filter := imaging.Linear
	if r != nil && r.Filter != nil {
		filter = *r.Filter
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}
