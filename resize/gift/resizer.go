package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/tile"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	// Resampling defaults to gift.LinearResampling
	Resampling gift.Resampling
}

var _ tile.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	res := gift.LinearResampling
	if r != nil && r.Resampling != nil {
		res = r.Resampling
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	gift.New(gift.Resize(size.X, size.Y, res)).Draw(m, img)
	return m, nil
}
