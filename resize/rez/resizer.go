package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/resize/xdraw"
	"github.com/srlehn/ninepatch/tile"
)

// MinSide is the smallest side rez scales from or to. Smaller tiles are
// scaled bilinearly.
const MinSide = 8

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ tile.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	b := img.Bounds()
	if min(b.Dx(), b.Dy(), size.X, size.Y) < MinSide {
		return xdraw.BiLinear().Resize(img, size)
	}
	src := img
	if _, ok := img.(*image.NRGBA); !ok {
		// rez converts between images of the same type only
		src = tile.NRGBA(img)
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, src, rez.NewBilinearFilter()); err != nil {
		return xdraw.BiLinear().Resize(img, size)
	}
	return m, nil
}
