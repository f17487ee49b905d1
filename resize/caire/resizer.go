// Seam Carving for Content-Aware Image Resizing
//
// Carving removes or duplicates low energy seams instead of interpolating,
// which keeps textured stretch regions from blurring.
package caire

import (
	"image"

	"github.com/esimov/caire"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/resize/xdraw"
	"github.com/srlehn/ninepatch/tile"
)

// minSide is the smallest side worth carving, smaller tiles are scaled
// bilinearly.
const minSide = 8

type Resizer struct{}

var _ tile.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	b := img.Bounds()
	if min(b.Dx(), b.Dy(), size.X, size.Y) < minSide {
		return xdraw.BiLinear().Resize(img, size)
	}
	p := &caire.Processor{
		BlurRadius:     1,
		SobelThreshold: 4,
		NewWidth:       size.X,
		NewHeight:      size.Y,
	}
	nimg, ok := img.(*image.NRGBA)
	if !ok {
		nimg = tile.NRGBA(img)
	}
	m, err := p.Resize(nimg)
	if err != nil || m == nil || m.Bounds().Size() != size {
		// carving can stop short of the requested size
		return xdraw.BiLinear().Resize(img, size)
	}
	return m, nil
}
