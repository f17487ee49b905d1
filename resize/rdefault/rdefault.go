package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/resize/rez"
	"github.com/srlehn/ninepatch/resize/xdraw"
	"github.com/srlehn/ninepatch/tile"
)

type Resizer struct{}

var _ tile.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	b := img.Bounds()
	if runtime.GOARCH != `amd64` ||
		min(b.Dx(), b.Dy(), size.X, size.Y) < rez.MinSide {
		return xdraw.BiLinear().Resize(img, size)
	}
	switch img.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
		// use SIMD assembly if possible
		imgRet, err := (&rez.Resizer{}).Resize(img, size)
		if err != nil {
			imgRet, err = xdraw.BiLinear().Resize(img, size)
		}
		if err != nil {
			return nil, err
		}
		return imgRet, nil
	}
	return xdraw.BiLinear().Resize(img, size)
}
