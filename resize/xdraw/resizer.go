// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
// BiLinear is the default for nine-patch tiles.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/tile"
)

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ tile.Resizer = (*resizer)(nil)

// NearestNeighbor creates a resizer that repeats pixels (pixel art, hard edges).
func NearestNeighbor() tile.Resizer {
	return &resizer{scaler: draw.NearestNeighbor}
}

// ApproxBiLinear creates a new resizer with ApproxBiLinear scaling (balanced speed/quality).
func ApproxBiLinear() tile.Resizer {
	return &resizer{scaler: draw.ApproxBiLinear}
}

// BiLinear creates a new resizer with BiLinear scaling (higher quality, slower).
func BiLinear() tile.Resizer {
	return &resizer{scaler: draw.BiLinear}
}

// CatmullRom creates a new resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() tile.Resizer {
	return &resizer{scaler: draw.CatmullRom}
}

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(`invalid size`)
	}
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
