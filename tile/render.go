package tile

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
)

// Resizer resizes images
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// Render composites the grid into dst, anchored at dst.Bounds().Min.
// interior is the part of src without the guide border.
//
// Fixed tiles are copied pixel by pixel. Scaled tiles are cropped, resized
// once by rsz and written over the destination (no blending). A nil
// Resizer falls back to bilinear scaling.
func Render(dst draw.Image, src image.Image, interior image.Rectangle, grid Grid, rsz Resizer) error {
	if err := errors.NilParam(dst, src); err != nil {
		return err
	}
	if rsz == nil {
		rsz = &scalerResizer{scaler: draw.BiLinear}
	}
	origin := dst.Bounds().Min
	for _, t := range grid.Tiles() {
		sr := t.Src.Add(interior.Min)
		dr := t.Dst.Add(origin)
		if !t.Scaled {
			copyRect(dst, dr, src, sr.Min)
			continue
		}
		scaled, err := rsz.Resize(Crop(src, sr), dr.Size())
		if err != nil {
			return errors.New(err)
		}
		if scaled == nil {
			return errors.New(consts.ErrNilImage)
		}
		if sz := scaled.Bounds().Size(); sz != dr.Size() {
			return errors.Errorf(`%w: got %v, want %v`, consts.ErrResizeSize, sz, dr.Size())
		}
		copyRect(dst, dr, scaled, scaled.Bounds().Min)
	}
	return nil
}

// Crop copies r of src into a new image with its origin at (0,0).
func Crop(src image.Image, r image.Rectangle) *image.NRGBA {
	m := image.NewNRGBA(image.Rectangle{Max: r.Size()})
	copyRect(m, m.Bounds(), src, r.Min)
	return m
}

// NRGBA returns a zero origin *image.NRGBA copy of src.
func NRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	return Crop(src, src.Bounds())
}

// copyRect overwrites dr in dst with the pixels of src starting at sp.
// NRGBA to NRGBA copies are byte exact.
func copyRect(dst draw.Image, dr image.Rectangle, src image.Image, sp image.Point) {
	sr := image.Rectangle{Min: sp, Max: sp.Add(dr.Size())}
	d, okD := dst.(*image.NRGBA)
	s, okS := src.(*image.NRGBA)
	switch {
	case okD && okS && dr.In(d.Rect) && sr.In(s.Rect):
		w := dr.Dx() * 4
		for y := 0; y < dr.Dy(); y++ {
			di := d.PixOffset(dr.Min.X, dr.Min.Y+y)
			si := s.PixOffset(sr.Min.X, sr.Min.Y+y)
			copy(d.Pix[di:di+w], s.Pix[si:si+w])
		}
	case okD:
		// un-premultiplying through draw.Src may be lossy
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(sp.X+x, sp.Y+y)).(color.NRGBA)
				d.SetNRGBA(dr.Min.X+x, dr.Min.Y+y, c)
			}
		}
	default:
		draw.Draw(dst, dr, src, sp, draw.Src)
	}
}

// scalerResizer is the fallback Resizer.
type scalerResizer struct {
	scaler draw.Scaler
}

var _ Resizer = (*scalerResizer)(nil)

func (r *scalerResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(`invalid size`)
	}
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
