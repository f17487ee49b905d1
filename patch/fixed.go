package patch

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/logx"
	"github.com/srlehn/ninepatch/tile"
)

// Fixed is a plain image that is never scaled.
type Fixed struct {
	bmp    *Bitmap
	logger *slog.Logger
}

var _ logx.LoggerProvider = (*Fixed)(nil)

// NewFixed wraps img. Only the density and logger options apply.
func NewFixed(img image.Image, opts ...Option) (*Fixed, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if b, ok := img.(*Bitmap); ok {
		if b.Image == nil {
			return nil, errors.NilParam()
		}
		opts = append([]Option{SetDensity(normDensity(b.Density))}, opts...)
		img = b.Image
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Min != (image.Point{}) {
		img = tile.NRGBA(img)
	}
	return &Fixed{bmp: NewBitmap(img, o.density), logger: o.logger}, nil
}

// Logger implements logx.LoggerProvider.
func (f *Fixed) Logger() *slog.Logger {
	if f == nil {
		return nil
	}
	return f.logger
}

// Render returns the source image, regardless of size.
func (f *Fixed) Render(size image.Point) (*Bitmap, error) {
	if f == nil {
		return nil, errors.NilReceiver()
	}
	if f.bmp == nil {
		return nil, errors.New(consts.ErrClosed)
	}
	if size != f.NaturalSize() {
		logx.Debug(`fixed image requested at different size`, f, `size`, size, `natural-size`, f.NaturalSize())
	}
	return f.bmp, nil
}

// Draw draws the unscaled source over dst at r.Min.
func (f *Fixed) Draw(dst draw.Image, r image.Rectangle) error {
	if err := errors.NilParam(dst); err != nil {
		return err
	}
	bmp, err := f.Render(r.Size())
	if err != nil {
		return err
	}
	drawAt(dst, r.Min, bmp)
	return nil
}

// NaturalSize is the size of the source image.
func (f *Fixed) NaturalSize() image.Point {
	if f == nil || f.bmp == nil {
		return image.Point{}
	}
	return f.bmp.Bounds().Size()
}

// LogicalSize is NaturalSize divided by the pixel density.
func (f *Fixed) LogicalSize() image.Point {
	if f == nil {
		return image.Point{}
	}
	return f.bmp.LogicalSize()
}

// Close releases the source image.
func (f *Fixed) Close() error {
	if f == nil {
		return nil
	}
	f.bmp = nil
	return nil
}
