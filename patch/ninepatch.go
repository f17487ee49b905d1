package patch

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/srlehn/ninepatch/guide"
	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/logx"
	"github.com/srlehn/ninepatch/resize/xdraw"
	"github.com/srlehn/ninepatch/tile"
)

// NinePatch is a stretchable image whose guides are read from its 1px
// border.
//
// The most recent render is cached and returned again as long as the
// requested size does not change. A NinePatch must not be rendered from
// multiple goroutines at once; use one NinePatch per goroutine instead
// (they may share the source image).
type NinePatch struct {
	src     *image.NRGBA // guide border included
	density float64
	guides  *guide.Guides
	resizer Resizer
	logger  *slog.Logger
	cache   *cachedRender
}

type cachedRender struct {
	size image.Point
	bmp  *Bitmap
}

var _ logx.LoggerProvider = (*NinePatch)(nil)

// New parses the guides of img and returns a NinePatch.
// It fails with a *errors.NotNinePatchError when an axis lacks stretch
// markers.
func New(img image.Image, opts ...Option) (*NinePatch, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	if b, ok := img.(*Bitmap); ok {
		return NewFromBitmap(b, opts...)
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	g, err := guide.Scan(img)
	if err != nil {
		return nil, err
	}
	if o.resizer == nil {
		o.resizer = xdraw.BiLinear()
	}
	n := &NinePatch{
		src:     tile.NRGBA(img),
		density: o.density,
		guides:  g,
		resizer: o.resizer,
		logger:  o.logger,
	}
	logx.Debug(`nine-patch loaded`, n,
		`size`, n.NaturalSize(),
		`min-size`, n.MinSize(),
		`stretch-x`, g.X,
		`stretch-y`, g.Y,
		`density`, n.density,
	)
	return n, nil
}

// NewFromBitmap is New for an image with a known pixel density.
// Options override the density of b.
func NewFromBitmap(b *Bitmap, opts ...Option) (*NinePatch, error) {
	if b == nil || b.Image == nil {
		return nil, errors.NilParam()
	}
	return New(b.Image, append([]Option{SetDensity(normDensity(b.Density))}, opts...)...)
}

// Logger implements logx.LoggerProvider.
func (n *NinePatch) Logger() *slog.Logger {
	if n == nil {
		return nil
	}
	return n.logger
}

// Render composites the image at size (device pixels).
// Sizes below MinSize are clamped up per axis, the result is never cropped.
// Rendering the same size again returns the cached Bitmap.
func (n *NinePatch) Render(size image.Point) (*Bitmap, error) {
	if n == nil {
		return nil, errors.NilReceiver()
	}
	if n.src == nil {
		return nil, errors.New(consts.ErrClosed)
	}
	minSize := n.MinSize()
	size = image.Point{X: max(size.X, minSize.X), Y: max(size.Y, minSize.Y)}
	if n.cache != nil {
		if n.cache.size == size {
			return n.cache.bmp, nil
		}
		n.cache = nil
	}
	bmp, err := logx.TimeIt2(
		func() (*Bitmap, error) { return n.render(size) },
		`nine-patch render`, n, `size`, size,
	)
	if err != nil {
		return nil, err
	}
	n.cache = &cachedRender{size: size, bmp: bmp}
	return bmp, nil
}

func (n *NinePatch) render(size image.Point) (*Bitmap, error) {
	grid := tile.Layout(n.guides, size)
	dst := image.NewNRGBA(image.Rectangle{Max: grid.Size})
	if err := tile.Render(dst, n.src, n.src.Bounds().Inset(1), grid, n.resizer); err != nil {
		return nil, err
	}
	return NewBitmap(dst, n.density), nil
}

// RenderLogical renders at a size given in logical pixels.
func (n *NinePatch) RenderLogical(size image.Point) (*Bitmap, error) {
	if n == nil {
		return nil, errors.NilReceiver()
	}
	return n.Render(toDevice(size, n.density))
}

// Draw renders the image for r.Size() and draws it over dst at r.Min.
func (n *NinePatch) Draw(dst draw.Image, r image.Rectangle) error {
	if err := errors.NilParam(dst); err != nil {
		return err
	}
	bmp, err := n.Render(r.Size())
	if err != nil {
		return err
	}
	drawAt(dst, r.Min, bmp)
	return nil
}

// NaturalSize is the size of the source without its guide border.
func (n *NinePatch) NaturalSize() image.Point {
	if n == nil || n.guides == nil {
		return image.Point{}
	}
	return n.guides.Interior
}

// LogicalSize is NaturalSize divided by the pixel density.
func (n *NinePatch) LogicalSize() image.Point {
	if n == nil {
		return image.Point{}
	}
	return toLogical(n.NaturalSize(), n.density)
}

// MinSize is the smallest size the image renders at: the sum of the fixed
// bands per axis.
func (n *NinePatch) MinSize() image.Point {
	if n == nil {
		return image.Point{}
	}
	return tile.MinSize(n.guides)
}

// Density is the device pixel density of the source.
func (n *NinePatch) Density() float64 {
	if n == nil {
		return 1
	}
	return n.density
}

// Guides returns a copy of the parsed guides.
func (n *NinePatch) Guides() guide.Guides {
	if n == nil {
		return guide.Guides{}
	}
	return n.guides.Clone()
}

// ContentArea is the area for foreground content at the natural size.
func (n *NinePatch) ContentArea() (image.Rectangle, bool) {
	if n == nil || !n.guides.HasContent() {
		return image.Rectangle{}, false
	}
	return n.guides.Content, true
}

// ContentAreaAt is the content area of the image rendered at size.
// Its edges move along with the tiles they lie in: an edge inside a fixed
// tile keeps its distance to that tile, an edge inside a stretch band is
// scaled with the band.
func (n *NinePatch) ContentAreaAt(size image.Point) (image.Rectangle, bool) {
	c, ok := n.ContentArea()
	if !ok {
		return image.Rectangle{}, false
	}
	grid := tile.Layout(n.guides, size)
	return image.Rect(
		grid.X.Map(c.Min.X), grid.Y.Map(c.Min.Y),
		grid.X.Map(c.Max.X), grid.Y.Map(c.Max.Y),
	), true
}

// Close releases the source image and the cached render.
func (n *NinePatch) Close() error {
	if n == nil {
		return nil
	}
	n.src = nil
	n.cache = nil
	return nil
}
