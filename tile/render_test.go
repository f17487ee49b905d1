package tile_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ninepatch/guide"
	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/testutil"
	"github.com/srlehn/ninepatch/tile"
)

// countingResizer fills the requested size with a single color.
type countingResizer struct {
	calls []image.Point
	fill  color.NRGBA
	off   image.Point // added to the returned size
}

func (r *countingResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	r.calls = append(r.calls, size)
	m := image.NewNRGBA(image.Rectangle{Max: size.Add(r.off)})
	for i := 0; i < len(m.Pix); i += 4 {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = r.fill.R, r.fill.G, r.fill.B, r.fill.A
	}
	return m, nil
}

func scenario(t *testing.T) (*testutil.Img, *guide.Guides) {
	t.Helper()
	src := testutil.NewInterior(image.Pt(12, 12)).StretchX(5, 2).StretchY(5, 2)
	g, err := guide.Scan(src)
	require.NoError(t, err)
	return src, g
}

func TestRenderScenario(t *testing.T) {
	src, g := scenario(t)
	grid := tile.Layout(g, image.Pt(20, 20))
	dst := image.NewNRGBA(image.Rectangle{Max: grid.Size})
	rsz := &countingResizer{fill: color.NRGBA{R: 1, G: 2, B: 3, A: 255}}

	require.NoError(t, tile.Render(dst, src, src.Interior(), grid, rsz))
	assert.Equal(t, image.Pt(20, 20), dst.Bounds().Size())
	assert.ElementsMatch(t, []image.Point{
		{X: 10, Y: 5}, {X: 5, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 10}, {X: 10, Y: 5},
	}, rsz.calls)

	in := src.Interior()
	corners := []struct{ src, dst image.Point }{
		{image.Pt(0, 0), image.Pt(0, 0)},
		{image.Pt(7, 0), image.Pt(15, 0)},
		{image.Pt(0, 7), image.Pt(0, 15)},
		{image.Pt(7, 7), image.Pt(15, 15)},
	}
	for _, c := range corners {
		r := image.Rectangle{Min: c.dst, Max: c.dst.Add(image.Pt(5, 5))}
		at, differ := testutil.Mismatch(dst, r, src, in.Min.Add(c.src))
		assert.False(t, differ, `corner %v differs at %v`, c.dst, at)
	}
	assert.Equal(t, rsz.fill, dst.NRGBAAt(10, 10))
	assert.Equal(t, rsz.fill, dst.NRGBAAt(2, 10))
	assert.Equal(t, rsz.fill, dst.NRGBAAt(10, 17))
}

func TestRenderDefaultResizer(t *testing.T) {
	src, g := scenario(t)
	for _, size := range []image.Point{{X: 10, Y: 10}, {X: 13, Y: 31}, {X: 64, Y: 12}} {
		grid := tile.Layout(g, size)
		dst := image.NewNRGBA(image.Rectangle{Max: grid.Size})
		require.NoError(t, tile.Render(dst, src, src.Interior(), grid, nil))
		assert.Equal(t, size, dst.Bounds().Size())
		// the top left corner is fixed for every size
		at, differ := testutil.Mismatch(dst, image.Rect(0, 0, 5, 5), src, image.Pt(1, 1))
		assert.False(t, differ, `size %v differs at %v`, size, at)
	}
}

func TestRenderOffsetDestination(t *testing.T) {
	src, g := scenario(t)
	grid := tile.Layout(g, image.Pt(12, 12))
	dst := image.NewNRGBA(image.Rect(30, 40, 42, 52))
	require.NoError(t, tile.Render(dst, src, src.Interior(), grid, &countingResizer{}))
	// natural size: nothing is scaled, the interior is copied verbatim
	at, differ := testutil.Mismatch(dst, dst.Bounds(), src, image.Pt(1, 1))
	assert.False(t, differ, `differs at %v`, at)
}

func TestRenderOverwritesWithoutBlending(t *testing.T) {
	src, g := scenario(t)
	grid := tile.Layout(g, image.Pt(15, 15))
	dst := image.NewNRGBA(image.Rectangle{Max: grid.Size})
	for i := range dst.Pix {
		dst.Pix[i] = 0xff
	}
	rsz := &countingResizer{fill: color.NRGBA{}}
	require.NoError(t, tile.Render(dst, src, src.Interior(), grid, rsz))
	// transparent scaled tiles replace the white background
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(7, 7))
}

func TestRenderResizerWrongSize(t *testing.T) {
	src, g := scenario(t)
	grid := tile.Layout(g, image.Pt(20, 20))
	dst := image.NewNRGBA(image.Rectangle{Max: grid.Size})
	err := tile.Render(dst, src, src.Interior(), grid, &countingResizer{off: image.Pt(1, 0)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, consts.ErrResizeSize))
}

func TestRenderNilParams(t *testing.T) {
	src, g := scenario(t)
	grid := tile.Layout(g, image.Pt(20, 20))
	assert.Error(t, tile.Render(nil, src, src.Interior(), grid, nil))
	assert.Error(t, tile.Render(image.NewNRGBA(image.Rect(0, 0, 20, 20)), nil, image.Rectangle{}, grid, nil))
}

func TestCropAndNRGBA(t *testing.T) {
	src := testutil.NewInterior(image.Pt(6, 4))
	c := tile.Crop(src, image.Rect(2, 1, 5, 3))
	assert.Equal(t, image.Rect(0, 0, 3, 2), c.Bounds())
	assert.Equal(t, src.NRGBAAt(2, 1), c.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(4, 2), c.NRGBAAt(2, 1))

	gray := image.NewGray(image.Rect(5, 5, 8, 8))
	gray.SetGray(6, 6, color.Gray{Y: 77})
	n := tile.NRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 3, 3), n.Bounds())
	assert.Equal(t, color.NRGBA{R: 77, G: 77, B: 77, A: 255}, n.NRGBAAt(1, 1))
	assert.Nil(t, tile.NRGBA(nil))
}
