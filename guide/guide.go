// Package guide reads the guide markings from the 1px border of a
// nine-patch image.
//
// The top row and the left column mark the stretchable bands, the bottom
// row and the right column mark the content area. A guide marker is an
// opaque, dark pixel. All returned coordinates are relative to the image
// interior, i.e. the image without its 1px border.
//
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
package guide

import (
	"image"
	"image/color"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
)

// Axis along which a border line is walked.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return `horizontal`
	case Vertical:
		return `vertical`
	default:
		return `unknown`
	}
}

// Interval is the half-open range [Start, Start+Length) along one axis.
type Interval struct {
	Start, Length int
}

// End returns the first position after the interval.
func (iv Interval) End() int { return iv.Start + iv.Length }

// Run is a maximal sequence of marker pixels in border coordinates.
// First and Last are inclusive.
type Run struct {
	First, Last int
}

// Guides holds everything parsed from the border of a nine-patch image.
type Guides struct {
	// X and Y are the stretchable bands, sorted ascending and disjoint.
	X, Y []Interval
	// Content is the area safe for foreground content. It is empty if the
	// image carries no content markers.
	Content image.Rectangle
	// Interior is the size of the image without its border.
	Interior image.Point
}

// HasContent reports whether the image defines a content area.
func (g *Guides) HasContent() bool {
	return g != nil && !g.Content.Empty()
}

// StretchLength returns the summed length of the stretchable bands on an axis.
func (g *Guides) StretchLength(axis Axis) int {
	if g == nil {
		return 0
	}
	return Length(g.intervals(axis))
}

func (g *Guides) intervals(axis Axis) []Interval {
	if axis == Vertical {
		return g.Y
	}
	return g.X
}

// Clone returns a deep copy.
func (g *Guides) Clone() Guides {
	if g == nil {
		return Guides{}
	}
	return Guides{
		X:        append([]Interval(nil), g.X...),
		Y:        append([]Interval(nil), g.Y...),
		Content:  g.Content,
		Interior: g.Interior,
	}
}

// Length sums the lengths of the intervals.
func Length(ivs []Interval) int {
	var l int
	for _, iv := range ivs {
		l += iv.Length
	}
	return l
}

// IsMarker reports whether c is a guide marker: at least half opaque
// and dark in each color channel.
func IsMarker(c color.Color) bool {
	if c == nil {
		return false
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < consts.MarkerAlphaMin {
		return false
	}
	return n.R < consts.MarkerChannelMax &&
		n.G < consts.MarkerChannelMax &&
		n.B < consts.MarkerChannelMax
}

// Runs walks the border line at offset along axis and returns the marker
// runs in order. For Horizontal the offset selects the row, for Vertical
// the column, both relative to the image bounds.
func Runs(img image.Image, axis Axis, offset int) []Run {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	end := b.Dx()
	if axis == Vertical {
		end = b.Dy()
	}
	at := func(i int) color.Color {
		if axis == Vertical {
			return img.At(b.Min.X+offset, b.Min.Y+i)
		}
		return img.At(b.Min.X+i, b.Min.Y+offset)
	}
	var (
		runs  []Run
		first = -1
	)
	// one step past the end closes a run reaching the edge
	for i := 0; i <= end; i++ {
		isMarker := i < end && IsMarker(at(i))
		switch {
		case isMarker && first < 0:
			first = i
		case !isMarker && first >= 0:
			runs = append(runs, Run{First: first, Last: i - 1})
			first = -1
		}
	}
	return runs
}

// Scan parses the guides of a nine-patch image.
// It fails with a *errors.NotNinePatchError if either axis lacks stretch
// markers.
func Scan(img image.Image) (*Guides, error) {
	if err := errors.NilParam(img); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return nil, errors.NotNinePatch(``, `image smaller than 3x3 pixels`)
	}
	g := &Guides{Interior: image.Pt(b.Dx()-2, b.Dy()-2)}

	g.X = intervals(Runs(img, Horizontal, 0), g.Interior.X)
	if len(g.X) == 0 {
		return nil, errors.NotNinePatch(Horizontal.String(), ``)
	}
	g.Y = intervals(Runs(img, Vertical, 0), g.Interior.Y)
	if len(g.Y) == 0 {
		return nil, errors.NotNinePatch(Vertical.String(), ``)
	}

	contentX, okX := span(Runs(img, Horizontal, b.Dy()-1), g.Interior.X)
	contentY, okY := span(Runs(img, Vertical, b.Dx()-1), g.Interior.Y)
	if okX && okY {
		g.Content = image.Rect(
			contentX.Start, contentY.Start,
			contentX.End(), contentY.End(),
		)
	}
	return g, nil
}

// intervals converts border runs into interior intervals.
// Runs touching the corner pixels are clipped to the interior.
func intervals(runs []Run, interior int) []Interval {
	var ivs []Interval
	for _, r := range runs {
		iv, ok := clip(r.First, r.Last, interior)
		if !ok {
			continue
		}
		ivs = append(ivs, iv)
	}
	return ivs
}

// span reduces all runs of a content line to a single interval from the
// first to the last marker.
func span(runs []Run, interior int) (Interval, bool) {
	if len(runs) == 0 {
		return Interval{}, false
	}
	return clip(runs[0].First, runs[len(runs)-1].Last, interior)
}

func clip(first, last, interior int) (Interval, bool) {
	start := first - 1
	end := last // exclusive in interior coordinates: (last-1)+1
	if start < 0 {
		start = 0
	}
	if end > interior {
		end = interior
	}
	if end <= start {
		return Interval{}, false
	}
	return Interval{Start: start, Length: end - start}, true
}
