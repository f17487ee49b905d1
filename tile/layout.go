// Package tile partitions a nine-patch interior into fixed and stretchable
// tiles for a target size and composites the scaled result.
//
// Both axes are laid out independently: a patch stretched only
// horizontally is never distorted vertically.
package tile

import (
	"fmt"
	"image"
	"math"

	"github.com/srlehn/ninepatch/guide"
)

// Kind of a segment along one axis.
type Kind uint8

const (
	Fixed Kind = iota
	Stretch
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return `fixed`
	case Stretch:
		return `stretch`
	default:
		return fmt.Sprintf(`Kind(%d)`, uint8(k))
	}
}

// Segment maps a source range to a destination range along one axis.
// Src is in interior coordinates, Dst in output coordinates.
type Segment struct {
	Kind   Kind
	Src    int
	SrcLen int
	Dst    int
	DstLen int
}

// Axis is the ordered list of alternating fixed and stretch segments,
// starting and ending with a (possibly empty) fixed segment.
type Axis []Segment

// Extent is the summed destination length of the axis.
func (a Axis) Extent() int {
	var e int
	for _, s := range a {
		e += s.DstLen
	}
	return e
}

// Map converts an interior position into an output position.
// Positions inside a stretch segment are scaled proportionally.
func (a Axis) Map(pos int) int {
	for i, s := range a {
		if pos >= s.Src+s.SrcLen && i < len(a)-1 {
			continue
		}
		if s.Kind == Fixed || s.SrcLen == 0 {
			return s.Dst + pos - s.Src
		}
		return s.Dst + int(math.Round(float64(pos-s.Src)*float64(s.DstLen)/float64(s.SrcLen)))
	}
	return pos
}

// lostEpsilon absorbs floating point noise in the accumulated rounding error.
const lostEpsilon = 1e-9

// MinExtent is the smallest extent an axis can be rendered at: the sum of
// its fixed segments.
func MinExtent(ivs []guide.Interval, srcExtent int) int {
	m := srcExtent - guide.Length(ivs)
	if m < 0 {
		return 0
	}
	return m
}

// LayoutAxis lays out one axis of srcExtent interior pixels at target
// pixels. Targets below MinExtent are clamped up to it.
//
// Every stretch interval is scaled by the same factor. Each rounded
// destination length feeds a running error; once its magnitude reaches a
// whole pixel the current segment is corrected by one pixel, so the
// segments never drift more than a pixel from their ideal size and the
// axis always sums up to exactly the target.
func LayoutAxis(ivs []guide.Interval, srcExtent, target int) Axis {
	stretch := guide.Length(ivs)
	fixed := MinExtent(ivs, srcExtent)
	if target < fixed {
		target = fixed
	}
	if stretch <= 0 {
		return Axis{{Kind: Fixed, SrcLen: srcExtent, DstLen: srcExtent}}
	}

	var (
		factor    = float64(target-fixed) / float64(stretch)
		remaining = target - fixed // stretch pixels not yet handed out
		axis      = make(Axis, 0, 2*len(ivs)+1)
		pos, off  int
		lost      float64
	)
	for i, iv := range ivs {
		l := max(0, iv.Start-pos)
		axis = append(axis, Segment{Kind: Fixed, Src: pos, SrcLen: l, Dst: off, DstLen: l})
		off += l

		ideal := float64(iv.Length) * factor
		n := int(math.Round(ideal))
		lost += float64(n) - ideal
		if math.Abs(lost) >= 1-lostEpsilon {
			if lost < 0 {
				n++
				lost += 1
			} else {
				n--
				lost -= 1
			}
		}
		if i == len(ivs)-1 {
			n = remaining
		}
		n = max(0, min(n, remaining))
		remaining -= n

		axis = append(axis, Segment{Kind: Stretch, Src: iv.Start, SrcLen: iv.Length, Dst: off, DstLen: n})
		off += n
		pos = iv.End()
	}
	tail := max(0, srcExtent-pos)
	axis = append(axis, Segment{Kind: Fixed, Src: pos, SrcLen: tail, Dst: off, DstLen: tail})
	return axis
}

// Grid is the two dimensional tile layout for one target size.
type Grid struct {
	X, Y Axis
	Size image.Point
}

// MinSize returns the smallest size the guides can be rendered at.
func MinSize(g *guide.Guides) image.Point {
	if g == nil {
		return image.Point{}
	}
	return image.Point{
		X: MinExtent(g.X, g.Interior.X),
		Y: MinExtent(g.Y, g.Interior.Y),
	}
}

// Layout computes the grid for rendering g at target.
// The resulting size is target clamped up to MinSize(g).
func Layout(g *guide.Guides, target image.Point) Grid {
	if g == nil {
		return Grid{}
	}
	grid := Grid{
		X: LayoutAxis(g.X, g.Interior.X, target.X),
		Y: LayoutAxis(g.Y, g.Interior.Y, target.Y),
	}
	grid.Size = image.Pt(grid.X.Extent(), grid.Y.Extent())
	return grid
}

// Tile is one cell of the grid.
type Tile struct {
	Src    image.Rectangle // interior coordinates
	Dst    image.Rectangle // output coordinates
	Scaled bool            // source and destination size differ
}

// Tiles returns the cells of the grid in row-major order.
// Cells without source or destination pixels are omitted.
func (g Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, len(g.X)*len(g.Y))
	for _, sy := range g.Y {
		if sy.SrcLen <= 0 || sy.DstLen <= 0 {
			continue
		}
		for _, sx := range g.X {
			if sx.SrcLen <= 0 || sx.DstLen <= 0 {
				continue
			}
			t := Tile{
				Src: image.Rect(sx.Src, sy.Src, sx.Src+sx.SrcLen, sy.Src+sy.SrcLen),
				Dst: image.Rect(sx.Dst, sy.Dst, sx.Dst+sx.DstLen, sy.Dst+sy.DstLen),
			}
			t.Scaled = t.Src.Size() != t.Dst.Size()
			tiles = append(tiles, t)
		}
	}
	return tiles
}
