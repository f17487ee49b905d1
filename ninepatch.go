// Package ninepatch renders nine-patch images: bitmaps whose 1px border
// marks which rows and columns may be stretched, so that the corners and
// edges keep their pixel size at any target size.
//
// Example:
//
//	img, err := ninepatch.Open(`button.9.png`)
//	if err != nil {
//		return err
//	}
//	defer img.Close()
//	bmp, err := img.Render(image.Pt(120, 40))
package ninepatch

import (
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/srlehn/ninepatch/config"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/util"
	"github.com/srlehn/ninepatch/patch"
	"github.com/srlehn/ninepatch/resize/bild"
	"github.com/srlehn/ninepatch/resize/caire"
	"github.com/srlehn/ninepatch/resize/gift"
	"github.com/srlehn/ninepatch/resize/imaging"
	"github.com/srlehn/ninepatch/resize/nfnt"
	"github.com/srlehn/ninepatch/resize/rdefault"
	"github.com/srlehn/ninepatch/resize/rez"
	"github.com/srlehn/ninepatch/resize/xdraw"
	"github.com/srlehn/ninepatch/resolve"
)

var (
	// chosen defaults
	resizer patch.Resizer = &rdefault.Resizer{}
)

var (
	DefaultConfig = patch.Options{
		patch.SetResizer(resizer),
	}
)

var resizers = map[string]func() patch.Resizer{
	`default`:        func() patch.Resizer { return &rdefault.Resizer{} },
	`nearest`:        xdraw.NearestNeighbor,
	`approxbilinear`: xdraw.ApproxBiLinear,
	`bilinear`:       xdraw.BiLinear,
	`catmullrom`:     xdraw.CatmullRom,
	`rez`:            func() patch.Resizer { return &rez.Resizer{} },
	`bild`:           func() patch.Resizer { return &bild.Resizer{} },
	`gift`:           func() patch.Resizer { return &gift.Resizer{} },
	`imaging`:        func() patch.Resizer { return &imaging.Resizer{} },
	`nfnt`:           func() patch.Resizer { return &nfnt.Resizer{} },
	`caire`:          func() patch.Resizer { return &caire.Resizer{} },
}

// ResizerNames lists the names accepted by ResizerByName.
func ResizerNames() []string {
	return util.MapsKeysSorted(resizers)
}

// ResizerByName returns the named tile scaler. The empty name is the
// default scaler.
func ResizerByName(name string) (patch.Resizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		name = `default`
	}
	newResizer, ok := resizers[name]
	if !ok {
		return nil, errors.Errorf(`unknown resizer %q (available: %s)`, name, strings.Join(ResizerNames(), `, `))
	}
	return newResizer(), nil
}

// Open reads an image file. Files named with the ".9" marker
// (e.g. "button@2x.9.png") are nine-patches, others are fixed images.
func Open(file string, opts ...patch.Option) (patch.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	return Decode(f, filepath.Base(file), opts...)
}

// Decode reads an image from r; name is the file name it was stored under.
// DefaultConfig is applied before opts.
func Decode(r io.Reader, name string, opts ...patch.Option) (patch.Image, error) {
	return resolve.Decode(r, name, append([]patch.Option{DefaultConfig}, opts...)...)
}

// RenderFile opens file and renders it at size.
func RenderFile(file string, size image.Point, opts ...patch.Option) (*patch.Bitmap, error) {
	img, err := Open(file, opts...)
	if err != nil {
		return nil, err
	}
	defer img.Close()
	return img.Render(size)
}

// NewResolver loads the asset directory of c. A nil h disables logging.
func NewResolver(c *config.Config, h slog.Handler) (*resolve.Resolver, error) {
	if c == nil {
		c = config.Default()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rsz, err := ResizerByName(c.Resizer)
	if err != nil {
		return nil, err
	}
	return resolve.Open(c.Assets,
		resolve.SetDensity(c.Density),
		resolve.SetResizer(rsz),
		resolve.SetSLogger(h, h != nil),
	)
}
