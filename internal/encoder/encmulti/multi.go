package encmulti

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/ninepatch/internal"
	"github.com/srlehn/ninepatch/internal/errors"
)

var _ internal.ImageEncoder = (*MultiEncoder)(nil)

// MultiEncoder encodes bmp, gif, jpeg, png and tiff.
type MultiEncoder struct {
	JPEGQuality int // 0 means 90
}

// Formats lists the supported file extensions.
func Formats() []string { return []string{`bmp`, `gif`, `jpeg`, `jpg`, `png`, `tif`, `tiff`} }

func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if err := errors.NilParam(w, img); err != nil {
		return err
	}
	// allow passing whole filename
	fmtStr := strings.ToLower(strings.TrimPrefix(filepath.Ext(`.`+fileExt), `.`))
	if len(fmtStr) == 0 {
		return errors.New(`no file format specified`)
	}
	var err error
	switch fmtStr {
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `png`:
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	case `tif`, `tiff`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpg`, `jpeg`:
		q := e.JPEGQuality
		if q <= 0 {
			q = 90
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	default:
		err = errors.New(`unsupported file format: "` + fmtStr + `"`)
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}
