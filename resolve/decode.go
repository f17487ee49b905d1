package resolve

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/patch"
)

// sniffLen is the header length the file type matchers look at.
const sniffLen = 262

// IsImage reports whether the header of data belongs to an image format.
func IsImage(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	kind, err := filetype.Image(data)
	return err == nil && kind != filetype.Unknown
}

// Decode reads an image and wraps it according to its file name: a
// nine-patch for names with the ".9" marker, a fixed image otherwise.
// The density in the name is applied before opts.
func Decode(r io.Reader, name string, opts ...patch.Option) (patch.Image, error) {
	if err := errors.NilParam(r); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(err)
	}
	return decode(data, ParseName(name), opts...)
}

func decode(data []byte, n Name, opts ...patch.Option) (patch.Image, error) {
	if !IsImage(data) {
		return nil, errors.New(consts.ErrNotImage)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapPrefix(err, `decode `+n.String(), 0)
	}
	opts = append([]patch.Option{patch.SetDensity(n.Density)}, opts...)
	if n.NinePatch {
		np, err := patch.New(img, opts...)
		if err != nil {
			return nil, err
		}
		return np, nil
	}
	f, err := patch.NewFixed(img, opts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}
