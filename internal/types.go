package internal

import (
	"image"
	"io"
)

// ImageEncoder writes img in the format named by fileExt ("png", ".png"
// or a whole file name).
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}
