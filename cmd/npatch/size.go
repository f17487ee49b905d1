package main

import (
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/srlehn/ninepatch/internal/encoder/encmulti"
	"github.com/srlehn/ninepatch/internal/errors"
)

// parseSize parses "<w>x<h>".
func parseSize(s string) (image.Point, error) {
	parts := strings.SplitN(strings.ToLower(s), `x`, 2)
	if len(parts) != 2 {
		return image.Point{}, errors.Errorf(`invalid size %q, want <w>x<h>`, s)
	}
	w, errW := strconv.ParseUint(parts[0], 10, 31)
	h, errH := strconv.ParseUint(parts[1], 10, 31)
	if errW != nil || errH != nil {
		return image.Point{}, errors.Errorf(`invalid size %q, want <w>x<h>`, s)
	}
	return image.Pt(int(w), int(h)), nil
}

// writeImage encodes img into file, the format follows the file extension.
func writeImage(file string, img image.Image) (err error) {
	if len(file) == 0 {
		return errors.New(`no output file given`)
	}
	f, err := os.Create(file)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errors.New(errClose)
		}
	}()
	return (&encmulti.MultiEncoder{}).Encode(f, img, file)
}
