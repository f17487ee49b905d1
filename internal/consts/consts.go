package consts

import (
	"errors"
)

var (
	ErrNilImage        = errors.New(`nil image`)
	ErrNotNinePatch    = errors.New(`not a nine-patch image`)
	ErrUnresolvedAsset = errors.New(`unresolved asset`)
	ErrResizeSize      = errors.New(`resizer returned unexpected size`)
	ErrClosed          = errors.New(`image closed`)
	ErrNotImage        = errors.New(`not an image file`)
)

const (
	// guide markers are opaque and dark in every channel (8 bit values)
	MarkerAlphaMin   = 128
	MarkerChannelMax = 128

	// asset naming convention
	NinePatchMarker = `.9`
	DensityPrefix   = `@`
	DensitySuffix   = `x`

	StateChecked = `-checked`
	StatePressed = `-pressed`
	StateHover   = `-hover`
	StateFocused = `-focused`
)
