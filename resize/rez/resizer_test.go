package rez_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ninepatch/internal/testutil"
	"github.com/srlehn/ninepatch/resize/rez"
)

func TestResizeSmallTiles(t *testing.T) {
	for _, tt := range []struct {
		src, size image.Point
	}{
		{image.Pt(2, 5), image.Pt(1, 30)},
		{image.Pt(5, 2), image.Pt(50, 3)},
		{image.Pt(2, 2), image.Pt(40, 40)},
		{image.Pt(16, 16), image.Pt(32, 24)},
	} {
		m, err := (&rez.Resizer{}).Resize(testutil.NewImg(tt.src), tt.size)
		require.NoError(t, err, `%v -> %v`, tt.src, tt.size)
		assert.Equal(t, tt.size, m.Bounds().Size())
	}
	_, err := (&rez.Resizer{}).Resize(nil, image.Pt(4, 4))
	assert.Error(t, err)
}
