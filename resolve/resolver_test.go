package resolve_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/testutil"
	"github.com/srlehn/ninepatch/patch"
	"github.com/srlehn/ninepatch/resolve"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func ninePatchPNG(t *testing.T, interior int) []byte {
	t.Helper()
	img := testutil.NewInterior(image.Pt(interior, interior)).
		StretchX(interior/2-1, 2).
		StretchY(interior/2-1, 2)
	return encodePNG(t, img)
}

func plainPNG(t *testing.T, size int) []byte {
	t.Helper()
	return encodePNG(t, testutil.NewInterior(image.Pt(size-2, size-2)))
}

// assets is a theme where the image sizes identify the files.
func assets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		`button.9.png`:         {Data: ninePatchPNG(t, 12)},
		`button@2x.9.png`:      {Data: ninePatchPNG(t, 24)},
		`button@2x.png`:        {Data: plainPNG(t, 26)},
		`button-pressed.9.png`: {Data: ninePatchPNG(t, 10)},
		`icon.png`:             {Data: plainPNG(t, 16)},
		`sub/arrow@3x.png`:     {Data: plainPNG(t, 9)},
		`broken.9.png`:         {Data: plainPNG(t, 8)},
		`notes.txt`:            {Data: []byte(`button: 12x12`)},
	}
}

func natural(t *testing.T, img patch.Image) image.Point {
	t.Helper()
	require.NotNil(t, img)
	return img.NaturalSize()
}

func TestResolverNames(t *testing.T) {
	r, err := resolve.New(assets(t))
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, []string{`arrow`, `button`, `button-pressed`, `icon`}, r.Names())
}

func TestResolveDensityOrder(t *testing.T) {
	tests := []struct {
		density float64
		size    image.Point
		ninep   bool
	}{
		{1, image.Pt(12, 12), true},
		{2, image.Pt(24, 24), true},
		// no @3x variant: highest density first
		{3, image.Pt(24, 24), true},
	}
	for _, tt := range tests {
		r, err := resolve.New(assets(t), resolve.SetDensity(tt.density))
		require.NoError(t, err)
		img, err := r.Resolve(`button`, resolve.Normal)
		require.NoError(t, err)
		assert.Equal(t, tt.size, natural(t, img), `density %v`, tt.density)
		_, isNinePatch := img.(*patch.NinePatch)
		assert.Equal(t, tt.ninep, isNinePatch, `density %v`, tt.density)
		require.NoError(t, r.Close())
	}
}

func TestResolverInvalidDensity(t *testing.T) {
	for _, d := range []float64{0, 0.5, math.NaN(), math.Inf(1)} {
		r, err := resolve.New(assets(t), resolve.SetDensity(d))
		assert.Error(t, err, `density %v`, d)
		assert.Nil(t, r)
	}
}

func TestResolverDuplicateNames(t *testing.T) {
	fsys := fstest.MapFS{
		`a/button.9.png`: {Data: ninePatchPNG(t, 12)},
		`b/button.9.png`: {Data: ninePatchPNG(t, 20)},
		`b/button.png`:   {Data: plainPNG(t, 16)},
	}
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	r, err := resolve.New(fsys, resolve.SetSLogger(h, true))
	require.NoError(t, err)
	defer r.Close()

	// first in walk order wins, a fixed image of the same base is no duplicate
	assert.Equal(t, []string{`a/button.9.png`, `b/button.png`}, r.Files(`button`))
	img, err := r.Resolve(`button`, resolve.Normal)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(12, 12), natural(t, img))
	assert.Contains(t, buf.String(), `duplicate asset skipped`)
	assert.Contains(t, buf.String(), `b/button.9.png`)
}

func TestResolveNinePatchDensity(t *testing.T) {
	r, err := resolve.New(assets(t), resolve.SetDensity(2))
	require.NoError(t, err)
	defer r.Close()
	img, err := r.Resolve(`button`, resolve.Normal)
	require.NoError(t, err)
	n, ok := img.(*patch.NinePatch)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Density())
	assert.Equal(t, image.Pt(12, 12), n.LogicalSize())

	assert.Equal(t, []string{`button@2x.9.png`, `button@2x.png`, `button.9.png`}, r.Files(`button`))
}

func TestResolveStateFallback(t *testing.T) {
	r, err := resolve.New(assets(t))
	require.NoError(t, err)
	defer r.Close()

	img, err := r.Resolve(`button`, resolve.Pressed|resolve.Hover)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 10), natural(t, img))

	// no checked asset: plain button
	img, err = r.Resolve(`button`, resolve.Checked)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(12, 12), natural(t, img))

	img, err = r.Resolve(`icon`, resolve.Focused)
	require.NoError(t, err)
	_, ok := img.(*patch.Fixed)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(16, 16), natural(t, img))

	img, err = r.Resolve(`arrow`, resolve.Normal)
	require.NoError(t, err)
	f, ok := img.(*patch.Fixed)
	require.True(t, ok)
	assert.Equal(t, image.Pt(3, 3), f.LogicalSize())
}

func TestResolveUnresolved(t *testing.T) {
	r, err := resolve.New(assets(t))
	require.NoError(t, err)
	defer r.Close()
	for _, name := range []string{`missing`, `broken`, `notes`} {
		img, err := r.Resolve(name, resolve.Hover)
		require.Error(t, err)
		assert.Nil(t, img)
		assert.True(t, errors.Is(err, consts.ErrUnresolvedAsset))
		var ue *errors.UnresolvedAssetError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, name, ue.Name)
		assert.Equal(t, `hover`, ue.State)
	}
}

func TestResolverReloadAndClose(t *testing.T) {
	fsys := assets(t)
	r, err := resolve.New(fsys)
	require.NoError(t, err)
	old, err := r.Resolve(`icon`, resolve.Normal)
	require.NoError(t, err)

	var reloads int
	r.OnReload(func() { reloads++ })

	fsys[`slider.9.png`] = &fstest.MapFile{Data: ninePatchPNG(t, 14)}
	delete(fsys, `icon.png`)
	require.NoError(t, r.Reload())
	assert.Equal(t, 1, reloads)
	assert.Contains(t, r.Names(), `slider`)
	assert.NotContains(t, r.Names(), `icon`)
	// images of the previous set are closed
	_, err = old.Render(image.Pt(16, 16))
	assert.True(t, errors.Is(err, consts.ErrClosed))

	require.NoError(t, r.Close())
	_, err = r.Resolve(`slider`, resolve.Normal)
	assert.True(t, errors.Is(err, consts.ErrClosed))
	assert.Empty(t, r.Names())
	assert.NoError(t, r.Close())
}

func TestDecode(t *testing.T) {
	img, err := resolve.Decode(bytes.NewReader(ninePatchPNG(t, 12)), `frame@2x.9.png`)
	require.NoError(t, err)
	n, ok := img.(*patch.NinePatch)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Density())

	// same file without the marker is a fixed image, border included
	img, err = resolve.Decode(bytes.NewReader(ninePatchPNG(t, 12)), `frame.png`)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(14, 14), img.NaturalSize())

	_, err = resolve.Decode(strings.NewReader(`not an image`), `x.9.png`)
	assert.True(t, errors.Is(err, consts.ErrNotImage))

	_, err = resolve.Decode(bytes.NewReader(plainPNG(t, 8)), `x.9.png`)
	assert.True(t, errors.Is(err, consts.ErrNotNinePatch))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, `button.9.png`), ninePatchPNG(t, 12), 0o644))
	r, err := resolve.Open(dir)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, []string{`button`}, r.Names())

	_, err = resolve.Open(filepath.Join(dir, `button.9.png`))
	assert.Error(t, err)
	_, err = resolve.Open(filepath.Join(dir, `missing`))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, `button.9.png`), ninePatchPNG(t, 12), 0o644))
	r, err := resolve.Open(dir)
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	data := ninePatchPNG(t, 10)
	// the file is rewritten until the watcher has picked it up
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, `tab.9.png`), data, 0o644)
		for _, name := range r.Names() {
			if name == `tab` {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal(`Watch did not return after cancel`)
	}
}

func TestWatchRequiresDirectory(t *testing.T) {
	r, err := resolve.New(assets(t))
	require.NoError(t, err)
	defer r.Close()
	assert.Error(t, r.Watch(context.Background()))
}
