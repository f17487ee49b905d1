// Package resolve loads a directory of image assets and picks the best
// match for a logical name, widget state and pixel density.
//
// Asset files follow the naming scheme
//
//	<base>[-<state>][@<density>x][.9].<ext>
//
// e.g. "button-pressed@2x.9.png" is the pressed state of "button" for
// density 2 as a nine-patch.
package resolve

import (
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sort"
	"sync"

	"github.com/srlehn/ninepatch/internal"
	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/logx"
	"github.com/srlehn/ninepatch/internal/util"
	"github.com/srlehn/ninepatch/patch"
)

// Resolver maps asset names to images.
//
// Lookups may run concurrently with Watch reloading the asset set. The
// returned images are shared between callers of Resolve and are not safe
// for concurrent rendering.
type Resolver struct {
	mu      sync.RWMutex
	fsys    fs.FS
	dir     string
	assets  map[string][]asset
	closer  internal.Closer
	closed  bool
	density float64
	resizer patch.Resizer
	logger  *slog.Logger
	// called after each reload
	onReload []func()
}

type asset struct {
	file string
	name Name
	img  patch.Image
}

var _ logx.LoggerProvider = (*Resolver)(nil)

// New loads every image below the root of fsys.
// Files that are not images are skipped, as are nine-patches with broken
// guides (logged at warn level). Directories only group files: a file whose
// name equals one loaded earlier in lexical walk order is skipped with a
// warning.
func New(fsys fs.FS, opts ...Option) (*Resolver, error) {
	if err := errors.NilParam(fsys); err != nil {
		return nil, err
	}
	r := &Resolver{fsys: fsys, density: 1}
	if err := r.apply(opts...); err != nil {
		return nil, err
	}
	assets, closer, err := r.load()
	if err != nil {
		return nil, err
	}
	r.assets = assets
	r.closer = closer
	return r, nil
}

// Open loads the assets in dir. Resolvers created by Open can Watch dir for
// changes.
func Open(dir string, opts ...Option) (*Resolver, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, errors.New(err)
	}
	if !fi.IsDir() {
		return nil, errors.Errorf(`%q is not a directory`, dir)
	}
	r, err := New(os.DirFS(dir), opts...)
	if err != nil {
		return nil, err
	}
	r.dir = dir
	return r, nil
}

// Logger implements logx.LoggerProvider.
func (r *Resolver) Logger() *slog.Logger {
	if r == nil {
		return nil
	}
	return r.logger
}

// Density is the preferred asset density.
func (r *Resolver) Density() float64 {
	if r == nil {
		return 1
	}
	return r.density
}

func (r *Resolver) imageOptions() []patch.Option {
	return []patch.Option{
		patch.SetResizer(r.resizer),
		patch.SetLogger(r.logger),
	}
}

func (r *Resolver) load() (map[string][]asset, internal.Closer, error) {
	assets := make(map[string][]asset)
	closer := internal.NewCloser()
	err := fs.WalkDir(r.fsys, `.`, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(r.fsys, file)
		if err != nil {
			logx.Warn(`unreadable asset skipped`, r, `file`, file, `error`, err)
			return nil
		}
		if !IsImage(data) {
			return nil
		}
		n := ParseName(file)
		if i := slices.IndexFunc(assets[n.Base], func(a asset) bool { return a.name == n }); i >= 0 {
			logx.Warn(`duplicate asset skipped`, r, `file`, file, `kept`, assets[n.Base][i].file)
			return nil
		}
		img, err := decode(data, n, r.imageOptions()...)
		if err != nil {
			logx.Warn(`broken asset skipped`, r, `file`, file, `error`, err)
			return nil
		}
		closer.AddClosers(img)
		assets[n.Base] = append(assets[n.Base], asset{file: file, name: n, img: img})
		return nil
	})
	if err != nil {
		_ = closer.Close()
		return nil, nil, errors.New(err)
	}
	for _, list := range assets {
		sortAssets(list)
	}
	logx.Debug(`assets loaded`, r, `count`, len(assets))
	return assets, closer, nil
}

// sortAssets orders assets of the same base name by descending density,
// nine-patches before fixed images.
func sortAssets(list []asset) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].name, list[j].name
		if a.Density != b.Density {
			return a.Density > b.Density
		}
		return a.NinePatch && !b.NinePatch
	})
}

// Resolve returns the image for base in state st.
//
// The state suffixes are tried from the most specific state (checked,
// pressed, hover, focused) down to the plain base name. For each name the
// preferred density is tried first, then the remaining densities from
// high to low; within a density nine-patches win over fixed images.
func (r *Resolver) Resolve(base string, st State) (patch.Image, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, errors.New(consts.ErrClosed)
	}
	for _, candidate := range Candidates(base, st) {
		list := r.assets[candidate]
		if len(list) == 0 {
			continue
		}
		for _, a := range list {
			if a.name.Density == r.density {
				logx.Debug(`asset resolved`, r, `name`, base, `state`, st, `file`, a.file)
				return a.img, nil
			}
		}
		a := list[0]
		logx.Debug(`asset resolved`, r, `name`, base, `state`, st, `file`, a.file)
		return a.img, nil
	}
	var state string
	if st != Normal {
		state = st.String()
	}
	logx.Warn(`could not find image`, r, `name`, base, `state`, st)
	return nil, errors.UnresolvedAsset(base, state)
}

// Names returns the sorted base names of all loaded assets, state
// suffixes included.
func (r *Resolver) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := util.MapsKeysSorted(r.assets)
	if names == nil {
		return []string{}
	}
	return names
}

// Files returns the asset files loaded for base, in resolution order for
// the preferred density.
func (r *Resolver) Files(base string) []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var preferred, rest []string
	for _, a := range r.assets[base] {
		if a.name.Density == r.density {
			preferred = append(preferred, a.file)
		} else {
			rest = append(rest, a.file)
		}
	}
	return append(preferred, rest...)
}

// Reload replaces the asset set with the current contents of the file
// system. Previously resolved images are closed.
func (r *Resolver) Reload() error {
	if r == nil {
		return errors.NilReceiver()
	}
	assets, closer, err := r.load()
	if err != nil {
		return err
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return errors.Join(errors.New(consts.ErrClosed), closer.Close())
	}
	old := r.closer
	r.assets = assets
	r.closer = closer
	onReload := slices.Clone(r.onReload)
	r.mu.Unlock()
	var errClose error
	if old != nil {
		errClose = old.Close()
	}
	for _, fn := range onReload {
		fn()
	}
	return errClose
}

// OnReload registers fn to be called after the asset set was replaced.
func (r *Resolver) OnReload(fn func()) {
	if r == nil || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onReload = append(r.onReload, fn)
}

// Close closes all loaded images.
func (r *Resolver) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.assets = nil
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
