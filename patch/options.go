package patch

import (
	"log/slog"

	"github.com/srlehn/ninepatch/internal/errors"
)

// Option configures a NinePatch or a Fixed image.
type Option interface {
	ApplyOption(o *options) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*options) error

func (o OptFunc) ApplyOption(opts *options) error { return o(opts) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(opts *options) error { return opts.apply([]Option(o)...) }

type options struct {
	resizer Resizer
	density float64
	logger  *slog.Logger
}

func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(o); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{density: 1}
	if err := o.apply(opts...); err != nil {
		return nil, err
	}
	return o, nil
}

// SetResizer sets the scaler for stretchable tiles.
// A nil Resizer selects bilinear scaling.
func SetResizer(rsz Resizer) Option {
	return OptFunc(func(o *options) error { o.resizer = rsz; return nil })
}

// SetDensity sets the device pixel density of the source image,
// e.g. 2 for "@2x" assets.
func SetDensity(density float64) Option {
	return OptFunc(func(o *options) error {
		if !ValidDensity(density) {
			return errors.Errorf(`invalid pixel density %v`, density)
		}
		o.density = density
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(o *options) error {
		if enable {
			if h == nil {
				o.logger = slog.Default()
			} else {
				o.logger = slog.New(h)
			}
		} else {
			o.logger = nil
		}
		return nil
	})
}

// SetLogger is SetSLogger for an existing *slog.Logger.
func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(o *options) error { o.logger = logger; return nil })
}
