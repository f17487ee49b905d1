package resolve

import (
	"log/slog"

	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/patch"
)

type Option interface {
	ApplyOption(r *Resolver) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Resolver) error

func (o OptFunc) ApplyOption(r *Resolver) error { return o(r) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(r *Resolver) error { return r.apply([]Option(o)...) }

func (r *Resolver) apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(r); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDensity sets the density of the output device. Assets of that density
// are preferred, the others are tried from the highest density down.
func SetDensity(density float64) Option {
	return OptFunc(func(r *Resolver) error {
		if !patch.ValidDensity(density) {
			return errors.Errorf(`invalid pixel density %v`, density)
		}
		r.density = density
		return nil
	})
}

// SetResizer sets the scaler used by every loaded nine-patch.
func SetResizer(rsz patch.Resizer) Option {
	return OptFunc(func(r *Resolver) error {
		r.resizer = rsz
		return nil
	})
}

// SetSLogger enables logging to h for the resolver and its images.
// A nil handler logs to slog.Default().
func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(r *Resolver) error {
		switch {
		case !enable:
			r.logger = nil
		case h == nil:
			r.logger = slog.Default()
		default:
			r.logger = slog.New(h)
		}
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(r *Resolver) error { r.logger = logger; return nil })
}
