package resolve

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/srlehn/ninepatch/internal/consts"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/logx"
)

const reloadOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch reloads the asset set whenever a file in the directory is created,
// written, removed or renamed. It blocks until ctx is done.
// Only resolvers created with Open can be watched.
func (r *Resolver) Watch(ctx context.Context) error {
	if r == nil {
		return errors.NilReceiver()
	}
	if err := errors.NilParam(ctx); err != nil {
		return err
	}
	if len(r.dir) == 0 {
		return errors.New(`resolver has no directory to watch`)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New(err)
	}
	defer watcher.Close()
	if err := watcher.Add(r.dir); err != nil {
		return errors.New(err)
	}
	logx.Debug(`watching assets`, r, `dir`, r.dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&reloadOps == 0 {
				continue
			}
			logx.Debug(`asset changed`, r, `file`, event.Name, `op`, event.Op.String())
			err := r.Reload()
			if errors.Is(err, consts.ErrClosed) {
				return nil
			}
			logx.IsErr(err, r, slog.LevelWarn)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logx.IsErr(err, r, slog.LevelWarn)
		}
	}
}
