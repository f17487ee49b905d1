package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/srlehn/ninepatch"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/logx"
	"github.com/srlehn/ninepatch/resolve"
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveStateFlag, `state`, `S`, ``, `widget state, e.g. "checked|hover"`)
	resolveCmd.Flags().StringVarP(&resolveOutputFlag, `output`, `o`, ``, `output file, the image is not rendered if empty`)
	resolveCmd.Flags().Float64VarP(&resolveDensityFlag, `density`, `D`, 0, `device pixel density, overrides the config`)
	resolveCmd.Flags().BoolVarP(&resolveWatchFlag, `watch`, `w`, false, `re-render on asset changes until interrupted`)
	rootCmd.AddCommand(resolveCmd)
}

var (
	resolveStateFlag   string
	resolveOutputFlag  string
	resolveDensityFlag float64
	resolveWatchFlag   bool
)

var resolveCmd = &cobra.Command{
	Use:   `resolve <dir> <name> [<w>x<h>]`,
	Short: `look up a themed asset`,
	Long: `Look up the asset for a name and widget state in an asset directory.

States are tried from checked, pressed, hover to focused before the plain
name. The device density is preferred, then the highest density available.
Without a size the candidate files are listed.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		run(resolveFunc(args))
	},
}

func resolveFunc(args []string) func(e *env) error {
	return func(e *env) error {
		st, ok := resolve.ParseState(resolveStateFlag)
		if !ok {
			return errors.Errorf(`invalid state %q`, resolveStateFlag)
		}
		conf := *e.conf
		conf.Assets = args[0]
		if resolveDensityFlag > 0 {
			conf.Density = resolveDensityFlag
		}
		r, err := ninepatch.NewResolver(&conf, e.handler())
		if err != nil {
			return err
		}
		defer r.Close()
		name := args[1]
		if len(args) < 3 {
			for _, candidate := range resolve.Candidates(name, st) {
				for _, file := range r.Files(candidate) {
					fmt.Println(file)
				}
			}
			return nil
		}
		size, err := parseSize(args[2])
		if err != nil {
			return err
		}
		renderTo := func() error {
			img, err := r.Resolve(name, st)
			if err != nil {
				return err
			}
			bmp, err := img.Render(size)
			if err != nil {
				return err
			}
			if len(resolveOutputFlag) == 0 {
				fmt.Printf("%dx%d\n", bmp.Bounds().Dx(), bmp.Bounds().Dy())
				return nil
			}
			return writeImage(resolveOutputFlag, bmp)
		}
		if err := renderTo(); err != nil || !resolveWatchFlag {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		r.OnReload(func() { logx.IsErr(renderTo(), e, slog.LevelWarn) })
		return r.Watch(ctx)
	}
}
