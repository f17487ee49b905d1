package main

import (
	"github.com/spf13/cobra"

	"github.com/srlehn/ninepatch"
	"github.com/srlehn/ninepatch/internal/logx"
	"github.com/srlehn/ninepatch/patch"
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutputFlag, `output`, `o`, `out.png`, `output file`)
	renderCmd.Flags().StringVarP(&renderResizerFlag, `resizer`, `r`, ``, `tile scaler, overrides the config`)
	renderCmd.Flags().BoolVarP(&renderLogicalFlag, `logical`, `L`, false, `size is in logical pixels`)
	rootCmd.AddCommand(renderCmd)
}

var (
	renderOutputFlag  string
	renderResizerFlag string
	renderLogicalFlag bool
)

var renderCmd = &cobra.Command{
	Use:   `render <file> <w>x<h>`,
	Short: `render an image at a size`,
	Long: `Render an image at a size and write the result.

Files with the ".9" marker are rendered as nine-patches, the density
suffix ("@2x") sets the pixel density. Other images are written unscaled.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(renderFunc(args))
	},
}

func renderFunc(args []string) func(e *env) error {
	return func(e *env) error {
		size, err := parseSize(args[1])
		if err != nil {
			return err
		}
		rszName := e.conf.Resizer
		if len(renderResizerFlag) > 0 {
			rszName = renderResizerFlag
		}
		rsz, err := ninepatch.ResizerByName(rszName)
		if err != nil {
			return err
		}
		img, err := ninepatch.Open(args[0], patch.SetResizer(rsz), patch.SetLogger(e.Logger()))
		if err != nil {
			return err
		}
		defer img.Close()
		var bmp *patch.Bitmap
		if n, ok := img.(*patch.NinePatch); ok && renderLogicalFlag {
			bmp, err = n.RenderLogical(size)
		} else {
			bmp, err = img.Render(size)
		}
		if err != nil {
			return err
		}
		logx.Info(`rendered`, e, `file`, args[0], `size`, bmp.Bounds().Size(), `output`, renderOutputFlag)
		return writeImage(renderOutputFlag, bmp)
	}
}
