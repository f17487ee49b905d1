package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/srlehn/ninepatch"
	"github.com/srlehn/ninepatch/patch"
)

func init() { rootCmd.AddCommand(inspectCmd) }

var inspectCmd = &cobra.Command{
	Use:   `inspect <file>...`,
	Short: `print the guides of nine-patch images`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(inspectFunc(args))
	},
}

func inspectFunc(args []string) func(e *env) error {
	return func(e *env) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer w.Flush()
		for _, file := range args {
			img, err := ninepatch.Open(file, patch.SetLogger(e.Logger()))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\n", file)
			fmt.Fprintf(w, "  size:\t%s\n", fmtSize(img.NaturalSize()))
			n, ok := img.(*patch.NinePatch)
			if !ok {
				fmt.Fprintf(w, "  kind:\tfixed\n")
				_ = img.Close()
				continue
			}
			g := n.Guides()
			fmt.Fprintf(w, "  kind:\tnine-patch\n")
			fmt.Fprintf(w, "  density:\t%v\n", n.Density())
			fmt.Fprintf(w, "  logical size:\t%s\n", fmtSize(n.LogicalSize()))
			fmt.Fprintf(w, "  min size:\t%s\n", fmtSize(n.MinSize()))
			fmt.Fprintf(w, "  stretch x:\t%v\n", g.X)
			fmt.Fprintf(w, "  stretch y:\t%v\n", g.Y)
			if c, ok := n.ContentArea(); ok {
				fmt.Fprintf(w, "  content:\t%v\n", c)
			} else {
				fmt.Fprintf(w, "  content:\tnone\n")
			}
			_ = n.Close()
		}
		return nil
	}
}
