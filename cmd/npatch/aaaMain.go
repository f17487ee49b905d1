package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/ninepatch/config"
	"github.com/srlehn/ninepatch/internal/errors"
	"github.com/srlehn/ninepatch/internal/logx"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "npatch render nine-patch images",
	Long:             "npatch render nine-patch images",
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, ``, `TOML config file`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

var (
	debugFlag      bool
	silentFlag     bool
	logFileFlag    string
	configFlag     string
	cpuProfileFlag string
	cpuProfilefunc func(profileDir string) func()
)

// env is set up by run before the command function is called.
type env struct {
	conf   *config.Config
	logger *slog.Logger
}

func (e *env) Logger() *slog.Logger {
	if e == nil {
		return nil
	}
	return e.logger
}

func (e *env) handler() slog.Handler {
	if e == nil || e.logger == nil {
		return nil
	}
	return e.logger.Handler()
}

var _ logx.LoggerProvider = (*env)(nil)

func run(fn func(e *env) error) {
	var exitCode int
	defer func() { os.Exit(exitCode) }()
	if fn == nil {
		exitCode = 1
		fmt.Fprintln(os.Stderr, errors.NilParam().Error())
		return
	}
	if len(cpuProfileFlag) > 0 && cpuProfilefunc != nil {
		defer cpuProfilefunc(cpuProfileFlag)()
	}
	e, cleanUp, err := newEnv()
	if err == nil {
		defer cleanUp()
		err = fn(e)
	}
	if err != nil {
		logx.IsErr(err, e, slog.LevelError)
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}

func newEnv() (*env, func(), error) {
	e := &env{conf: config.Default()}
	if len(configFlag) > 0 {
		c, err := config.Load(configFlag)
		if err != nil {
			return nil, nil, err
		}
		e.conf = c
	}
	cleanUp := func() {}
	var w io.Writer
	switch {
	case len(logFileFlag) > 0:
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, errors.New(err)
		}
		w = f
		cleanUp = func() { _ = f.Close() }
	case debugFlag:
		w = os.Stderr
	}
	if w != nil {
		lvl := e.conf.Level()
		if debugFlag {
			lvl = slog.LevelDebug
		}
		e.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true, Level: lvl}))
	}
	return e, cleanUp, nil
}
