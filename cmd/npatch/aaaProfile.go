//go:build dev

package main

import (
	"github.com/pkg/profile"
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cpuProfileFlag, `cpuprofile`, `p`, ``, `write cpu profile to directory`)
	cpuProfilefunc = profileFunc
}

func profileFunc(profileDir string) func() {
	return profile.Start(
		profile.CPUProfile,
		profile.ProfilePath(profileDir),
		profile.Quiet,
		profile.NoShutdownHook,
	).Stop
}
