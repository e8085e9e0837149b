package testutil

import (
	"os"

	"github.com/Twisol/molt/pkg/env"
	"github.com/Twisol/molt/pkg/must"
)

// InTempDir creates a temporary directory, changes into it for the duration
// of the test and returns its path.
func InTempDir(c TempDirer) string {
	dir := c.TempDir()
	old := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(old) })
	return dir
}

// TempHome points HOME and the XDG base directories at a fresh temporary
// directory for the duration of the test and returns it.
func TempHome(c TempDirer) string {
	dir := c.TempDir()
	Setenv(c, env.HOME, dir)
	Unsetenv(c, env.XDG_CONFIG_HOME)
	Unsetenv(c, env.XDG_STATE_HOME)
	return dir
}
