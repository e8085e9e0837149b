package shell

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Twisol/molt/pkg/env"
)

// Paths keeps the locations of the files the shell uses. An empty path
// disables the corresponding feature.
type Paths struct {
	Config  string
	RC      string
	History string
}

var errNoHome = errors.New("cannot determine home directory")

func homeDir() (string, error) {
	if home := os.Getenv(env.HOME); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errNoHome
	}
	return home, nil
}

// ConfigPath returns the default path of config.yaml.
func ConfigPath() (string, error) {
	dir, err := xdgDir(env.XDG_CONFIG_HOME, defaultConfigHome)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "molt", "config.yaml"), nil
}

// HistoryPath returns the default path of the history database.
func HistoryPath() (string, error) {
	dir, err := xdgDir(env.XDG_STATE_HOME, defaultStateHome)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "molt", "history.db"), nil
}

// RCPath returns the default path of the rc script, evaluated in interactive
// mode.
func RCPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".moltrc"), nil
}

// Returns the value of the environment variable if it is an absolute path,
// and the platform default otherwise.
func xdgDir(name string, fallback func() (string, error)) (string, error) {
	if dir := os.Getenv(name); filepath.IsAbs(dir) {
		return dir, nil
	}
	return fallback()
}
