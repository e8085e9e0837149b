//go:build unix

package shell

import "path/filepath"

func defaultConfigHome() (string, error) { return homeSubdir(".config") }

func defaultStateHome() (string, error) { return homeSubdir(".local", "state") }

func homeSubdir(elems ...string) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, elems...)...), nil
}
