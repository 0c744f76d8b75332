//go:build !windows

package editor

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const pathSeparators = "/"

func executableExts(func(string) (string, bool)) []string {
	return nil
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	if err := unix.Access(path, unix.X_OK); err != nil {
		return &os.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
