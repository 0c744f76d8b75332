//go:build windows

package editor

import (
	"fmt"
	"os"
	"strings"
)

const pathSeparators = `\/:`

var defaultPathExt = []string{".com", ".exe", ".bat", ".cmd"}

func executableExts(lookupEnv func(string) (string, bool)) []string {
	pathExt, ok := lookupEnv("PATHEXT")
	if !ok || pathExt == "" {
		return defaultPathExt
	}

	var exts []string
	for _, e := range strings.Split(strings.ToLower(pathExt), ";") {
		if e == "" {
			continue
		}
		if e[0] != '.' {
			e = "." + e
		}
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		return defaultPathExt
	}
	return exts
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
