package editor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolved is an editor command whose executable was found through PATH.
type Resolved struct {
	Path string
	Args []string
}

// WhichEditor splits the editor command with SplitEditorName and finds its
// executable with LookPath semantics. The arguments are returned unchanged.
func (f *Finder) WhichEditor() (Resolved, error) {
	cmd, err := f.SplitEditorName()
	if err != nil {
		return Resolved{}, err
	}

	path, err := f.lookPath(cmd.Name)
	if err != nil {
		return Resolved{}, err
	}

	f.logger.Debug("Editor resolved", "command", cmd.Name, "path", path, "args", cmd.Args)
	return Resolved{Path: path, Args: cmd.Args}, nil
}

// LookPath finds the executable for name using the process environment.
//
// Unlike a shell, it never looks in the current directory for a bare name:
// only absolute PATH entries are searched, in order. A name containing a path
// separator is checked as given and nothing else is tried.
func LookPath(name string) (string, error) {
	return New().lookPath(name)
}

func (f *Finder) lookPath(name string) (string, error) {
	exts := executableExts(f.lookupEnv)

	if strings.ContainsAny(name, pathSeparators) {
		path, err := findExecutable(name, exts)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCommandNotFound, name, err)
		}
		return path, nil
	}

	pathEnv, _ := f.lookupEnv("PATH")
	for _, dir := range filepath.SplitList(pathEnv) {
		// Empty and relative entries name the current directory.
		if dir == "" || !filepath.IsAbs(dir) {
			f.logger.Debug("Skipping relative PATH entry", "entry", dir)
			continue
		}
		if path, err := findExecutable(filepath.Join(dir, name), exts); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrCommandNotFound, name)
}

// findExecutable returns the first executable among path and path with each
// extension in exts.
func findExecutable(path string, exts []string) (string, error) {
	var firstErr error
	for _, candidate := range candidates(path, exts) {
		err := checkExecutable(candidate)
		if err == nil {
			return candidate, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}

func candidates(path string, exts []string) []string {
	if len(exts) == 0 {
		return []string{path}
	}

	if ext := filepath.Ext(path); ext != "" {
		for _, e := range exts {
			if strings.EqualFold(ext, e) {
				return []string{path}
			}
		}
	}

	out := make([]string, 0, len(exts))
	for _, e := range exts {
		out = append(out, path+e)
	}
	return out
}

// WhichEditor resolves the editor using a default Finder.
func WhichEditor() (Resolved, error) {
	return New().WhichEditor()
}
