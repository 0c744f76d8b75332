package editor

import (
	"errors"
	"fmt"
	"os/exec"
)

// Outcome describes an editor process started by OpenEditor.
type Outcome struct {
	// Pid of the editor process.
	Pid int
	// Waited reports whether OpenEditor waited for the editor to exit.
	// ExitCode is meaningless when it is false.
	Waited bool
	// ExitCode is the editor's exit status, or -1 when it was killed by a signal.
	ExitCode int
}

// Success reports whether the editor was waited for and exited with status 0.
func (o Outcome) Success() bool {
	return o.Waited && o.ExitCode == 0
}

// OpenEditor opens file in the editor found by WhichEditor. The editor inherits
// the Finder's standard streams.
//
// With wait set, OpenEditor blocks until the editor exits and reports its exit
// status; a non-zero status is not an error. Without wait it returns as soon as
// the process has started. When in doubt, wait: most terminal editors need the
// caller to stay out of the way until they exit.
func (f *Finder) OpenEditor(file string, wait bool) (Outcome, error) {
	resolved, err := f.WhichEditor()
	if err != nil {
		return Outcome{}, err
	}
	return f.launch(resolved, file, wait)
}

func (f *Finder) launch(r Resolved, file string, wait bool) (Outcome, error) {
	args := make([]string, 0, len(r.Args)+1)
	args = append(args, r.Args...)
	args = append(args, file)

	cmd := exec.Command(r.Path, args...)
	cmd.Stdin = f.stdin
	cmd.Stdout = f.stdout
	cmd.Stderr = f.stderr

	f.logger.Info("Opening editor", "editor", r.Path, "args", args, "wait", wait)

	if err := cmd.Start(); err != nil {
		return Outcome{}, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, r.Path, err)
	}
	outcome := Outcome{Pid: cmd.Process.Pid}

	if !wait {
		// Reap the child so it does not linger as a zombie.
		go func() {
			if err := cmd.Wait(); err != nil {
				f.logger.Warn("Editor exited with error", "error", err, "editor", r.Path)
				return
			}
			f.logger.Debug("Editor exited", "editor", r.Path)
		}()
		return outcome, nil
	}

	err := cmd.Wait()
	outcome.Waited = true
	if cmd.ProcessState != nil {
		outcome.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return outcome, fmt.Errorf("failed waiting for editor: %w", err)
	}

	f.logger.Debug("Editor exited", "editor", r.Path, "exit_code", outcome.ExitCode)
	return outcome, nil
}

// OpenEditor opens file using a default Finder.
func OpenEditor(file string, wait bool) (Outcome, error) {
	return New().OpenEditor(file, wait)
}
