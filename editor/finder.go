package editor

import (
	"io"
	"log/slog"
	"os"
)

// StandardEnvVars are checked, in order, after any extra variables.
var StandardEnvVars = []string{"VISUAL", "EDITOR"}

// Finder finds and opens an editor. A Finder is immutable once built and
// safe to share.
type Finder struct {
	extraEnvVars []string
	ignoreEmpty  bool
	lookupEnv    func(string) (string, bool)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *slog.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithExtraEnvVars adds environment variables that are checked before
// StandardEnvVars, in the order given.
func WithExtraEnvVars(names ...string) Option {
	return func(f *Finder) {
		f.extraEnvVars = append(f.extraEnvVars, names...)
	}
}

// WithIgnoreEmpty makes variables set to the empty string count as unset.
// By default an empty value is used as-is and later fails to split.
func WithIgnoreEmpty(ignore bool) Option {
	return func(f *Finder) {
		f.ignoreEmpty = ignore
	}
}

// WithLookupEnv replaces os.LookupEnv for every variable the Finder reads,
// including PATH and PATHEXT.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(f *Finder) {
		if lookup != nil {
			f.lookupEnv = lookup
		}
	}
}

// WithStdio sets the streams handed to the editor process.
// Nil streams keep the process defaults.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(f *Finder) {
		if stdin != nil {
			f.stdin = stdin
		}
		if stdout != nil {
			f.stdout = stdout
		}
		if stderr != nil {
			f.stderr = stderr
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Finder.
func New(opts ...Option) *Finder {
	f := &Finder{
		lookupEnv: os.LookupEnv,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	// Options must not alias the caller's slice.
	f.extraEnvVars = append([]string(nil), f.extraEnvVars...)
	return f
}

// ExtraEnvVars returns a copy of the extra variable names.
func (f *Finder) ExtraEnvVars() []string {
	return append([]string(nil), f.extraEnvVars...)
}

// EditorName returns the raw editor command.
// Priority: extra variables → $VISUAL → $EDITOR → DefaultEditor
//
// The result may contain arguments (e.g. "code --wait"); use SplitEditorName
// to separate them. EditorName never fails.
func (f *Finder) EditorName() string {
	if name, ok := f.firstSet(f.extraEnvVars); ok {
		return name
	}
	if name, ok := f.firstSet(StandardEnvVars); ok {
		return name
	}
	f.logger.Debug("No editor variable set, using default", "editor", DefaultEditor)
	return DefaultEditor
}

func (f *Finder) firstSet(keys []string) (string, bool) {
	for _, key := range keys {
		value, ok := f.lookupEnv(key)
		if !ok {
			continue
		}
		if value == "" && f.ignoreEmpty {
			continue
		}
		f.logger.Debug("Editor variable found", "variable", key, "value", value)
		return value, true
	}
	return "", false
}

// SplitEditorName looks up the editor with EditorName and splits it into a
// command and its arguments.
func (f *Finder) SplitEditorName() (Command, error) {
	return SplitEditorName(f.EditorName())
}

// EditorName returns the raw editor command using a default Finder.
func EditorName() string {
	return New().EditorName()
}
