package editor

import "errors"

var (
	ErrEmptyEditorString     = errors.New("editor command is empty")
	ErrMalformedEditorString = errors.New("malformed editor command")
	ErrCommandNotFound       = errors.New("editor command not found in PATH")
	ErrSpawnFailed           = errors.New("failed to start editor")
)

// Kind classifies an error returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyEditorString
	KindMalformedEditorString
	KindCommandNotFound
	KindSpawnFailed
)

var kindNames = map[Kind]string{
	KindUnknown:               "Unknown",
	KindEmptyEditorString:     "EmptyEditorString",
	KindMalformedEditorString: "MalformedEditorString",
	KindCommandNotFound:       "CommandNotFound",
	KindSpawnFailed:           "SpawnFailed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// KindOf returns the Kind of err, looking through wrapped errors.
// A nil error and errors from outside this package are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyEditorString):
		return KindEmptyEditorString
	case errors.Is(err, ErrMalformedEditorString):
		return KindMalformedEditorString
	case errors.Is(err, ErrCommandNotFound):
		return KindCommandNotFound
	case errors.Is(err, ErrSpawnFailed):
		return KindSpawnFailed
	default:
		return KindUnknown
	}
}
