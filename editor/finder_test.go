package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestEditorName(t *testing.T) {
	tests := []struct {
		name     string
		extras   []string
		env      map[string]string
		expected string
	}{
		{
			name:     "nothing set falls back to default",
			env:      map[string]string{},
			expected: DefaultEditor,
		},
		{
			name:     "unknown variable is ignored",
			env:      map[string]string{"--UNKNOWN--": "foo"},
			expected: DefaultEditor,
		},
		{
			name:     "VISUAL",
			env:      map[string]string{"VISUAL": "foo"},
			expected: "foo",
		},
		{
			name:     "EDITOR",
			env:      map[string]string{"EDITOR": "bar"},
			expected: "bar",
		},
		{
			name:     "VISUAL takes priority over EDITOR",
			env:      map[string]string{"VISUAL": "foo", "EDITOR": "bar"},
			expected: "foo",
		},
		{
			name:     "extra variable",
			extras:   []string{"MY_EXTRA"},
			env:      map[string]string{"MY_EXTRA": "baz"},
			expected: "baz",
		},
		{
			name:     "extra variable takes priority over standard ones",
			extras:   []string{"MY_EXTRA"},
			env:      map[string]string{"MY_EXTRA": "baz", "VISUAL": "foo", "EDITOR": "bar"},
			expected: "baz",
		},
		{
			name:     "extra variables are checked in order",
			extras:   []string{"FIRST", "SECOND"},
			env:      map[string]string{"FIRST": "one", "SECOND": "two"},
			expected: "one",
		},
		{
			name:     "unset extra variable falls through",
			extras:   []string{"FIRST", "SECOND"},
			env:      map[string]string{"SECOND": "two", "EDITOR": "bar"},
			expected: "two",
		},
		{
			name:     "empty value counts as set",
			extras:   []string{"MY_EXTRA"},
			env:      map[string]string{"MY_EXTRA": "", "EDITOR": "bar"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(WithExtraEnvVars(tt.extras...), WithLookupEnv(envFrom(tt.env)))
			assert.Equal(t, tt.expected, f.EditorName())
		})
	}
}

func TestEditorName_IgnoreEmpty(t *testing.T) {
	env := envFrom(map[string]string{"MY_EXTRA": "", "VISUAL": "", "EDITOR": "bar"})

	f := New(WithExtraEnvVars("MY_EXTRA"), WithLookupEnv(env), WithIgnoreEmpty(true))
	assert.Equal(t, "bar", f.EditorName())

	f = New(WithLookupEnv(envFrom(map[string]string{"EDITOR": ""})), WithIgnoreEmpty(true))
	assert.Equal(t, DefaultEditor, f.EditorName())
}

func TestEditorName_ProcessEnvironment(t *testing.T) {
	t.Setenv("FINDEDITOR_TEST_EDITOR", "from-env")
	t.Setenv("VISUAL", "visual-editor")

	f := New(WithExtraEnvVars("FINDEDITOR_TEST_EDITOR"))
	assert.Equal(t, "from-env", f.EditorName())
	assert.Equal(t, "visual-editor", EditorName())
}

func TestNew_CopiesExtraEnvVars(t *testing.T) {
	extras := []string{"A", "B"}
	f := New(WithExtraEnvVars(extras...))

	extras[0] = "changed"
	got := f.ExtraEnvVars()
	got[1] = "changed"

	assert.Equal(t, []string{"A", "B"}, f.ExtraEnvVars())
}

func TestFinder_SplitEditorName(t *testing.T) {
	f := New(WithLookupEnv(envFrom(map[string]string{"EDITOR": "code --wait"})))

	cmd, err := f.SplitEditorName()

	assert.NoError(t, err)
	assert.Equal(t, "code", cmd.Name)
	assert.Equal(t, []string{"--wait"}, cmd.Args)
}
