package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/intersperse"
)

// execute runs the root command with a config path that does not exist
// unless config is non-empty, so the user's own config never leaks in.
func execute(t *testing.T, stdin, config string, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if config != "" {
		require.NoError(t, os.WriteFile(path, []byte(config), 0o600))
	}
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", path}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"args":         {args: []string{"a", "b", "c"}, want: "a, b, c\n"},
		"single arg":   {args: []string{"a"}, want: "a\n"},
		"custom sep":   {args: []string{"-s", ";", "1", "2", "3"}, want: "1;2;3\n"},
		"empty sep":    {args: []string{"--sep=", "1", "2"}, want: "12\n"},
		"no newline":   {args: []string{"--newline=false", "a", "b"}, want: "a, b"},
		"quoted":       {args: []string{"-r", "quoted", "a", "b"}, want: `"a", "b"` + "\n"},
		"json":         {args: []string{"-r", "json", "a\"b"}, want: `"a\"b"` + "\n"},
		"csv":          {args: []string{"-s", ",", "-r", "csv", "a", "b,c"}, want: `a,"b,c"` + "\n"},
		"template":     {args: []string{"-r", "go-template=[{{.}}]", "x", "y"}, want: "[x], [y]\n"},
		"stdin":        {stdin: "one\ntwo\nthree\n", want: "one, two, three\n"},
		"stdin sep":    {stdin: "1\n2\n", args: []string{"-s", " + "}, want: "1 + 2\n"},
		"empty stdin":  {stdin: "", want: "\n"},
		"empty stdin2": {stdin: "", args: []string{"-n=false"}, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tt.stdin, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunStderr(t *testing.T) {
	t.Parallel()
	out, errOut, err := execute(t, "", "", "--stderr", "a", "b")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "a, b\n", errOut)
}

func TestRunConfig(t *testing.T) {
	t.Parallel()
	config := "separator = \" | \"\nrenderer = \"quoted\"\nnewline = false\n"
	out, _, err := execute(t, "", config, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, `"a" | "b"`, out)
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	t.Parallel()
	config := "separator = \" | \"\nrenderer = \"quoted\"\nnewline = false\n"
	out, _, err := execute(t, "", config, "-s", "/", "-r", "plain", "--newline", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a/b\n", out)
}

func TestRunUnknownRenderer(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, "", "", "-r", "xml", "a")
	require.ErrorIs(t, err, intersperse.ErrUnsupportedRenderer)
	assert.Contains(t, errOut, "unsupported renderer")
}

func TestRunInvalidTemplate(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", "", "-r", "go-template={{", "a")
	require.ErrorIs(t, err, intersperse.ErrInvalidTemplate)
}

func TestRunInvalidConfig(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, "", "renderer = \n", "a")
	require.Error(t, err)
	assert.Contains(t, errOut, "load config failed")
}

func TestRunVerboseLogs(t *testing.T) {
	t.Parallel()
	out, errOut, err := execute(t, "", "", "-v", "-s", ":", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a:b\n", out)
	assert.Contains(t, errOut, "writing items")
}

func TestRunWriteError(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "a"})
	cmd.SetOut(&errWriter{})
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	require.ErrorIs(t, err, errWriteFailed)
	assert.Contains(t, errOut.String(), "write failed")
}

func TestRunLongLineError(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 70*1024)
	_, _, err := execute(t, long+"\n", "")
	require.Error(t, err)
}

func TestNewRootCmdFlags(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	for _, name := range []string{"sep", "render", "newline", "stderr", "verbose", "config"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Contains(t, cmd.Long, "go-template=<tmpl>")
}

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}
