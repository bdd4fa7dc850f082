package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textops/textops/cmd/textops/commands"
	"github.com/textops/textops/pkg/testutil"

	// Register the operations the commands dispatch to
	_ "github.com/textops/textops/pkg/affix"
	_ "github.com/textops/textops/pkg/flatten"
	_ "github.com/textops/textops/pkg/listcodec"
	_ "github.com/textops/textops/pkg/transform"
)

// runCommand executes the root command with the given stdin and
// arguments, with XDG directories pointed at temp dirs so tests touch
// nothing real.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cmd := commands.NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCaseCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"lower", []string{"lower"}, "Hello World\n", "hello world\n"},
		{"upper", []string{"upper"}, "Hello World\n", "HELLO WORLD\n"},
		{"title", []string{"title"}, "o'brien jones\n", "O'brien Jones\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTrimCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"trim_whitespace", []string{"trim"}, "  abc  \n", "abc\n"},
		{"trim_cutset", []string{"trim", "x"}, "xxaxx", "a\n"},
		{"ltrim", []string{"ltrim", "x"}, "xxaxx", "axx\n"},
		{"rtrim", []string{"rtrim", "x"}, "xxaxx", "xxa\n"},
		{"squeeze", []string{"squeeze"}, "  a   b  \n", "a b\n"},
		{"squeeze_lines", []string{"squeeze-lines"}, "a\n\n\nb\n", "a\n\nb\n"},
		{"trim_lines", []string{"trim-lines"}, "\n\na\n", "a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestListCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"split_default_comma", []string{"split"}, "a, b,c\n", "a\nb\nc\n"},
		{"split_preserves_empty_tokens", []string{"split", ","}, "a,,b", "a\n\nb\n"},
		{"split_custom_delimiter", []string{"split", "::"}, "a::b", "a\nb\n"},
		{"join_default", []string{"join"}, "a\nb\nc\n", "a, b, c\n"},
		{"join_custom_delimiter", []string{"join", "-"}, "a\nb\n", "a-b\n"},
		{"sort_default_space", []string{"sort"}, "c b a\n", "a b c\n"},
		{"sort_unique", []string{"sort", "-u"}, "c b b b a\n", "a b c\n"},
		{"sort_reverse", []string{"sort", "-r"}, "a b c\n", "c b a\n"},
		{"sort_custom_delimiter", []string{"sort", ","}, "b,a\n", "a,b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAffixCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"prefix_from_args", []string{"common-prefix", "spam", "space"}, "", "spa\n"},
		{"prefix_from_stdin", []string{"common-prefix"}, "spam\nspace\n", "spa\n"},
		{"prefix_empty_result", []string{"common-prefix", "foo", "bar"}, "", ""},
		{"suffix_from_args", []string{"common-suffix", "broom", "groom"}, "", "room\n"},
		{"suffix_from_stdin", []string{"common-suffix"}, "foobar\nbabar\n", "bar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFlattenCommand(t *testing.T) {
	t.Setenv("TEXTOPS_TEST_NAME", "World")

	out, err := runCommand(t, "", "flatten", "Hello {{TEXTOPS_TEST_NAME}}!")
	require.NoError(t, err)
	assert.Equal(t, "Hello World!\n", out)
}

func TestFlattenExplicitNames(t *testing.T) {
	t.Setenv("TEXTOPS_A", "1")
	t.Setenv("TEXTOPS_B", "2")

	// Only the listed name is substituted
	out, err := runCommand(t, "", "flatten", "{{TEXTOPS_A}} {{TEXTOPS_B}}", "TEXTOPS_A")
	require.NoError(t, err)
	assert.Equal(t, "1 {{TEXTOPS_B}}\n", out)
}

func TestFlattenUnsetNameIsEmpty(t *testing.T) {
	out, err := runCommand(t, "", "flatten", "{{TEXTOPS_SURELY_UNSET_VAR}}", "TEXTOPS_SURELY_UNSET_VAR")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFlattenDelimiterOverride(t *testing.T) {
	t.Setenv("FLATTEN_L", "[[")
	t.Setenv("FLATTEN_R", "]]")
	t.Setenv("TEXTOPS_TEST_NAME", "yes")

	out, err := runCommand(t, "", "flatten", "[[TEXTOPS_TEST_NAME]] {{TEXTOPS_TEST_NAME}}")
	require.NoError(t, err)
	assert.Equal(t, "yes {{TEXTOPS_TEST_NAME}}\n", out)
}

func TestFlattenFileCommand(t *testing.T) {
	t.Setenv("TEXTOPS_TEST_NAME", "World")

	dir := testutil.TempDir(t, "cmd-test")
	path := testutil.CreateFile(t, dir, "greeting.txt", "Hello {{TEXTOPS_TEST_NAME}}!\n")

	out, err := runCommand(t, "", "flatten-file", path)
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, "Hello World!\n", testutil.ReadFile(t, path))
}

func TestFlattenFileMissing(t *testing.T) {
	_, err := runCommand(t, "", "flatten-file", "/nonexistent/path.txt")
	require.Error(t, err)
}

func TestOpsCommand(t *testing.T) {
	out, err := runCommand(t, "", "ops")
	require.NoError(t, err)

	for _, name := range []string{"lower", "sort", "common-prefix", "flatten-file"} {
		assert.Contains(t, out, name)
	}
}

func TestOpsPrefixFilter(t *testing.T) {
	out, err := runCommand(t, "", "ops", "trim")
	require.NoError(t, err)

	assert.Contains(t, out, "trim")
	assert.Contains(t, out, "trim-lines")
	assert.NotContains(t, out, "lower")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCommand(t, "", "frobnicate")
	require.Error(t, err)
}

func TestNoCommand(t *testing.T) {
	_, err := runCommand(t, "")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "textops version")
}
