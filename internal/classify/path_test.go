package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain path", input: "src/lib.rs", want: "src/lib.rs"},
		{name: "traversal dropped", input: "a/../b", want: "a/b"},
		{name: "only traversal", input: "..", want: "unknown"},
		{name: "nested traversal", input: "../../etc/passwd", want: "etc/passwd"},
		{name: "empty", input: "", want: "unknown"},
		{name: "whitespace", input: "  ", want: "unknown"},
		{name: "slashes only", input: "///", want: "unknown"},
		{name: "backslashes", input: `foo\bar\baz.go`, want: "foo/bar/baz.go"},
		{name: "empty segments collapsed", input: "a//b", want: "a/b"},
		{name: "trimmed", input: "  src/main.go  ", want: "src/main.go"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SanitizeRelativePath(tt.input))
		})
	}
}

func TestSanitizeRelativePathNeverContainsTraversal(t *testing.T) {
	t.Parallel()

	inputs := []string{"..", "../..", "a/../../b", `..\..\win`, "x/.././../y"}
	for _, input := range inputs {
		got := SanitizeRelativePath(input)
		for _, seg := range strings.Split(got, "/") {
			assert.NotEqual(t, "..", seg, "input %q produced %q", input, got)
		}
	}
}

func TestSanitizeRelativePathTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 3000)
	got := SanitizeRelativePath(long)
	assert.Len(t, got, 2048)

	// Truncation is character-wise, not byte-wise.
	wide := strings.Repeat("é", 3000)
	got = SanitizeRelativePath(wide)
	assert.Equal(t, 2048, len([]rune(got)))
}

func TestProjectNameFromRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "/home/user/code-time", want: "code-time"},
		{input: `C:\Users\dev\my-project`, want: "my-project"},
		{input: "/home/u/proj/", want: "proj"},
		{input: "proj", want: "proj"},
		{input: "", want: "unknown"},
		{input: "/", want: "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ProjectNameFromRoot(tt.input))
		})
	}
}
