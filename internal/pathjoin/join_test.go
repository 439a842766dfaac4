package pathjoin

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"no segments", nil, ""},
		{"empty slice", []string{}, ""},
		{"single", []string{"a"}, "a"},
		{"two", []string{"a", "b"}, "a/b"},
		{"boundary slashes", []string{"/a/", "/b/"}, "a/b"},
		{"empty middle keeps position", []string{"a/", "", "/b"}, "a//b"},
		{"all slashes", []string{"///"}, ""},
		{"single slash", []string{"/"}, ""},
		{"two empties", []string{"", ""}, "/"},
		{"interior slashes kept", []string{"//a//b//", "c"}, "a//b/c"},
		{"url base", []string{"https://api.example.com/", "/v1/", "users"}, "https://api.example.com/v1/users"},
		{"unicode", []string{"/héllo/", "世界"}, "héllo/世界"},
		{"whitespace untouched", []string{" a ", " b"}, " a / b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Join(tc.segments...))
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/", ""},
		{"///", ""},
		{"a", "a"},
		{"/a", "a"},
		{"a/", "a"},
		{"//a/b//", "a/b"},
		{"a//b", "a//b"},
		{`\a\`, `\a\`},
	}

	for _, tc := range tests {
		if got := Strip(tc.input); got != tc.want {
			t.Errorf("Strip(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestJoinBase(t *testing.T) {
	assert.Equal(t, "api/v1/users/42", JoinBase("/api/v1/", "users", "/42"))
	assert.Equal(t, "api", JoinBase("/api/"))
	assert.Equal(t, "", JoinBase(""))
}

func TestExplain(t *testing.T) {
	traces := Explain("/a/", "", "b//")
	require.Len(t, traces, 3)

	assert.Equal(t, SegmentTrace{Index: 0, Raw: "/a/", Stripped: "a"}, traces[0])
	assert.Equal(t, SegmentTrace{Index: 1, Raw: "", Stripped: ""}, traces[1])
	assert.Equal(t, SegmentTrace{Index: 2, Raw: "b//", Stripped: "b"}, traces[2])

	assert.Empty(t, Explain())
}

func TestExplain_MatchesJoin(t *testing.T) {
	f := func(segments []string) bool {
		traces := Explain(segments...)
		parts := make([]string, len(traces))
		for i, tr := range traces {
			parts[i] = tr.Stripped
		}
		return strings.Join(parts, Separator) == Join(segments...)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestJoin_Idempotent(t *testing.T) {
	f := func(segments []string) bool {
		joined := Join(segments...)
		if strings.HasPrefix(joined, Separator) || strings.HasSuffix(joined, Separator) {
			// Outer slashes from empty edge segments would be stripped again.
			return true
		}
		return Join(joined) == joined
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestJoin_PreservesOrderAndCount(t *testing.T) {
	f := func(segments []string) bool {
		// Restrict to slash-free segments so the output splits back cleanly.
		clean := make([]string, len(segments))
		for i, s := range segments {
			clean[i] = strings.ReplaceAll(s, Separator, "")
		}
		joined := Join(clean...)
		if len(clean) == 0 {
			return joined == ""
		}
		got := strings.Split(joined, Separator)
		return assert.ObjectsAreEqual(clean, got)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestJoin_ConcurrentCallers(t *testing.T) {
	done := make(chan string, 16)
	for i := 0; i < cap(done); i++ {
		go func() { done <- Join("/x/", "y", "/z") }()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, "x/y/z", <-done)
	}
}
