package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     string
		replacement string
		want        string
	}{
		"replaces token": {
			content:     "Notes: __CHANGELOG__ end.",
			replacement: "Added feature X.\nFixed bug Y.\n",
			want:        "Notes: Added feature X.\nFixed bug Y.\n end.",
		},
		"token absent leaves content unchanged": {
			content:     "Notes: nothing here.",
			replacement: "whatever",
			want:        "Notes: nothing here.",
		},
		"empty replacement removes token": {
			content:     "Notes: __CHANGELOG__ end.",
			replacement: "",
			want:        "Notes:  end.",
		},
		"every occurrence replaced": {
			content:     "__CHANGELOG__ and __CHANGELOG__",
			replacement: "X",
			want:        "X and X",
		},
		"replacement is literal not a pattern": {
			content:     "__CHANGELOG__",
			replacement: "$1 \\n [a-z]+",
			want:        "$1 \\n [a-z]+",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Substitute(tt.content, tt.replacement, DefaultPlaceholder)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubstitute_Idempotent(t *testing.T) {
	t.Parallel()

	// Once the token is gone a second pass is a no-op, provided the
	// replacement itself carries no token.
	first := Substitute("Notes: __CHANGELOG__ end.", "release notes", DefaultPlaceholder)
	second := Substitute(first, "release notes", DefaultPlaceholder)
	assert.Equal(t, first, second)
	assert.NotContains(t, first, DefaultPlaceholder)
}

func TestInjectFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     string
		replacement string
		want        string
	}{
		"substitutes and persists": {
			content:     "Notes: __CHANGELOG__ end.",
			replacement: "Added feature X.\nFixed bug Y.\n",
			want:        "Notes: Added feature X.\nFixed bug Y.\n end.",
		},
		"token absent rewrites identically": {
			content:     "Notes: untouched.",
			replacement: "whatever",
			want:        "Notes: untouched.",
		},
		"shorter result truncates stale bytes": {
			content:     "__CHANGELOG__" + strings.Repeat("x", 100),
			replacement: "",
			want:        strings.Repeat("x", 100),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "release_description.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			require.NoError(t, InjectFile(path, tt.replacement, DefaultPlaceholder))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestInjectFile_MissingFile(t *testing.T) {
	t.Parallel()

	err := InjectFile(filepath.Join(t.TempDir(), "nope.txt"), "x", DefaultPlaceholder)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "release_description.txt")
	require.NoError(t, os.WriteFile(path, []byte("Notes: __CHANGELOG__ end."), 0o644))

	got, err := Preview(path, "section", DefaultPlaceholder)
	require.NoError(t, err)
	assert.Equal(t, "Notes: section end.", got)

	// Preview never writes.
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Notes: __CHANGELOG__ end.", string(onDisk))
}

func TestHasPlaceholder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	withToken := filepath.Join(dir, "with.txt")
	require.NoError(t, os.WriteFile(withToken, []byte("a __CHANGELOG__ b"), 0o644))
	found, err := HasPlaceholder(withToken, DefaultPlaceholder)
	require.NoError(t, err)
	assert.True(t, found)

	without := filepath.Join(dir, "without.txt")
	require.NoError(t, os.WriteFile(without, []byte("a b"), 0o644))
	found, err = HasPlaceholder(without, DefaultPlaceholder)
	require.NoError(t, err)
	assert.False(t, found)
}
