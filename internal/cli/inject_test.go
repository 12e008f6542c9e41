package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relerrors "relnote/internal/errors"
)

const testChangelog = `## Version 2.0
Added feature X.
Fixed bug Y.
## Version 1.0
Initial release.
`

// writeReleaseFiles creates a changelog and release description in a temp
// dir and returns their paths.
func writeReleaseFiles(t *testing.T, notesContent string) (changelogPath, notesPath string) {
	t.Helper()

	dir := t.TempDir()
	changelogPath = filepath.Join(dir, "CHANGELOG.md")
	notesPath = filepath.Join(dir, "release_description.txt")
	require.NoError(t, os.WriteFile(changelogPath, []byte(testChangelog), 0o644))
	require.NoError(t, os.WriteFile(notesPath, []byte(notesContent), 0o644))
	return changelogPath, notesPath
}

func TestInject_EndToEnd(t *testing.T) {
	changelogPath, notesPath := writeReleaseFiles(t, "Notes: __CHANGELOG__ end.")

	stdout, _, err := runCommand(t, "inject", "2.0", "--changelog", changelogPath, "--notes", notesPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Injected section for 2.0")

	got, err := os.ReadFile(notesPath)
	require.NoError(t, err)
	assert.Equal(t, "Notes: Added feature X.\nFixed bug Y.\n end.", string(got))
}

func TestInject_VersionNotFound(t *testing.T) {
	changelogPath, notesPath := writeReleaseFiles(t, "Notes: __CHANGELOG__ end.")

	// An unknown version is not an error; the placeholder is removed.
	_, _, err := runCommand(t, "inject", "9.9", "--changelog", changelogPath, "--notes", notesPath)
	require.NoError(t, err)

	got, err := os.ReadFile(notesPath)
	require.NoError(t, err)
	assert.Equal(t, "Notes:  end.", string(got))
}

func TestInject_PlaceholderAbsent(t *testing.T) {
	changelogPath, notesPath := writeReleaseFiles(t, "No token here.")

	_, _, err := runCommand(t, "inject", "2.0", "--changelog", changelogPath, "--notes", notesPath)
	require.NoError(t, err)

	got, err := os.ReadFile(notesPath)
	require.NoError(t, err)
	assert.Equal(t, "No token here.", string(got))
}

func TestInject_DryRun(t *testing.T) {
	changelogPath, notesPath := writeReleaseFiles(t, "Notes: __CHANGELOG__ end.")

	stdout, _, err := runCommand(t, "inject", "2.0", "--dry-run", "--changelog", changelogPath, "--notes", notesPath)
	require.NoError(t, err)
	assert.Equal(t, "Notes: Added feature X.\nFixed bug Y.\n end.", stdout)

	// Dry run never writes.
	got, err := os.ReadFile(notesPath)
	require.NoError(t, err)
	assert.Equal(t, "Notes: __CHANGELOG__ end.", string(got))
}

func TestInject_MissingChangelog(t *testing.T) {
	_, notesPath := writeReleaseFiles(t, "Notes: __CHANGELOG__ end.")

	_, _, err := runCommand(t, "inject", "2.0", "--changelog", filepath.Join(t.TempDir(), "nope.md"), "--notes", notesPath)
	require.Error(t, err)

	var cliErr *relerrors.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, relerrors.Prerequisite, cliErr.Category)
}

func TestInject_MissingNotes(t *testing.T) {
	changelogPath, _ := writeReleaseFiles(t, "unused")

	_, _, err := runCommand(t, "inject", "2.0", "--changelog", changelogPath, "--notes", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var cliErr *relerrors.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, relerrors.Prerequisite, cliErr.Category)
}

func TestInject_TooManyArgs(t *testing.T) {
	_, _, err := runCommand(t, "inject", "2.0", "3.0")
	require.Error(t, err)

	var cliErr *relerrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, relerrors.Argument, cliErr.Category)
}
