package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit per message, tagging each
// commit with the matching tag name. Commits are spaced a minute apart so
// tag ordering by commit time is deterministic.
func initRepo(t *testing.T, tags []string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, tag := range tags {
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(path, []byte(tag), 0o644))
		_, err = worktree.Add("file.txt")
		require.NoError(t, err)

		commit, err := worktree.Commit("release "+tag, &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "Test",
				Email: "test@test.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
			Committer: &object.Signature{
				Name:  "Test",
				Email: "test@test.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
		})
		require.NoError(t, err)

		_, err = repo.CreateTag(tag, commit, nil)
		require.NoError(t, err)
	}

	return dir
}

func TestLatestTag(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, []string{"v1.0.0", "v1.1.0", "v2.0.0"})

	tag, err := LatestTag(dir)
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", tag)
}

func TestLatestTag_SingleTag(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, []string{"v0.1.0"})

	tag, err := LatestTag(dir)
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0", tag)
}

func TestLatestTag_NoTags(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, nil)

	_, err := LatestTag(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTags)
}

func TestLatestTag_AnnotatedTag(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, nil)
	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))
	_, err = worktree.Add("file.txt")
	require.NoError(t, err)
	commit, err := worktree.Commit("release", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)

	_, err = repo.CreateTag("v3.0.0", commit, &gogit.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
		Message: "release 3.0.0",
	})
	require.NoError(t, err)

	tag, err := LatestTag(dir)
	require.NoError(t, err)
	assert.Equal(t, "v3.0.0", tag)
}

func TestLatestTag_NotARepository(t *testing.T) {
	t.Parallel()

	_, err := LatestTag(t.TempDir())
	require.Error(t, err)
}
