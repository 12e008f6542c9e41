// Package git resolves release versions from git metadata. It uses the
// go-git library so relnote works in CI images without a git binary.
package git

import (
	"errors"
	"fmt"
	"os"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNoTags is returned when the repository has no tags to derive a
// version from.
var ErrNoTags = errors.New("repository has no tags")

// openRepo opens the repository at path, or the working directory when
// path is empty. DetectDotGit walks up to find the repository root.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// LatestTag returns the short name of the tag whose commit is newest, for
// use as the default version label. Both lightweight and annotated tags
// are considered. Returns ErrNoTags when the repository has none.
func LatestTag(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	var latest string
	var latestTime time.Time

	err = tags.ForEach(func(ref *plumbing.Reference) error {
		when, err := tagCommitTime(repo, ref)
		if err != nil {
			// Skip tags pointing at non-commit objects (e.g. tagged trees).
			return nil
		}
		if latest == "" || when.After(latestTime) {
			latest = ref.Name().Short()
			latestTime = when
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	if latest == "" {
		return "", ErrNoTags
	}
	return latest, nil
}

// tagCommitTime resolves a tag reference to its commit time, peeling
// annotated tag objects when necessary.
func tagCommitTime(repo *gogit.Repository, ref *plumbing.Reference) (time.Time, error) {
	if tag, err := repo.TagObject(ref.Hash()); err == nil {
		commit, err := tag.Commit()
		if err != nil {
			return time.Time{}, err
		}
		return commit.Committer.When, nil
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return time.Time{}, err
	}
	return commit.Committer.When, nil
}
