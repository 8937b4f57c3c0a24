// Package gitmeta derives page revision metadata from the git history of
// the documentation sources.
package gitmeta

import (
	"errors"
	"fmt"
	"io"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RevisionDate returns the author time of the most recent commit touching
// relPath. dir may be any directory inside the repository; relPath is
// slash-separated and relative to the repository root. A file with no
// history yields the zero time and no error.
func RevisionDate(dir, relPath string) (time.Time, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	iter, err := repo.Log(&git.LogOptions{FileName: &relPath})
	if err != nil {
		return time.Time{}, fmt.Errorf("log %s: %w", relPath, err)
	}
	defer iter.Close()

	var commit *object.Commit
	commit, err = iter.Next()
	if errors.Is(err, io.EOF) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("log %s: %w", relPath, err)
	}
	return commit.Author.When, nil
}
