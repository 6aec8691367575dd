package content

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	ferrors "github.com/kbchulan/clblogs/internal/foundation/errors"
	"github.com/kbchulan/clblogs/internal/logfields"
)

// GitDates derives page dates from the commit that first added the file.
type GitDates struct {
	repo     *git.Repository
	repoRoot string
	content  string

	mu    sync.Mutex
	cache map[string]time.Time
}

// OpenGitDates opens the repository containing contentRoot.
func OpenGitDates(contentRoot string) (*GitDates, error) {
	abs, err := filepath.Abs(contentRoot)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve content path").Build()
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "open git repository").
			WithContext("path", abs).Warning().Build()
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "open git worktree").Warning().Build()
	}
	return &GitDates{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
		content:  abs,
		cache:    make(map[string]time.Time),
	}, nil
}

// Created returns the author time of the oldest commit touching rel, a path
// relative to the content root. Untracked files report false.
func (g *GitDates) Created(rel string) (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t, ok := g.cache[rel]; ok {
		return t, !t.IsZero()
	}

	var created time.Time
	target, err := filepath.Rel(g.repoRoot, filepath.Join(g.content, filepath.FromSlash(rel)))
	if err == nil {
		created, err = g.oldestCommit(filepath.ToSlash(target))
	}
	if err != nil {
		slog.Debug("No git history for page", logfields.Path(rel), logfields.Error(err))
	}
	g.cache[rel] = created
	return created, !created.IsZero()
}

func (g *GitDates) oldestCommit(file string) (time.Time, error) {
	iter, err := g.repo.Log(&git.LogOptions{FileName: &file, Order: git.LogOrderCommitterTime})
	if err != nil {
		return time.Time{}, err
	}
	defer iter.Close()

	var oldest time.Time
	err = iter.ForEach(func(c *object.Commit) error {
		if oldest.IsZero() || c.Author.When.Before(oldest) {
			oldest = c.Author.When
		}
		return nil
	})
	return oldest, err
}
