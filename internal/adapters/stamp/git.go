package stamp

import (
	"errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// gitState is the part of the checkout that ends up in the version stamp.
type gitState struct {
	Commit string
	Dirty  bool
}

// readGitState inspects the repository containing root. A directory outside
// any repository, or a repository without commits, yields an empty commit.
// Untracked files and the file at ignore do not make the tree dirty.
func readGitState(root, ignore string) (gitState, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return gitState{}, nil
	}
	if err != nil {
		return gitState{}, err
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return gitState{}, nil
	}
	if err != nil {
		return gitState{}, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return gitState{}, err
	}
	status, err := wt.Status()
	if err != nil {
		return gitState{}, err
	}

	skip := ""
	if abs, err := filepath.Abs(ignore); err == nil {
		if rel, err := filepath.Rel(wt.Filesystem.Root(), abs); err == nil {
			skip = filepath.ToSlash(rel)
		}
	}

	state := gitState{Commit: head.Hash().String()}
	for path, st := range status {
		if path == skip || st.Worktree == git.Untracked {
			continue
		}
		if st.Worktree != git.Unmodified || st.Staging != git.Unmodified {
			state.Dirty = true
			break
		}
	}
	return state, nil
}
