// Package git provides the repository collaborator for branch reconciliation:
// a go-git backed reference store plus the git-config and hook plumbing around
// it.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const remotesPrefix = "refs/remotes/"

var (
	// ErrRefExists is returned when creating a reference whose name is
	// already taken.
	ErrRefExists = errors.New("reference already exists")

	// ErrRefNotFound is returned when updating a reference that does not
	// exist in the store.
	ErrRefNotFound = errors.New("reference not found")

	// ErrBareRepository is a sentinel error returned when the repository is
	// bare. Bare repositories have no working tree, so there is nothing to
	// reattach.
	ErrBareRepository = errors.New("bare repositories have no working tree to reattach")
)

// Repo is the go-git backed Repository implementation.
type Repo struct {
	repo *gitlib.Repository
	path string

	// CLICheckout delegates working-copy switches to the git binary instead
	// of the native checkout. Cheaper on very large working trees.
	CLICheckout bool
}

var _ Repository = (*Repo)(nil)

// Open opens the repository containing path, walking up to find the .git
// directory the way git itself does.
func Open(path string) (*Repo, error) {
	repo, err := gitlib.PlainOpenWithOptions(path, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return &Repo{repo: repo, path: path}, nil
}

// Head returns the reference HEAD resolves to. For a detached HEAD the name
// is "HEAD" and the tip is the detached commit.
func (r *Repo) Head() (Reference, error) {
	head, err := r.repo.Head()
	if err != nil {
		return Reference{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return Reference{Name: head.Name().String(), Tip: head.Hash()}, nil
}

// Branches returns the branch set: local branches under their canonical
// refs/heads/... names and remote-tracking branches under <remote>/<name>
// display names. Symbolic entries (e.g. origin/HEAD) are skipped.
func (r *Repo) Branches() ([]Branch, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	var branches []Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		switch {
		case name.IsBranch():
			branches = append(branches, Branch{Name: name.String(), Tip: ref.Hash()})
		case name.IsRemote():
			branches = append(branches, Branch{Name: strings.TrimPrefix(name.String(), remotesPrefix), Tip: ref.Hash()})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk references: %w", err)
	}
	return branches, nil
}

// Reference looks up a reference by exact canonical name, without resolving
// symbolic targets.
func (r *Repo) Reference(name string) (Reference, bool, error) {
	ref, err := r.repo.Reference(plumbing.ReferenceName(name), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Reference{}, false, nil
	}
	if err != nil {
		return Reference{}, false, fmt.Errorf("failed to look up reference %s: %w", name, err)
	}
	return Reference{Name: ref.Name().String(), Tip: ref.Hash()}, true, nil
}

// CreateReference creates a new reference pointing at tip. Unlike the raw
// go-git storer, it refuses to overwrite an existing name.
func (r *Repo) CreateReference(name string, tip plumbing.Hash) error {
	if _, ok, err := r.Reference(name); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: %s", ErrRefExists, name)
	}
	newRef := plumbing.NewHashReference(plumbing.ReferenceName(name), tip)
	if err := r.repo.Storer.SetReference(newRef); err != nil {
		return fmt.Errorf("failed to create reference %s: %w", name, err)
	}
	return nil
}

// UpdateReference retargets an existing reference to tip.
func (r *Repo) UpdateReference(name string, tip plumbing.Hash) error {
	if _, ok, err := r.Reference(name); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: %s", ErrRefNotFound, name)
	}
	newRef := plumbing.NewHashReference(plumbing.ReferenceName(name), tip)
	if err := r.repo.Storer.SetReference(newRef); err != nil {
		return fmt.Errorf("failed to update reference %s: %w", name, err)
	}
	return nil
}

// Checkout switches the working copy to the named reference, natively or via
// the git binary depending on CLICheckout.
func (r *Repo) Checkout(ctx context.Context, name string) error {
	if r.CLICheckout {
		return r.checkoutCLI(ctx, name)
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		if errors.Is(err, gitlib.ErrIsBareRepository) {
			return ErrBareRepository
		}
		return fmt.Errorf("failed to open working tree: %w", err)
	}
	opts := &gitlib.CheckoutOptions{Branch: plumbing.ReferenceName(name)}
	if err := wt.Checkout(opts); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", name, err)
	}
	return nil
}

// Root returns the working tree root, falling back to the open path for bare
// repositories.
func (r *Repo) Root() string {
	if wt, err := r.repo.Worktree(); err == nil {
		return wt.Filesystem.Root()
	}
	return r.path
}

// IsBare reports whether the repository has no working tree.
func (r *Repo) IsBare() bool {
	_, err := r.repo.Worktree()
	return errors.Is(err, gitlib.ErrIsBareRepository)
}

// AssertNotBareRepository returns ErrBareRepository if the repository is
// bare. It is used as a guard before reconciliation, since the final
// checkout cannot succeed without a working tree.
func AssertNotBareRepository(r *Repo) error {
	if r.IsBare() {
		return ErrBareRepository
	}
	return nil
}
