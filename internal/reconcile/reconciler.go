// Package reconcile brings a local branch reference into alignment with the
// branch identifier handed over by the CI environment, then switches the
// working copy to it.
//
// The flow is strictly sequential: normalize the identifier, check the branch
// set for a case-insensitive match, resolve the target tip (preferring the
// remote-tracking branch's position), create or update the local reference,
// and checkout. Exactly one reference mutation happens per run, so re-running
// with unchanged inputs is an update to the same target.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/k1LoW/git-reattach/internal/git"
	"github.com/k1LoW/git-reattach/internal/ref"
)

var (
	// ErrLoggerRequired is returned by New when no logger is supplied.
	ErrLoggerRequired = errors.New("a logger is required to reconcile branch references")

	// ErrRemoteRequired is returned by New when the remote name is empty.
	ErrRemoteRequired = errors.New("a remote with a non-empty name is required to reconcile branch references")
)

// Reconciler creates or updates the local branch reference for an ambiguous
// branch identifier and checks it out. Callers must serialize concurrent use
// of the same repository handle.
type Reconciler struct {
	repo   git.Repository
	remote git.Remote
	log    *slog.Logger
}

// New validates the required collaborators before any repository access.
// Missing logger and missing remote are distinct precondition violations.
func New(repo git.Repository, remote git.Remote, logger *slog.Logger) (*Reconciler, error) {
	if logger == nil {
		return nil, ErrLoggerRequired
	}
	if remote.Name == "" {
		return nil, ErrRemoteRequired
	}
	return &Reconciler{repo: repo, remote: remote, log: logger}, nil
}

// Reconcile normalizes identifier into a canonical local reference name,
// creates or updates that reference to the resolved tip, and switches the
// working copy to it. An empty identifier skips the whole run.
func (r *Reconciler) Reconcile(ctx context.Context, identifier string) error {
	name := ref.Parse(identifier)
	if name.IsZero() {
		r.log.Debug("no branch identifier supplied, skipping reconciliation")
		return nil
	}
	canonical := name.Canonical()

	branches, err := r.repo.Branches()
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}
	head, err := r.repo.Head()
	if err != nil {
		return err
	}
	tip := resolveTip(branches, head, r.remote, identifier)

	if !branchExists(branches, canonical) {
		if err := r.create(name, canonical, tip); err != nil {
			return err
		}
	} else {
		if err := r.update(name, canonical, branches, tip); err != nil {
			return err
		}
	}

	return r.repo.Checkout(ctx, canonical)
}

func (r *Reconciler) create(name ref.Name, canonical string, tip plumbing.Hash) error {
	if name.IsLocalBranch() {
		r.log.Info("creating local branch",
			slog.String("ref", canonical))
	} else {
		r.log.Info("creating local branch pointing at tip",
			slog.String("ref", canonical),
			slog.String("tip", tip.String()))
	}
	return r.repo.CreateReference(canonical, tip)
}

func (r *Reconciler) update(name ref.Name, canonical string, branches []git.Branch, tip plumbing.Hash) error {
	target := canonical
	if _, ok, err := r.repo.Reference(canonical); err != nil {
		return err
	} else if !ok {
		// The store holds the branch under a different letter case. Mutate
		// the key that actually exists (favor-existing-case).
		if existing, ok := matchExisting(branches, canonical); ok {
			target = existing
		}
	}
	if name.IsLocalBranch() {
		r.log.Info("updating local branch to match ref",
			slog.String("ref", target),
			slog.String("source", name.String()))
	} else {
		r.log.Info("updating local branch to point at tip",
			slog.String("ref", target),
			slog.String("tip", tip.String()))
	}
	return r.repo.UpdateReference(target, tip)
}
