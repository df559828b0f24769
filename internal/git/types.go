package git

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"
)

// Branch is one entry in the repository's branch set. Local branches carry
// their canonical refs/heads/... name; remote-tracking branches carry a
// <remote>/<name> display name. Names are not guaranteed unique across
// letter-case variants.
type Branch struct {
	Name string
	Tip  plumbing.Hash
}

// Reference is a named pointer to a commit within the reference store. The
// canonical name is the sole identity key.
type Reference struct {
	Name string
	Tip  plumbing.Hash
}

// Remote identifies the upstream whose tracking branches may supply the
// reconciliation target.
type Remote struct {
	Name string
}

// Repository is the capability set the reconciler consumes. Repo is the
// go-git backed implementation; tests substitute in-memory doubles.
type Repository interface {
	// Head returns the reference HEAD currently resolves to, which may be
	// detached.
	Head() (Reference, error)

	// Branches returns the repository's branch set.
	Branches() ([]Branch, error)

	// Reference looks up a reference by exact canonical name. The second
	// return value reports whether the reference exists.
	Reference(name string) (Reference, bool, error)

	// CreateReference creates a new reference pointing at tip. It fails if
	// a reference with that name already exists.
	CreateReference(name string, tip plumbing.Hash) error

	// UpdateReference retargets an existing reference to tip. It fails if
	// no reference with that name exists.
	UpdateReference(name string, tip plumbing.Hash) error

	// Checkout switches the working copy to the named reference.
	Checkout(ctx context.Context, name string) error
}
