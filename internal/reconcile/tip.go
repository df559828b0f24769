package reconcile

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/k1LoW/git-reattach/internal/git"
)

// resolveTip computes the commit the reconciled reference must point at.
// When the remote's tracking branch for the raw identifier exists, its tip
// wins over whatever HEAD happens to be, which matters when a CI checkout
// left HEAD on a default branch unrelated to the requested one. The lookup
// uses the raw identifier, not the canonical name, because remote-tracking
// names are built as <remote>/<identifier>.
func resolveTip(branches []git.Branch, head git.Reference, remote git.Remote, identifier string) plumbing.Hash {
	tracking := remote.Name + "/" + identifier
	for _, b := range branches {
		if b.Name == tracking {
			return b.Tip
		}
	}
	return head.Tip
}
