package reconcile

import (
	"strings"

	"github.com/k1LoW/git-reattach/internal/git"
)

// branchExists reports whether the branch set contains a branch whose name
// equals name under case folding. Only local entries can ever match a
// canonical refs/heads/... name; remote-tracking display names never do.
func branchExists(branches []git.Branch, name string) bool {
	for _, b := range branches {
		if strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}

// matchExisting returns the stored name of the branch that case-insensitively
// matches name. An exact match wins over a case-variant one; among several
// case variants the first listed wins.
func matchExisting(branches []git.Branch, name string) (string, bool) {
	found := ""
	for _, b := range branches {
		if b.Name == name {
			return b.Name, true
		}
		if found == "" && strings.EqualFold(b.Name, name) {
			found = b.Name
		}
	}
	return found, found != ""
}
