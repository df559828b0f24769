// Package ref classifies ambiguous branch identifiers and maps them to
// canonical local reference names.
//
// CI environments hand over the current branch as a bare string that may be a
// short name ("feature/x"), an already-qualified local branch ref
// ("refs/heads/feature/x"), or a ref under some other namespace
// ("refs/pull/42/head"). Everything downstream operates on the canonical
// refs/heads/... form.
package ref

import "strings"

const headsPrefix = "refs/heads/"

// Kind is the classification of a branch identifier.
type Kind int

const (
	// ShortName is a plain branch name without a refs/ prefix.
	ShortName Kind = iota
	// LocalBranch is a fully-qualified refs/heads/... reference.
	LocalBranch
	// OtherNamespace is a refs/... reference outside refs/heads.
	OtherNamespace
)

// Name is a parsed branch identifier.
type Name struct {
	raw  string
	kind Kind
}

// Parse classifies a raw branch identifier.
//
// The identifier is split into path segments rather than probed for
// substrings, so a branch literally named "myrefs" parses as a short name
// instead of being mistaken for a qualified ref.
func Parse(identifier string) Name {
	segments := strings.Split(identifier, "/")
	if segments[0] != "refs" || len(segments) < 2 {
		return Name{raw: identifier, kind: ShortName}
	}
	if segments[1] == "heads" {
		return Name{raw: identifier, kind: LocalBranch}
	}
	return Name{raw: identifier, kind: OtherNamespace}
}

// IsZero reports whether the identifier was empty. An empty identifier makes
// the whole reconciliation a no-op.
func (n Name) IsZero() bool {
	return n.raw == ""
}

// Kind returns the identifier's classification.
func (n Name) Kind() Kind {
	return n.kind
}

// IsLocalBranch reports whether the identifier was already shaped like a
// local branch reference.
func (n Name) IsLocalBranch() bool {
	return n.kind == LocalBranch
}

// Canonical returns the canonical local reference name:
//
//	short name       -> refs/heads/<name>
//	local branch ref -> unchanged
//	other namespace  -> refs/heads/<path after the leading refs/ segment>
func (n Name) Canonical() string {
	switch n.kind {
	case LocalBranch:
		return n.raw
	case OtherNamespace:
		rest := strings.SplitN(n.raw, "/", 2)[1]
		return headsPrefix + rest
	default:
		return headsPrefix + n.raw
	}
}

// String returns the raw identifier as supplied.
func (n Name) String() string {
	return n.raw
}
