package e2e

import (
	"strings"
	"testing"

	"github.com/k1LoW/git-reattach/testutil"
)

func TestReattach_CreatesBranchFromRemoteTrackingTip(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	base := repo.Head()

	// A remote-tracking branch that is ahead of the detached HEAD.
	repo.CreateFile("feature.txt", "work")
	repo.Commit("feature work")
	ahead := repo.Head()
	repo.SetRef("refs/remotes/origin/topic", ahead)
	repo.Git("reset", "--hard", base)
	repo.DetachHead()

	out, err := runReattach(t, binPath, repo.Root, nil, "topic")
	if err != nil {
		t.Fatalf("git-reattach failed: %v\noutput: %s", err, out)
	}

	if got := repo.SymbolicHead(); got != "refs/heads/topic" {
		t.Errorf("expected HEAD on refs/heads/topic, got %q", got)
	}
	if got := repo.Git("rev-parse", "refs/heads/topic"); got != ahead {
		t.Errorf("expected refs/heads/topic at %s, got %s", ahead, got)
	}
}

func TestReattach_UpdatesExistingBranch(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	repo.CreateBranch("topic")

	repo.CreateFile("feature.txt", "work")
	repo.Commit("feature work")
	ahead := repo.Head()
	repo.SetRef("refs/remotes/origin/topic", ahead)
	repo.DetachHead()

	out, err := runReattach(t, binPath, repo.Root, nil, "topic")
	if err != nil {
		t.Fatalf("git-reattach failed: %v\noutput: %s", err, out)
	}

	if got := repo.Git("rev-parse", "refs/heads/topic"); got != ahead {
		t.Errorf("expected refs/heads/topic updated to %s, got %s", ahead, got)
	}
	if got := repo.SymbolicHead(); got != "refs/heads/topic" {
		t.Errorf("expected HEAD on refs/heads/topic, got %q", got)
	}
}

func TestReattach_BranchFromEnvironment(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	repo.DetachHead()

	out, err := runReattach(t, binPath, repo.Root, []string{"GIT_REATTACH_BRANCH=envbranch"})
	if err != nil {
		t.Fatalf("git-reattach failed: %v\noutput: %s", err, out)
	}

	if got := repo.SymbolicHead(); got != "refs/heads/envbranch" {
		t.Errorf("expected HEAD on refs/heads/envbranch, got %q", got)
	}
}

func TestReattach_EmptyIdentifierIsNoOp(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	repo.DetachHead()
	head := repo.Head()

	out, err := runReattach(t, binPath, repo.Root, nil)
	if err != nil {
		t.Fatalf("git-reattach failed: %v\noutput: %s", err, out)
	}

	if got := repo.SymbolicHead(); got != "" {
		t.Errorf("HEAD should stay detached, got %q", got)
	}
	if got := repo.Head(); got != head {
		t.Errorf("HEAD moved from %s to %s", head, got)
	}
}

func TestReattach_QualifiedRefIdentifier(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	repo.DetachHead()

	out, err := runReattach(t, binPath, repo.Root, nil, "refs/heads/feature/x")
	if err != nil {
		t.Fatalf("git-reattach failed: %v\noutput: %s", err, out)
	}

	if got := repo.SymbolicHead(); got != "refs/heads/feature/x" {
		t.Errorf("expected HEAD on refs/heads/feature/x, got %q", got)
	}
}

func TestReattach_BareRepository(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewBareTestRepo(t)

	out, err := runReattach(t, binPath, repo.Root, nil, "topic")
	if err == nil {
		t.Fatal("expected an error in a bare repository")
	}
	if !strings.Contains(out, "working tree") {
		t.Errorf("expected a bare repository error, got: %s", out)
	}
}

func TestReattach_RunsConfiguredHooks(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	repo.Git("config", "reattach.hook", "echo reattached-ok")
	repo.DetachHead()

	out, err := runReattach(t, binPath, repo.Root, nil, "topic")
	if err != nil {
		t.Fatalf("git-reattach failed: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "reattached-ok") {
		t.Errorf("expected hook output, got: %s", out)
	}
}

func TestBranchesCommand(t *testing.T) {
	binPath := buildBinary(t)

	repo := testutil.NewTestRepo(t)
	repo.CreateFile("README.md", "# Test")
	repo.Commit("initial commit")
	repo.SetRef("refs/remotes/origin/topic", repo.Head())

	out, err := runReattach(t, binPath, repo.Root, nil, "branches")
	if err != nil {
		t.Fatalf("git-reattach branches failed: %v\noutput: %s", err, out)
	}
	for _, want := range []string{"refs/heads/main", "origin/topic", "local", "remote-tracking"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
