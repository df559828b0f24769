// Package testutil provides git repository fixtures for tests.
// Fixtures are driven by the real git binary so that test repositories look
// exactly like what the tool meets in the wild.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k1LoW/exec"
)

// Repo is a throwaway git repository rooted in a temp directory.
type Repo struct {
	Root string
	t    *testing.T
}

// NewTestRepo creates an empty repository with user identity configured and
// the initial branch forced to "main".
func NewTestRepo(t *testing.T) *Repo {
	t.Helper()

	root := filepath.Join(t.TempDir(), "repo")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}
	r := &Repo{Root: root, t: t}
	r.Git("init")
	r.Git("symbolic-ref", "HEAD", "refs/heads/main")
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "user.name", "test")
	return r
}

// NewBareTestRepo creates a bare repository.
func NewBareTestRepo(t *testing.T) *Repo {
	t.Helper()

	root := filepath.Join(t.TempDir(), "repo.git")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}
	r := &Repo{Root: root, t: t}
	r.Git("init", "--bare")
	return r
}

// Git runs a git command in the repository and returns trimmed output.
// It fails the test on error.
func (r *Repo) Git(args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", append([]string{"-C", r.Root}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %v failed: %v\noutput: %s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// CreateFile writes a file relative to the repository root.
func (r *Repo) CreateFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
}

// Commit stages everything and commits.
func (r *Repo) Commit(message string) {
	r.t.Helper()

	r.Git("add", "-A")
	r.Git("commit", "-m", message)
}

// Head returns the commit id HEAD points at.
func (r *Repo) Head() string {
	r.t.Helper()

	return r.Git("rev-parse", "HEAD")
}

// CreateBranch creates a branch at the current HEAD without switching to it.
func (r *Repo) CreateBranch(name string) {
	r.t.Helper()

	r.Git("branch", name)
}

// SetRef points an arbitrary ref at a commit id. Useful for faking
// remote-tracking branches (refs/remotes/<remote>/<name>) without a network.
func (r *Repo) SetRef(name, sha string) {
	r.t.Helper()

	r.Git("update-ref", name, sha)
}

// DetachHead detaches HEAD at the current commit, the state CI checkouts
// usually leave behind.
func (r *Repo) DetachHead() {
	r.t.Helper()

	r.Git("checkout", "--detach")
}

// SymbolicHead returns the ref HEAD points at, or "" when detached.
func (r *Repo) SymbolicHead() string {
	r.t.Helper()

	cmd := exec.Command("git", "-C", r.Root, "symbolic-ref", "-q", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// ParentDir returns the directory containing the repository.
func (r *Repo) ParentDir() string {
	return filepath.Dir(r.Root)
}

// Chdir changes the working directory to the repository root and returns a
// restore function.
func (r *Repo) Chdir() func() {
	r.t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		r.t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(r.Root); err != nil {
		r.t.Fatalf("failed to chdir: %v", err)
	}
	return func() {
		if err := os.Chdir(orig); err != nil {
			r.t.Fatalf("failed to restore cwd: %v", err)
		}
	}
}
