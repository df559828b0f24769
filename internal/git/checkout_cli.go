package git

import (
	"context"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/k1LoW/exec"
)

// checkoutCLI switches the working copy with the git binary. go-git's native
// checkout rewrites the whole index, which gets slow on large CI working
// trees; the git binary only touches what changed.
func (r *Repo) checkoutCLI(ctx context.Context, name string) error {
	gitPath, err := osexec.LookPath("git")
	if err != nil {
		return err
	}
	short := strings.TrimPrefix(name, "refs/heads/")
	cmd := exec.CommandContext(ctx, gitPath, "-C", r.Root(), "checkout", short)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git checkout %q failed: %w\noutput: %s", short, err, out)
	}
	return nil
}
