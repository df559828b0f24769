package git

import (
	"testing"

	"github.com/k1LoW/git-reattach/testutil"
)

func TestGetConfig(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	restore := repo.Chdir()
	defer restore()

	t.Run("unset key returns empty", func(t *testing.T) {
		got, err := GetConfig("reattach.remote")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty value, got %q", got)
		}
	})

	t.Run("set key", func(t *testing.T) {
		repo.Git("config", "reattach.remote", "upstream")
		got, err := GetConfig("reattach.remote")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "upstream" {
			t.Errorf("expected %q, got %q", "upstream", got)
		}
	})
}

func TestConfiguredRemote(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	restore := repo.Chdir()
	defer restore()

	remote, err := ConfiguredRemote()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remote != "" {
		t.Errorf("expected empty remote before configuration, got %q", remote)
	}

	repo.Git("config", "reattach.remote", "build")
	remote, err = ConfiguredRemote()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remote != "build" {
		t.Errorf("expected %q, got %q", "build", remote)
	}
}

func TestConfiguredHooks(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	restore := repo.Chdir()
	defer restore()

	hooks, err := ConfiguredHooks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hooks) != 0 {
		t.Errorf("expected no hooks before configuration, got %v", hooks)
	}

	repo.Git("config", "--add", "reattach.hook", "echo one")
	repo.Git("config", "--add", "reattach.hook", "echo two")

	hooks, err = ConfiguredHooks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hooks) != 2 || hooks[0] != "echo one" || hooks[1] != "echo two" {
		t.Errorf("expected [echo one, echo two], got %v", hooks)
	}
}
