package git

import (
	"errors"
	"os/exec"
	"strings"
)

const (
	configKeyRemote = "reattach.remote"
	configKeyHook   = "reattach.hook"
)

// gitCommand creates an exec.Cmd for git with the given arguments.
// It uses exec.LookPath to look up the git binary path.
func gitCommand(args ...string) (*exec.Cmd, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, err
	}
	return exec.Command(gitPath, args...), nil
}

// GetConfig retrieves a git config value.
func GetConfig(key string) (string, error) {
	cmd, err := gitCommand("config", "--get", key)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		// git config returns exit code 1 if key is not found
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetAllConfig retrieves all values of a multi-valued git config key, in
// definition order.
func GetAllConfig(key string) ([]string, error) {
	cmd, err := gitCommand("config", "--get-all", key)
	if err != nil {
		return nil, err
	}
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, err
	}
	var values []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			values = append(values, line)
		}
	}
	return values, nil
}

// ConfiguredRemote returns the remote name set via the reattach.remote git
// config key, or "" when unset.
func ConfiguredRemote() (string, error) {
	return GetConfig(configKeyRemote)
}

// ConfiguredHooks returns the post-reattach hooks set via the reattach.hook
// git config key (one value per hook).
func ConfiguredHooks() ([]string, error) {
	return GetAllConfig(configKeyHook)
}
