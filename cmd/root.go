// Package cmd provides the git-reattach CLI.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/k1LoW/git-reattach/internal/git"
	"github.com/k1LoW/git-reattach/internal/reconcile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the current version of git-reattach.
// Can be overridden at build time: go build -ldflags "-X github.com/k1LoW/git-reattach/cmd.Version=v1.0.0"
var Version = "0.1.0"

var (
	remoteName string
	useGitCLI  bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "git-reattach [branch]",
	Short: "Reattach a detached HEAD to the branch the CI environment says you are on",
	Long: `git-reattach reconciles the local branch reference with the branch identifier
reported by the CI environment (argument or GIT_REATTACH_BRANCH). The
identifier may be a short name, a refs/heads/... reference, or a reference
under another namespace. The local reference is created or updated to the
remote-tracking branch's tip when one exists, then the working copy is
switched to it.

An empty identifier is a deliberate no-op.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&remoteName, "remote", "", "remote whose tracking branches supply the target tip (default: reattach.remote git config, then origin)")
	rootCmd.Flags().BoolVar(&useGitCLI, "use-git-cli", false, "switch the working copy with the git binary instead of the native checkout")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	viper.SetEnvPrefix("git_reattach")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("remote", rootCmd.Flags().Lookup("remote")))
	cobra.CheckErr(viper.BindPFlag("use-git-cli", rootCmd.Flags().Lookup("use-git-cli")))
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	// CI hands the branch over as an environment variable when there is no
	// argument to give.
	branch := viper.GetString("branch")
	if len(args) == 1 {
		branch = args[0]
	}

	remote := viper.GetString("remote")
	if remote == "" {
		configured, err := git.ConfiguredRemote()
		if err != nil {
			return err
		}
		remote = configured
	}
	if remote == "" {
		remote = "origin"
	}

	repo, err := git.Open(".")
	if err != nil {
		return err
	}
	if err := git.AssertNotBareRepository(repo); err != nil {
		return err
	}
	repo.CLICheckout = viper.GetBool("use-git-cli")

	rec, err := reconcile.New(repo, git.Remote{Name: remote}, logger)
	if err != nil {
		return err
	}
	if err := rec.Reconcile(cmd.Context(), branch); err != nil {
		return err
	}
	if branch == "" {
		return nil
	}

	hooks, err := git.ConfiguredHooks()
	if err != nil {
		return err
	}
	if len(hooks) > 0 {
		logger.Debug("running post-reattach hooks", slog.Int("count", len(hooks)))
		if err := git.RunHooks(cmd.Context(), hooks, repo.Root(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
