package cmd

import (
	"strings"

	"github.com/k1LoW/git-reattach/internal/git"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var branchesCmd = &cobra.Command{
	Use:          "branches",
	Short:        "List the branch set used for reconciliation",
	Long:         `List local and remote-tracking branches the way the reconciler sees them, with the names the case-insensitive lookup and tip resolution run against. Useful for inspecting what a CI checkout actually left behind.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBranches,
}

func init() {
	rootCmd.AddCommand(branchesCmd)
}

func runBranches(cmd *cobra.Command, _ []string) error {
	repo, err := git.Open(".")
	if err != nil {
		return err
	}
	branches, err := repo.Branches()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header([]string{"NAME", "TIP", "KIND"})
	for _, b := range branches {
		kind := "remote-tracking"
		if strings.HasPrefix(b.Name, "refs/heads/") {
			kind = "local"
		}
		if err := table.Append([]string{b.Name, b.Tip.String()[:7], kind}); err != nil {
			return err
		}
	}
	return table.Render()
}
