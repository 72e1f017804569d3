package cmd

import (
	"github.com/spf13/cobra"
)

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Open the commit management menu",
	Long: `Stage files, commit with a custom date, amend the last commit, view the
history, revert a commit's changes or remove a commit from the history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(session, session.RunCommits)
	},
}

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Open the branch management menu",
	Long: `Switch branches (uncommitted changes must be stashed or committed first),
create and delete branches, push, and inspect branch details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(session, session.RunBranches)
	},
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Open the team tools menu",
	Long:  `List and check out remote branches, show open pull requests and manage remotes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(session, session.RunTeam)
	},
}

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Open the quick actions menu",
	Long:  `Push, pull, manage stashes and list recent merges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(session, session.RunQuick)
	},
}

func init() {
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(quickCmd)
}
