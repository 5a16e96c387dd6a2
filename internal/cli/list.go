package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitward.dev/gitward/internal/git"
	"gitward.dev/gitward/internal/output"
)

// newBranchesCmd creates the branches command
func newBranchesCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List local branches",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			current, err := repo.CurrentBranch(ctx)
			if err != nil {
				return err
			}
			branches, err := repo.Branches(ctx)
			if err != nil {
				return err
			}
			for _, branch := range branches {
				marker := "  "
				if branch == current {
					marker = "* "
				}
				fmt.Fprintln(cmd.OutOrStdout(), marker+branch)
			}
			return nil
		},
	}
}

// newRemotesCmd creates the remotes command
func newRemotesCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "remotes",
		Short: "List configured remotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			remotes, err := repo.Remotes(cmd.Context())
			if err != nil {
				return err
			}
			for _, remote := range remotes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%s)\n", remote.Name, remote.URL, remote.Type)
			}
			return nil
		},
	}
}

// newStashesCmd creates the stashes command
func newStashesCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "stashes",
		Short: "List stash entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			stashes, err := repo.Stashes(cmd.Context())
			if err != nil {
				return err
			}
			for _, stash := range stashes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", stash.Ref, stash.Description)
			}
			return nil
		},
	}
}

// newWorktreesCmd creates the worktrees command
func newWorktreesCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "worktrees",
		Short: "List worktrees",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			worktrees, err := repo.Worktrees(cmd.Context())
			if err != nil {
				return err
			}
			for _, worktree := range worktrees {
				line := worktree.Path()
				if head := worktree.Head(); head != "" {
					line += "  " + output.ShortHash(head)
				}
				if branch := worktree.Branch(); branch != "" {
					line += "  " + branch
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// newVersionCmd creates the version command, reporting the underlying
// tool's version rather than gitward's own.
func newVersionCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "tool-version",
		Short: "Show the version of the underlying git executable",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The version query works outside a repository, so skip
			// discovery and run from the current directory.
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			repo, err := git.Open(git.Options{Dir: wd, Tool: state.tool, Timeout: state.timeout, Logger: state.splog.Logger()})
			if err != nil {
				return err
			}
			version, err := repo.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
