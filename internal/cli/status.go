package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitward.dev/gitward/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pending changes in the working tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			entries, err := repo.Status(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				state.splog.Info("Working tree clean")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n",
					output.StatusTag(string(entry.Status)), entry.Path)
			}
			return nil
		},
	}
}
