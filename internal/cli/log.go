package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitward.dev/gitward/internal/git"
	"gitward.dev/gitward/internal/output"
)

// newLogCmd creates the log command
func newLogCmd(state *rootState) *cobra.Command {
	var (
		maxCount int
		ref      string
	)

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show commit history as parsed records",
		Aliases: []string{"l"},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			commits, err := repo.Log(cmd.Context(), git.LogOptions{
				Ref:      ref,
				MaxCount: maxCount,
			})
			if err != nil {
				return err
			}
			for _, commit := range commits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s <%s>  %s\n",
					output.ShortHash(commit.Hash),
					commit.Timestamp.Format("2006-01-02 15:04"),
					commit.Author,
					commit.Email,
					commit.Subject)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxCount, "max-count", "n", 20, "limit the number of commits")
	cmd.Flags().StringVar(&ref, "ref", "", "log from this ref instead of HEAD")

	return cmd
}
