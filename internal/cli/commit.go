package cli

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"gitward.dev/gitward/internal/git"
	"gitward.dev/gitward/internal/output"
)

// newCommitCmd creates the commit command
func newCommitCmd(state *rootState) *cobra.Command {
	var (
		message    string
		stageAll   bool
		allowEmpty bool
		amend      bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Stage and commit pending changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := state.repo()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if stageAll {
				if err := repo.Stage(ctx); err != nil {
					return err
				}
			}

			// With no -m and stdin on a terminal, offer a prompt;
			// leaving it blank falls through to the derived message.
			if message == "" && output.IsInputTerminal() {
				prompt := &survey.Input{
					Message: "Commit message (leave empty to derive from changes):",
				}
				if err := survey.AskOne(prompt, &message); err != nil {
					return err
				}
			}

			hash, err := repo.Commit(ctx, git.CommitOptions{
				Message:    message,
				AllowEmpty: allowEmpty,
				Amend:      amend,
			})
			if err != nil {
				return err
			}
			state.splog.Info("Created commit %s", output.ShortHash(hash))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().BoolVarP(&stageAll, "all", "a", false, "stage all changes first")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "allow a commit with no changes")
	cmd.Flags().BoolVar(&amend, "amend", false, "amend the previous commit")

	return cmd
}
