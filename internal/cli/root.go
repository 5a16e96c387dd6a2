// Package cli wires the git facade into cobra commands. Commands here are
// thin glue: argument translation in, formatted facade results out.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gitward.dev/gitward/internal/config"
	"gitward.dev/gitward/internal/git"
	"gitward.dev/gitward/internal/output"
)

// rootState carries flag values and lazily built collaborators shared by
// all subcommands.
type rootState struct {
	repoDir string
	tool    string
	timeout time.Duration
	debug   bool

	splog *output.Splog
}

// repo opens the facade for the directory selected by flags, discovering
// the repository root when no --repo was given.
func (s *rootState) repo() (*git.Repo, error) {
	dir := s.repoDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root, err := git.DiscoverRoot(wd)
		if err != nil {
			return nil, err
		}
		dir = root
	}
	return git.Open(git.Options{
		Dir:     dir,
		Tool:    s.tool,
		Timeout: s.timeout,
		Logger:  s.splog.Logger(),
	})
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:     "gitward",
		Short:   "Gitward is a typed automation layer over the git command line",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultPath())
			if err != nil {
				return err
			}
			if state.tool == "" {
				state.tool = cfg.Tool
			}
			if state.timeout == 0 {
				state.timeout = cfg.Timeout()
			}
			if !state.debug {
				state.debug = cfg.Debug || os.Getenv("GITWARD_DEBUG") != ""
			}

			logFile := ""
			if state.debug {
				logFile = cfg.LogFile
				if logFile == "" {
					logFile = config.DefaultLogFile()
				}
			}
			state.splog, err = output.NewSplogWithConfig(logFile, state.debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.splog != nil {
				_ = state.splog.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.repoDir, "repo", "", "repository path (default: discovered from the working directory)")
	rootCmd.PersistentFlags().StringVar(&state.tool, "tool", "", "git executable name or path")
	rootCmd.PersistentFlags().DurationVar(&state.timeout, "timeout", 0, "per-command timeout")
	rootCmd.PersistentFlags().BoolVar(&state.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newStatusCmd(state))
	rootCmd.AddCommand(newLogCmd(state))
	rootCmd.AddCommand(newCommitCmd(state))
	rootCmd.AddCommand(newBranchesCmd(state))
	rootCmd.AddCommand(newRemotesCmd(state))
	rootCmd.AddCommand(newStashesCmd(state))
	rootCmd.AddCommand(newWorktreesCmd(state))
	rootCmd.AddCommand(newVersionCmd(state))

	return rootCmd
}
