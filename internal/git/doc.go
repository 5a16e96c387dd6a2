// Package git provides a typed automation layer over the git command line
// tool. Every operation spawns git as a subprocess, captures its output, and
// turns the line-oriented text into value records (commits, change entries,
// remotes, stashes, worktrees).
//
// The package is organized into focused files:
//   - repo.go: Repo facade, Open/Init/Clone constructors, discovery
//   - status.go: working-tree status, clean checks, untracked/conflicted files
//   - log.go: commit log parsing, history queries, existence checks
//   - branch.go: branch listing, creation, switching
//   - remote.go: remote listing and management
//   - stash.go: stash listing, push/apply/drop
//   - worktree.go: worktree listing and management
//   - commit.go: commit creation and the message policy
//   - classify.go: benign stderr classification tables
package git
