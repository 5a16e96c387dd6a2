package git

import "time"

// Commit is an immutable record parsed from git log output.
type Commit struct {
	Hash      string
	Author    string
	Email     string
	Timestamp time.Time
	Subject   string
	Body      string
}

// ChangeStatus classifies one file's state relative to the last commit.
type ChangeStatus string

// Change status tags produced by the status parser.
const (
	StatusUntracked ChangeStatus = "untracked"
	StatusModified  ChangeStatus = "modified"
	StatusAdded     ChangeStatus = "added"
	StatusDeleted   ChangeStatus = "deleted"
	StatusRenamed   ChangeStatus = "renamed"
	StatusCopied    ChangeStatus = "copied"
	StatusUnmerged  ChangeStatus = "unmerged"
	StatusUnknown   ChangeStatus = "unknown"
)

// ChangeEntry is one file's entry in the working-tree status. Code is the
// verbatim two-character porcelain code; the first character describes the
// index, the second the working tree.
type ChangeEntry struct {
	Path   string
	Status ChangeStatus
	Code   string
}

// Staged reports whether the entry has an index-side change, i.e. whether a
// plain commit would record it.
func (e ChangeEntry) Staged() bool {
	return len(e.Code) > 0 && e.Code[0] != ' ' && e.Code[0] != '?'
}

// Remote is one fetch or push endpoint from `git remote -v`.
type Remote struct {
	Name string
	URL  string
	Type string // "fetch" or "push"
}

// Stash is one entry from `git stash list`.
type Stash struct {
	Index       int
	Description string
	Ref         string // canonical reference, e.g. "stash@{0}"
}

// WorktreeEntry maps the literal porcelain attribute keys of one worktree
// ("worktree", "HEAD", "branch", "bare", "detached") to their values.
// Value-less attributes map to the empty string.
type WorktreeEntry map[string]string

// Path returns the worktree's checkout directory.
func (e WorktreeEntry) Path() string {
	return e["worktree"]
}

// Head returns the commit the worktree is checked out at.
func (e WorktreeEntry) Head() string {
	return e["HEAD"]
}

// Branch returns the full ref name of the checked-out branch, empty when
// detached or bare.
func (e WorktreeEntry) Branch() string {
	return e["branch"]
}
