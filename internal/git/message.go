package git

import (
	"fmt"
	"strings"
)

// maxMessagePaths is how many file paths a derived commit message lists
// before collapsing the remainder into a count.
const maxMessagePaths = 3

// commitMessage derives a commit message from pending changes when the
// caller supplied none. Zero changes produce the literal "Empty commit".
func commitMessage(entries []ChangeEntry) string {
	if len(entries) == 0 {
		return "Empty commit"
	}
	shown := len(entries)
	if shown > maxMessagePaths {
		shown = maxMessagePaths
	}
	paths := make([]string, 0, shown)
	for _, entry := range entries[:shown] {
		paths = append(paths, entry.Path)
	}
	message := "Update " + strings.Join(paths, ", ")
	if rest := len(entries) - shown; rest > 0 {
		message += fmt.Sprintf(" and %d more files", rest)
	}
	return message
}
