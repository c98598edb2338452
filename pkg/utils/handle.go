package utils

import "strings"

// NormalizeHandle canonicalizes a user handle for storage and lookups.
// The legacy data files mix "@alice", "Alice" and " alice " for the same
// person; everything is stored stripped of the leading @ and lowercased.
func NormalizeHandle(raw string) string {
	h := strings.TrimSpace(raw)
	h = strings.TrimPrefix(h, "@")
	return strings.ToLower(h)
}

// DisplayHandle renders a normalized handle the way the workshop board
// shows it, with the leading @.
func DisplayHandle(handle string) string {
	if handle == "" {
		return ""
	}
	return "@" + handle
}
