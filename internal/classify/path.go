// Package classify contains the pure data-shaping helpers behind event
// reporting: path sanitization, language inference, and read/write
// classification. Every function is total; malformed input degrades to a
// safe default instead of returning an error.
package classify

import "strings"

// maxRelativePathLen caps the reported relative path length, in characters.
const maxRelativePathLen = 2048

// SanitizeRelativePath normalizes an untrusted relative file path into a
// traversal-free forward-slash path. Empty or fully-filtered input yields
// "unknown".
func SanitizeRelativePath(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return "unknown"
	}
	s = strings.ReplaceAll(s, `\`, "/")

	var parts []string
	for _, p := range strings.Split(s, "/") {
		if p == "" || p == ".." {
			continue
		}
		parts = append(parts, p)
	}
	joined := strings.Join(parts, "/")
	if joined == "" {
		return "unknown"
	}
	if runes := []rune(joined); len(runes) > maxRelativePathLen {
		return string(runes[:maxRelativePathLen])
	}
	return joined
}

// ProjectNameFromRoot returns the final segment of a workspace root path,
// or "unknown" when the root is empty.
func ProjectNameFromRoot(root string) string {
	s := strings.ReplaceAll(strings.TrimSpace(root), `\`, "/")
	s = strings.TrimRight(s, "/")
	if s == "" {
		return "unknown"
	}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if s == "" {
		return "unknown"
	}
	return s
}
