// Package utils provides shared utility functions used across multiple packages.
package utils

import (
	"strconv"
	"strings"
)

// JoinWords joins command-line words with single spaces.
// A nil or empty slice yields "".
func JoinWords(words []string) string {
	return strings.Join(words, " ")
}

// WordsFrom returns args[from:], or nil when from is past the end.
func WordsFrom(args []string, from int) []string {
	if from >= len(args) {
		return nil
	}
	return args[from:]
}

// JSONPointerToPath converts a JSON Pointer (RFC 6901) to a dot-notation path.
// For example, "#/tasks/0/name" becomes "tasks[0].name".
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		// ~1 is "/" and ~0 is "~"
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + strconv.Itoa(idx) + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
