// Package strings holds small string helpers shared across modules
package strings

import std "strings"

// FirstNonEmpty returns the first value with non-whitespace content, or ""
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if std.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// MustString returns s if it has non-whitespace content, otherwise panics naming what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /session to one leading slash and no trailing slash.
// Panics if nothing remains.
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Mask keeps the first and last n runes of a secret and stars the middle
func Mask(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= 2*n {
		return std.Repeat("*", len(r))
	}
	return string(r[:n]) + std.Repeat("*", len(r)-2*n) + string(r[len(r)-n:])
}
