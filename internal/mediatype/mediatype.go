// Package mediatype provides normalization and validation helpers for MIME
// media-type strings as they appear in project configuration.
package mediatype

import (
	"regexp"
	"strings"
)

var mediaTypeRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9!#$&^_.+-]*/[a-z0-9][a-z0-9!#$&^_.+-]*(;.*)?$`)

// Normalize lowercases the type and subtype and trims surrounding
// whitespace. Parameters after ";" are preserved as-is.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, ";"); idx >= 0 {
		return strings.ToLower(s[:idx]) + s[idx:]
	}
	return strings.ToLower(s)
}

// IsValid checks whether s looks like a type/subtype media-type string.
// Validation is applied to configuration input only; builder inputs stay
// permissive.
func IsValid(s string) bool {
	return mediaTypeRegex.MatchString(Normalize(s))
}

// NormalizeAll normalizes every entry of in, dropping blanks. A nil input
// yields nil.
func NormalizeAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
