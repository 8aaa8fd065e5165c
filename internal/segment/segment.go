// Package segment splits and joins slash-delimited namespace paths.
package segment

import "strings"

// Separator delimits path segments.
const Separator = "/"

// Split breaks a path into its non-empty segments.
// Leading, trailing and repeated separators are ignored; segment content is
// not validated.
func Split(path string) []string {
	parts := strings.Split(path, Separator)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Join renders segments in canonical form ("/a/b"). Join(nil) is "/".
func Join(segments []string) string {
	if len(segments) == 0 {
		return Separator
	}
	return Separator + strings.Join(segments, Separator)
}

// Clean returns the canonical form of path.
func Clean(path string) string {
	return Join(Split(path))
}
