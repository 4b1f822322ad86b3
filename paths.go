// paths.go - parse the MATCH argument into an ordered root list
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package fsvtab

import "strings"

// DefaultRoot is used when the caller supplies no MATCH argument at all.
const DefaultRoot = "/"

// ParseRoots splits a comma separated list of paths into an ordered,
// non-empty list of trimmed path strings. Empty elements (a leading,
// trailing or doubled comma) are dropped. ParseRoots does not validate
// that a path exists or is well formed; that is the traversal engine's
// job. An empty or all-whitespace argument yields []string{DefaultRoot}.
func ParseRoots(arg string) []string {
	if len(strings.TrimSpace(arg)) == 0 {
		return []string{DefaultRoot}
	}

	parts := strings.Split(arg, ",")
	roots := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) == 0 {
			continue
		}
		roots = append(roots, p)
	}

	if len(roots) == 0 {
		return []string{DefaultRoot}
	}
	return roots
}
