// xattr.go - read-only extended attribute lookup
//
// (c) 2023- Sudhi Herle <sudhi@herle.net>
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

import "github.com/pkg/xattr"

// GetXattr returns the value of a single named extended attribute of
// nm, following symlinks. The bool is false if nm has no such
// attribute, the platform doesn't support xattrs, or nm can't be
// stat'd at all -- the vtab subpackage's xattr() scalar function
// (spec.md §7's programmer-misuse policy) turns any of those into a
// plain SQL NULL rather than surfacing the distinction to the caller.
func GetXattr(nm, key string) (string, bool) {
	return get(xattr.Get, nm, key)
}

// LgetXattr is GetXattr for the symlink itself: if nm is a symlink,
// it returns the link's own attribute rather than the target's.
func LgetXattr(nm, key string) (string, bool) {
	return get(xattr.LGet, nm, key)
}

func get(fn func(nm, key string) ([]byte, error), nm, key string) (string, bool) {
	b, err := fn(nm, key)
	if err != nil {
		return "", false
	}
	return string(b), true
}
