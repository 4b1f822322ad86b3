// xattrfunc.go - the xattr() scalar function
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

package vtab

import "github.com/opencoff/go-fsvtab"

// xattrFunc backs `xattr(path, key)`: returns the named extended
// attribute as TEXT, or SQL NULL if the file has no such attribute or
// the platform doesn't support xattrs at all. The virtual table's DDL
// is frozen at 14 columns (spec.md §6), so this is the only way a
// query reaches extended attributes.
func xattrFunc(path, key string) interface{} {
	v, ok := fsvtab.GetXattr(path, key)
	if !ok {
		return nil
	}
	return v
}
