// frame.go - one stack record per directory open during a traversal
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

import (
	"io"
	"os"
	"path/filepath"
)

// osOpen and osClose are indirections over os.Open/(*os.File).Close so
// tests can count directory-open/close pairs without instrumenting
// the file system itself (spec.md §8 invariant 1).
var (
	osOpen  = os.Open
	osClose = func(f *os.File) error { return f.Close() }
)

// frame is one record on the traversal stack: an absolute path, the
// open directory handle backing it (nil for a root that turned out to
// be a non-directory file), the metadata of the entry currently
// visible to the planner, and a back-link to the enclosing frame.
//
// Invariants (spec.md §3): frame.path values are strictly nested; a
// frame with a non-nil handle is closed exactly once, by ascend or by
// Cursor.Close; the top frame's entry is always the row currently
// visible unless the cursor is at end-of-set.
type frame struct {
	path   string
	handle *os.File
	entry  *Entry
	parent *frame

	// ownIno is the inode of the directory this frame represents,
	// captured at frame creation. entry is mutated in place when a
	// plain-file child is the current row, so ownIno is the only
	// reliable way to recover "this directory's inode" once that
	// happens.
	ownIno uint64

	// self is true while entry still describes the directory itself
	// (the row emitted when the frame was pushed); false once a child
	// file's metadata has been read into entry.
	self bool
}

// joinPath concatenates a parent path and a child name with exactly
// one separator, regardless of whether parent already ends in one
// (spec.md §4.3 edge case).
func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	if parent[len(parent)-1] == '/' {
		return parent + name
	}
	return parent + "/" + name
}

// newRootFrame builds the initial frame for a root path: if root is a
// directory it is opened and installed as a single-element stack; if
// it is a regular file or other non-directory, a file-leaf frame (nil
// handle) is returned so the next advance() rolls to the next root.
func newRootFrame(root string) (*frame, error) {
	ent, err := lstatEntry(root, "")
	if err != nil {
		return nil, &RootError{Op: "stat", Path: root, Err: err}
	}
	ent.fname = root

	if !ent.IsDir() {
		// a root that is a regular file has no children; column 1
		// ("path") must still read as the containing directory, the
		// same as any other file row (spec.md §4.4 column table).
		return &frame{path: filepath.Dir(root), entry: ent, ownIno: ent.Ino, self: true}, nil
	}

	f, err := osOpen(root)
	if err != nil {
		return nil, &RootError{Op: "open", Path: root, Err: err}
	}
	return &frame{path: root, handle: f, entry: ent, ownIno: ent.Ino, self: true}, nil
}

// openChild opens name (a child of parent, already known to be a
// directory) and returns a new frame describing it. The new frame's
// entry is populated by statting the directory itself -- that
// directory is the next emitted row.
func openChild(parent *frame, name string) (*frame, error) {
	path := joinPath(parent.path, name)

	h, err := osOpen(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	ent, err := lstatEntry(path, name)
	if err != nil {
		h.Close()
		return nil, err
	}

	return &frame{path: path, handle: h, entry: ent, parent: parent, ownIno: ent.Ino, self: true}, nil
}

// readEntry requests exactly one directory record from f, skipping
// "." and "..". io.EOF (via an empty result) signals exhaustion, a
// normal outcome rather than an error.
func (f *frame) readEntry() (name string, isDir bool, err error) {
	for {
		des, derr := f.handle.ReadDir(1)
		if derr != nil {
			if derr == io.EOF {
				return "", false, nil
			}
			// spec.md §4.3: a per-entry read failure is treated as
			// directory exhaustion, not a hard error.
			return "", false, nil
		}
		if len(des) == 0 {
			return "", false, nil
		}

		de := des[0]
		nm := de.Name()
		if nm == "." || nm == ".." {
			continue
		}

		return nm, de.IsDir(), nil
	}
}

// close releases the frame's directory handle, if any. Safe to call
// more than once.
func (f *frame) close() {
	if f.handle != nil {
		osClose(f.handle)
		f.handle = nil
	}
}
