// cursor.go - the resumable depth-first file-system cursor
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

// Cursor is a resumable, depth-first file-system walker. It is the
// pure, driver-agnostic half of the design: it knows how to advance
// one row per call, but nothing about SQL. The vtab subpackage adapts
// it to a sqlite3 VTabCursor.
//
// A Cursor is not safe for concurrent use; spec.md §5 requires that
// the planner serialize all calls to a given cursor, and this type
// relies on that guarantee to avoid any internal locking.
type Cursor struct {
	roots      []string
	nextRootIx int
	stack      []*frame

	count  int64
	eof    bool
	errMsg string

	warn WarnFunc
}

// NewCursor returns an empty cursor: no roots, no stack, not primed.
// Call Filter to prime the first row before calling Next/Column/Rowid.
func NewCursor() *Cursor {
	return &Cursor{warn: defaultWarnFunc()}
}

// SetWarnFunc overrides the cursor's warning sink. Must be called
// before Filter.
func (c *Cursor) SetWarnFunc(w WarnFunc) {
	if w != nil {
		c.warn = w
	}
}

// Filter (re)initializes the cursor with the given root-list argument
// (the MATCH value, already a single string -- pass "" when no MATCH
// constraint was claimed) and primes the first row. Mirrors spec.md
// §4.4: an invalid root surfaces via ErrMsg and sets EOF rather than
// returning to a half-initialized state.
func (c *Cursor) Filter(rootsArg string) error {
	c.closeStack()
	c.roots = ParseRoots(rootsArg)
	c.nextRootIx = 0
	c.count = 0
	c.eof = false
	c.errMsg = ""

	return c.advance()
}

// Next advances the cursor by exactly one row.
func (c *Cursor) Next() error {
	if c.eof {
		return nil
	}
	return c.advance()
}

// EOF reports whether the scan has produced its last row.
func (c *Cursor) EOF() bool { return c.eof }

// Count returns the number of rows emitted so far.
func (c *Cursor) Count() int64 { return c.count }

// ErrMsg returns the diagnostic recorded for an invalid root, if any.
func (c *Cursor) ErrMsg() string { return c.errMsg }

// Rowid returns the inode of the current entry, or 0 at end-of-set or
// on an otherwise empty cursor (spec.md §4.4: rowid never fails).
func (c *Cursor) Rowid() int64 {
	e := c.currentEntry()
	if e == nil {
		return 0
	}
	return int64(e.Ino)
}

// Close releases every frame owned by the cursor. Safe to call on a
// cursor that never had Filter called on it, and safe to call more
// than once.
func (c *Cursor) Close() error {
	c.closeStack()
	return nil
}

func (c *Cursor) closeStack() {
	for _, f := range c.stack {
		f.close()
	}
	c.stack = nil
}

func (c *Cursor) top() *frame {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

func (c *Cursor) currentEntry() *Entry {
	f := c.top()
	if f == nil {
		return nil
	}
	return f.entry
}

// parentDirIno returns the inode of the directory holding the current
// row (column 13, "dir"), or 0 at a root. When the top frame is itself
// the row (a freshly pushed directory), that is the parent frame's own
// inode; when the top frame's entry has been overwritten by a
// plain-file child, that is the top frame's own inode.
func (c *Cursor) parentDirIno() int64 {
	f := c.top()
	if f == nil {
		return 0
	}
	if f.self {
		if f.parent == nil {
			return 0
		}
		return int64(f.parent.ownIno)
	}
	return int64(f.ownIno)
}

// containingDirPath returns the path of the directory that holds the
// current entry: the frame's own path if it is itself the row (the
// directory-as-row case), otherwise still the frame's path, since a
// plain-file row is represented in place on its containing directory's
// frame (column 1, "path").
func (c *Cursor) containingDirPath() string {
	f := c.top()
	if f == nil {
		return ""
	}
	return f.path
}
