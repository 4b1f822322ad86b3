// traversal.go - the depth-first advance/descend/ascend/roll-over
// state machine
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

// advance produces exactly one more row or sets EOF. It never
// recurses: depth is carried entirely by c.stack, so an arbitrarily
// deep tree costs O(1) Go stack regardless of nesting (spec.md §4.3).
func (c *Cursor) advance() error {
	for {
		top := c.top()
		if top == nil {
			return c.enterNextRoot()
		}

		// a root that was a plain file, or a directory whose handle
		// has already been exhausted and closed by a prior pass
		// through this loop, has nothing left to read.
		if top.handle == nil {
			wasRoot := top.parent == nil
			c.stack = c.stack[:len(c.stack)-1]
			if wasRoot {
				return c.enterNextRoot()
			}
			continue
		}

		name, isDir, err := top.readEntry()
		if err != nil {
			// readEntry never actually returns a non-nil error today
			// (a mid-read failure degrades to exhaustion instead),
			// but treat one as exhaustion of this directory too
			// should that change.
			c.warn(top.path, err)
			name = ""
		}

		if name == "" {
			wasRoot := top.parent == nil
			top.close()
			c.stack = c.stack[:len(c.stack)-1]
			if wasRoot {
				return c.enterNextRoot()
			}
			continue
		}

		if isDir {
			child, err := openChild(top, name)
			if err != nil {
				c.warn(joinPath(top.path, name), err)
				continue
			}
			c.stack = append(c.stack, child)
			c.count++
			return nil
		}

		ent, err := lstatEntry(joinPath(top.path, name), name)
		if err != nil {
			c.warn(joinPath(top.path, name), err)
			continue
		}
		top.entry = ent
		top.self = false
		c.count++
		return nil
	}
}

// enterNextRoot closes whatever is left on the stack and opens the
// next unvisited root, or sets EOF when the root list is exhausted. A
// root that cannot be stat'd (or, for a directory, opened) is a hard
// error
// (spec.md §7): it is recorded via ErrMsg and ends the scan, since an
// unreachable root named explicitly by the query is a query error,
// not a per-entry I/O hiccup.
func (c *Cursor) enterNextRoot() error {
	c.closeStack()

	for c.nextRootIx < len(c.roots) {
		root := c.roots[c.nextRootIx]
		c.nextRootIx++

		fr, err := newRootFrame(root)
		if err != nil {
			c.eof = true
			c.errMsg = err.Error()
			return err
		}

		c.stack = append(c.stack, fr)
		c.count++
		return nil
	}

	c.eof = true
	return nil
}
