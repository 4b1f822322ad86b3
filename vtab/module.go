// module.go - the sqlite3.Module/VTab/VTabCursor binding
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

import (
	"github.com/mattn/go-sqlite3"
	"github.com/opencoff/go-fsvtab"
)

const tableName = "filesystem"

const ddl = `CREATE TABLE x(
	name  TEXT,
	path  TEXT,
	type  INTEGER,
	size  INTEGER,
	uid   INTEGER,
	gid   INTEGER,
	prot  INTEGER,
	mtime INTEGER,
	ctime INTEGER,
	atime INTEGER,
	dev   INTEGER,
	nlink INTEGER,
	inode INTEGER,
	dir   INTEGER
)`

// Module implements sqlite3.Module. It carries no state of its own:
// every table instance it creates is independent, and the only
// module-scope bookkeeping lives in the connection registry.
type Module struct{}

// Create is invoked once when `CREATE VIRTUAL TABLE ... USING filesystem`
// runs; Connect is invoked once per later connection to an existing
// virtual table. Both produce an identical Table, since fsvtab has no
// on-disk schema to persist between the two (spec.md non-goal: no
// writes, no schema storage).
func (m *Module) Create(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	return m.connect(c, args)
}

func (m *Module) Connect(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	return m.connect(c, args)
}

func (m *Module) connect(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	if err := c.DeclareVTab(ddl); err != nil {
		return nil, err
	}
	t := &Table{conn: c}
	registerTable(c, t)
	return t, nil
}

// Table is the per-connection virtual table handle.
type Table struct {
	conn *sqlite3.SQLiteConn
}

// BestIndex delegates to the index advisor (index.go).
func (t *Table) BestIndex(cst []sqlite3.InfoConstraint, ob []sqlite3.InfoOrderBy) (*sqlite3.IndexResult, error) {
	return bestIndex(cst)
}

func (t *Table) Disconnect() error {
	unregisterTable(t.conn)
	return nil
}

// Destroy is only reachable via DROP TABLE, which this extension
// never needs to support meaningfully since there is nothing on disk
// to remove; it behaves exactly like Disconnect.
func (t *Table) Destroy() error {
	unregisterTable(t.conn)
	return nil
}

func (t *Table) Open() (sqlite3.VTabCursor, error) {
	return &TableCursor{cur: fsvtab.NewCursor()}, nil
}

// TableCursor adapts fsvtab.Cursor to sqlite3.VTabCursor. It holds no
// traversal logic of its own -- every call is a thin forward to the
// cursor, plus the SQL value marshalling the cursor's Column method
// deliberately stays ignorant of.
type TableCursor struct {
	cur *fsvtab.Cursor
}

// Filter receives the MATCH/= value claimed by BestIndex, if any, as
// vals[0]. Only a path-column claim (idxNum == idxPath) feeds the
// root list; a name-column claim is acknowledged but not consumed
// here, since it still needs to be re-applied by the planner per row
// (spec.md §4.6).
func (vc *TableCursor) Filter(idxNum int, idxStr string, vals []interface{}) error {
	var arg string
	if idxNum == idxPath && len(vals) > 0 {
		if s, ok := vals[0].(string); ok {
			arg = s
		}
	}
	return vc.cur.Filter(arg)
}

func (vc *TableCursor) Next() error {
	return vc.cur.Next()
}

func (vc *TableCursor) EOF() bool {
	return vc.cur.EOF()
}

func (vc *TableCursor) Rowid() (int64, error) {
	return vc.cur.Rowid(), nil
}

func (vc *TableCursor) Close() error {
	return vc.cur.Close()
}

// Column marshals the projector's output into the sqlite3 result
// context. Unknown ordinals and empty values both resolve to
// ResultNull/ResultText("") through the projector's own
// programmer-misuse policy; this layer only picks the setter that
// matches the Go type it got back.
func (vc *TableCursor) Column(c *sqlite3.SQLiteContext, col int) error {
	val, kind := vc.cur.Column(col)
	switch kind {
	case fsvtab.KindInt:
		switch n := val.(type) {
		case int64:
			c.ResultInt64(n)
		case int:
			c.ResultInt64(int64(n))
		default:
			c.ResultNull()
		}
	default:
		if s, ok := val.(string); ok {
			c.ResultText(s)
		} else {
			c.ResultNull()
		}
	}
	return nil
}
