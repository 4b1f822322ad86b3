// registry.go - module-scope connection registry
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
	"github.com/puzpuzpuz/xsync/v3"
)

// tableRegistry tracks live *Table values by the sqlite3 connection
// they were created on, one entry per connection: a later table on the
// same connection replaces the earlier entry. sqlite3 may issue Create/Connect calls for several
// connections concurrently, so unlike a Cursor -- which is never
// shared across goroutines -- this map needs to be safe for
// concurrent access without an explicit lock.
var tableRegistry = xsync.NewMapOf[*sqlite3.SQLiteConn, *Table]()

func registerTable(c *sqlite3.SQLiteConn, t *Table) {
	tableRegistry.Store(c, t)
}

// unregisterTable removes c's entry and reports whether one was
// actually there. Table.Disconnect and Table.Destroy discard the
// result, so a second unregister on the same connection is a no-op.
func unregisterTable(c *sqlite3.SQLiteConn) bool {
	_, ok := tableRegistry.LoadAndDelete(c)
	return ok
}

// LiveTables returns the number of open connections that currently
// have a virtual table instance registered. It exists for tests and
// diagnostic introspection (e.g. a `PRAGMA`-style health check in an
// embedding application); sqlite3 itself never calls it.
func LiveTables() int {
	return tableRegistry.Size()
}
