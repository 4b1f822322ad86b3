// register.go - driver registration
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
	"database/sql"
	"sync"

	"github.com/mattn/go-sqlite3"
)

var registerOnce sync.Once

// DriverName is the name callers pass to sql.Open after calling
// Register.
const DriverName = "sqlite3_fsvtab"

// VirtualTableName is the module name used in
// `CREATE VIRTUAL TABLE fs USING filesystem`.
const VirtualTableName = tableName

// Register installs the fsvtab driver under DriverName exactly once.
// Every connection opened against it gets the "filesystem" module and
// the `match`, `xattr` and `file_head` scalar functions. Go panics on
// a double call to sql.Register with the same name, so a package-level
// sync.Once stands in for the one-time module-load initialization the
// embedding database would otherwise be responsible for.
func Register() {
	registerOnce.Do(func() {
		sql.Register(DriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(c *sqlite3.SQLiteConn) error {
				if err := c.CreateModule(tableName, &Module{}); err != nil {
					return err
				}
				if err := c.RegisterFunc("match", matchFunc, true); err != nil {
					return err
				}
				if err := c.RegisterFunc("xattr", xattrFunc, true); err != nil {
					return err
				}
				return c.RegisterFunc("file_head", fileHeadFunc, true)
			},
		})
	})
}
