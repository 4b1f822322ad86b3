// column.go - the column projector
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

// Column ordinals, matching the fixed 14-column schema.
const (
	ColName = iota
	ColPath
	ColType
	ColSize
	ColUid
	ColGid
	ColProt
	ColMtime
	ColCtime
	ColAtime
	ColDev
	ColNlink
	ColInode
	ColDir

	NumColumns
)

// ColumnKind tells the caller what Go type a Column value carries, so
// the vtab layer can bind it with the matching sqlite3 result-setter.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
)

// Column maps a column ordinal to the value of the cursor's current
// row. It is stateless beyond reading the top frame's entry and the
// surrounding cursor bookkeeping; an out-of-range ordinal yields an
// empty string rather than an error (spec.md §4.4, §7: programmer
// misuse degrades to a benign value).
func (c *Cursor) Column(i int) (any, ColumnKind) {
	e := c.currentEntry()
	if e == nil {
		return "", KindText
	}

	switch i {
	case ColName:
		return e.Name(), KindText
	case ColPath:
		return c.containingDirPath(), KindText
	case ColType:
		return e.TypeCode(), KindInt
	case ColSize:
		return e.Siz, KindInt
	case ColUid:
		return int64(e.Uid), KindInt
	case ColGid:
		return int64(e.Gid), KindInt
	case ColProt:
		return int64(e.Mod.Perm()), KindInt
	case ColMtime:
		return e.Mtim.Unix(), KindInt
	case ColCtime:
		return e.Ctim.Unix(), KindInt
	case ColAtime:
		return e.Atim.Unix(), KindInt
	case ColDev:
		return int64(e.Dev), KindInt
	case ColNlink:
		return int64(e.Nlink), KindInt
	case ColInode:
		return int64(e.Ino), KindInt
	case ColDir:
		return c.parentDirIno(), KindInt
	default:
		return "", KindText
	}
}
