// index.go - the index advisor
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

// idxNum values handed to TableCursor.Filter, distinguishing a
// path-column claim (which changes the root list) from a name-column
// claim (forwarded but not consumed -- spec.md §4.6's documented
// weakness, the planner still re-applies the predicate per row).
const (
	idxUnclaimed = 0
	idxPath      = 1
	idxName      = 2
)

// bestIndex claims the first usable equality or MATCH constraint on
// the name or path column and forwards its value as the sole Filter
// argument. No estimated cost, order-by-consumed flag, or index
// string is set: the planner sees a full table scan modulated by the
// one claimed constant (spec.md §4.6).
func bestIndex(cst []sqlite3.InfoConstraint) (*sqlite3.IndexResult, error) {
	used := make([]bool, len(cst))
	idxNum := idxUnclaimed

	for i, c := range cst {
		if !c.Usable {
			continue
		}
		if c.Column != fsvtab.ColName && c.Column != fsvtab.ColPath {
			continue
		}
		if c.Op != sqlite3.OpEQ && c.Op != sqlite3.OpMATCH {
			continue
		}
		used[i] = true
		if c.Column == fsvtab.ColPath {
			idxNum = idxPath
		} else {
			idxNum = idxName
		}
		break
	}

	return &sqlite3.IndexResult{Used: used, IdxNum: idxNum}, nil
}
