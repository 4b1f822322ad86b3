// doc.go - package overview
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

// Package fsvtab implements a resumable, depth-first file-system
// cursor suitable for driving a SQL virtual table. It knows nothing
// about SQL: it parses a comma separated root-list, walks one or more
// root paths in pre-order, and advances one row per call to Next,
// exposing it through Column and Rowid.
//
// The sqlite3 binding that turns this cursor into a queryable "fs"
// table lives in the vtab subpackage.
package fsvtab
