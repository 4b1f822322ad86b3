// doc.go - package doc for vtab
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

// Package vtab adapts fsvtab's cursor to a mattn/go-sqlite3 virtual
// table. It owns every sqlite-specific concern -- driver registration,
// BestIndex, value marshalling -- so the fsvtab package itself never
// imports database/sql or sqlite3.
package vtab
