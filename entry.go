// entry.go - normalized directory-entry metadata
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
	"io/fs"
	"path/filepath"
	"time"
)

// Entry represents the stat(2) attributes of a single file-system
// entry, normalized across platforms. It is the value a Frame carries
// for whatever directory entry is currently visible to the planner.
//
// name/fname back the name column: most entries carry a basename
// (name); the root frame of a scan only has the full path (fname), in
// which case the name column falls back to that path's last element.
type Entry struct {
	Ino   uint64
	Siz   int64
	Dev   uint64
	Rdev  uint64
	Mod   fs.FileMode
	Uid   uint32
	Gid   uint32
	Nlink uint32

	Atim time.Time
	Mtim time.Time
	Ctim time.Time

	name  string
	fname string
}

// Name returns the entry's basename, falling back to the last element
// of the full path when only that is known, and to the empty string
// when neither is set.
func (e *Entry) Name() string {
	if e.name != "" {
		return e.name
	}
	if e.fname != "" {
		return filepath.Base(e.fname)
	}
	return ""
}

// IsDir reports whether this entry is a directory.
func (e *Entry) IsDir() bool { return e.Mod.IsDir() }

// TypeCode maps the entry's mode bits to the numeric type code used
// by column 2 (spec.md §4.4 column table).
func (e *Entry) TypeCode() int64 {
	switch {
	case e.Mod&fs.ModeDir != 0:
		return TypeDir
	case e.Mod&fs.ModeSymlink != 0:
		return TypeLink
	case e.Mod&fs.ModeNamedPipe != 0:
		return TypePipe
	case e.Mod&fs.ModeSocket != 0:
		return TypeSocket
	case e.Mod&fs.ModeCharDevice != 0:
		return TypeChar
	case e.Mod&fs.ModeDevice != 0:
		return TypeBlock
	case e.Mod&fs.ModeType == 0:
		return TypeRegular
	default:
		return TypeUnknown
	}
}
