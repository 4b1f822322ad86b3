// entry_darwin.go - syscall.Stat_t to Entry for darwin
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

//go:build darwin

package fsvtab

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func statEntry(fname, name string, st *unix.Stat_t) *Entry {
	e := &Entry{
		fname: fname,
		name:  name,
		Ino:   st.Ino,
		Siz:   st.Size,
		Dev:   uint64(st.Dev),
		Rdev:  uint64(st.Rdev),
		Uid:   st.Uid,
		Gid:   st.Gid,
		Nlink: uint32(st.Nlink),
		Atim:  ts2time(st.Atimespec),
		Mtim:  ts2time(st.Mtimespec),
		Ctim:  ts2time(st.Ctimespec),
	}
	e.Mod = modeFromStat(uint32(st.Mode))
	return e
}

func modeFromStat(raw uint32) fs.FileMode {
	mode := fs.FileMode(raw & 0777)

	switch raw & unix.S_IFMT {
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	}
	if raw&unix.S_ISGID != 0 {
		mode |= fs.ModeSetgid
	}
	if raw&unix.S_ISUID != 0 {
		mode |= fs.ModeSetuid
	}
	if raw&unix.S_ISVTX != 0 {
		mode |= fs.ModeSticky
	}
	return mode
}
