// entry_portable.go - best-effort Entry construction for platforms
// with no unix.Stat_t at all (windows, plan9, js/wasm).
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

//go:build !unix

package fsvtab

import "os"

// lstatEntry lstats path using the portable os.Lstat path. Ino, Dev,
// Rdev, Uid, Gid and Nlink are left at zero: this platform has no
// normalized way to recover them without per-OS syscall plumbing this
// package does not carry.
func lstatEntry(path, name string) (*Entry, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return &Entry{
		fname: path,
		name:  name,
		Siz:   fi.Size(),
		Mod:   fi.Mode(),
		Mtim:  fi.ModTime(),
	}, nil
}
