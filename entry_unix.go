// entry_unix.go - shared helpers for unix stat-based platforms
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

//go:build unix

package fsvtab

import (
	"time"

	"golang.org/x/sys/unix"
)

func ts2time(a unix.Timespec) time.Time {
	return time.Unix(int64(a.Sec), int64(a.Nsec))
}

// lstatEntry lstats path and returns a normalized Entry. name is the
// basename to record (may be empty, in which case Entry.Name falls
// back to the last element of path). golang.org/x/sys/unix is used instead of
// the frozen, partially-deprecated syscall package so this stays
// correct on architectures where syscall.Stat_t's field layout lags
// behind (notably 32-bit time_t targets).
func lstatEntry(path, name string) (*Entry, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return statEntry(path, name, &st), nil
}
