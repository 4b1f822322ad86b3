// read.go - the file_head() scalar function
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
	"os"

	"github.com/opencoff/go-mmap"
)

// maxHeadBytes bounds file_head()'s second argument so a careless
// query can't mmap an entire multi-gigabyte file into a single result
// value.
const maxHeadBytes = 64 * 1024

// fileHeadFunc backs `file_head(path, n)`: returns the leading n
// bytes (capped at maxHeadBytes) of a regular file as a BLOB, read
// zero-copy via go-mmap the same way the teacher's CopyFile did for a
// full-file copy. Returns NULL for non-regular files, negative/zero
// n, or any read error (spec.md §7's benign-value policy for
// programmer misuse).
func fileHeadFunc(path string, n int64) interface{} {
	if n <= 0 {
		return nil
	}
	if n > maxHeadBytes {
		n = maxHeadBytes
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return nil
	}

	var head []byte
	_, err = mmap.Reader(f, func(buf []byte) error {
		want := n
		if int64(len(buf)) < want {
			want = int64(len(buf))
		}
		head = append([]byte(nil), buf[:want]...)
		return nil
	})
	if err != nil {
		return nil
	}
	return head
}
