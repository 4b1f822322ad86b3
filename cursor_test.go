// cursor_test.go - spec.md §8 invariants and scenario seeds not
// already covered by traversal_test.go
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
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

// withOpenCloseCounters swaps in counting wrappers around osOpen/osClose
// for the duration of a test and returns accessors for the counts.
func withOpenCloseCounters(t *testing.T) (opens, closes *int64) {
	t.Helper()
	var o, c int64
	origOpen, origClose := osOpen, osClose
	osOpen = func(name string) (*os.File, error) {
		atomic.AddInt64(&o, 1)
		return origOpen(name)
	}
	osClose = func(f *os.File) error {
		atomic.AddInt64(&c, 1)
		return origClose(f)
	}
	t.Cleanup(func() {
		osOpen = origOpen
		osClose = origClose
	})
	return &o, &c
}

func TestOpenCloseBalanced(t *testing.T) {
	assert := newAsserter(t)

	tmp := rootdir(t.TempDir())
	must := func(err error) {
		if err != nil {
			t.Fatalf("setup: %s", err)
		}
	}
	must(tmp.mkdir("a/b/c"))
	must(tmp.mkfile("a/f1", "x"))
	must(tmp.mkfile("a/b/f2", "y"))
	must(tmp.mkfile("a/b/c/f3", "z"))

	opens, closes := withOpenCloseCounters(t)

	c := NewCursor()
	if err := c.Filter(string(tmp)); err != nil {
		t.Fatalf("Filter: %s", err)
	}
	for !c.EOF() {
		if err := c.Next(); err != nil {
			t.Fatalf("Next: %s", err)
		}
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}

	assert(*opens > 0, "expected at least one directory open")
	assert(*opens == *closes, "opens (%d) != closes (%d)", *opens, *closes)
}

func TestCancellationClosesWithoutReachingEOF(t *testing.T) {
	assert := newAsserter(t)

	tmp := rootdir(t.TempDir())
	if err := tmp.mkdir("a/b/c"); err != nil {
		t.Fatalf("setup: %s", err)
	}

	opens, closes := withOpenCloseCounters(t)

	c := NewCursor()
	if err := c.Filter(string(tmp)); err != nil {
		t.Fatalf("Filter: %s", err)
	}
	// step exactly once, short of EOF
	if err := c.Next(); err != nil {
		t.Fatalf("Next: %s", err)
	}
	assert(!c.EOF(), "expected scan to still be in progress")

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}
	assert(*opens == *closes, "cancellation leaked handles: opens=%d closes=%d", *opens, *closes)
}

func TestEmptyDirectoryYieldsOneRow(t *testing.T) {
	assert := newAsserter(t)

	tmp := rootdir(t.TempDir())
	if err := tmp.mkdir("e"); err != nil {
		t.Fatalf("setup: %s", err)
	}

	c := NewCursor()
	if err := c.Filter(filepath.Join(string(tmp), "e")); err != nil {
		t.Fatalf("Filter: %s", err)
	}

	rows := drain(t, c)
	assert(len(rows) == 1, "expected exactly 1 row for an empty directory, got %d", len(rows))
	assert(rows[0].name == "e", "name = %q, want e", rows[0].name)
	assert(rows[0].typ == TypeDirectory, "type = %d, want dir", rows[0].typ)
}

func TestSymlinkDoesNotDescend(t *testing.T) {
	assert := newAsserter(t)

	tmp := rootdir(t.TempDir())
	must := func(err error) {
		if err != nil {
			t.Fatalf("setup: %s", err)
		}
	}
	must(tmp.mkdir("t"))
	must(tmp.mkfile("t/a", "xyz"))
	must(tmp.symlink(filepath.Join(string(tmp), "t"), "s"))

	c := NewCursor()
	if err := c.Filter(filepath.Join(string(tmp), "s")); err != nil {
		t.Fatalf("Filter: %s", err)
	}

	rows := drain(t, c)
	assert(len(rows) == 1, "expected exactly 1 row for a symlink root (no descent), got %d: %+v", len(rows), rows)
	assert(rows[0].name == "s", "name = %q, want s", rows[0].name)
	assert(rows[0].typ == TypeLink, "type = %d, want link", rows[0].typ)
}

func TestRerunYieldsIdenticalSequence(t *testing.T) {
	assert := newAsserter(t)

	tmp := rootdir(t.TempDir())
	must := func(err error) {
		if err != nil {
			t.Fatalf("setup: %s", err)
		}
	}
	must(tmp.mkdir("a/b"))
	must(tmp.mkfile("a/f1", "x"))
	must(tmp.mkfile("a/b/f2", "y"))

	run := func() []seenRow {
		c := NewCursor()
		if err := c.Filter(filepath.Join(string(tmp), "a")); err != nil {
			t.Fatalf("Filter: %s", err)
		}
		return drain(t, c)
	}

	first := run()
	second := run()

	assert(len(first) == len(second), "row counts differ across reruns: %d vs %d", len(first), len(second))
	for i := range first {
		assert(first[i].name == second[i].name, "row %d name differs: %q vs %q", i, first[i].name, second[i].name)
	}
}

func TestMatchOnYieldedPathIsNonEmpty(t *testing.T) {
	assert := newAsserter(t)

	tmp := rootdir(t.TempDir())
	must := func(err error) {
		if err != nil {
			t.Fatalf("setup: %s", err)
		}
	}
	must(tmp.mkdir("a/b"))
	must(tmp.mkfile("a/b/leaf", "x"))

	c := NewCursor()
	if err := c.Filter(string(tmp)); err != nil {
		t.Fatalf("Filter: %s", err)
	}
	rows := drain(t, c)

	var bPath string
	for _, r := range rows {
		if r.name == "b" {
			// a directory row's path column is the directory's own path
			bPath = r.path
		}
	}
	assert(bPath != "", "never saw row for b: %+v", rows)

	c2 := NewCursor()
	if err := c2.Filter(bPath); err != nil {
		t.Fatalf("Filter: %s", err)
	}
	rows2 := drain(t, c2)
	assert(len(rows2) > 0, "MATCH on a previously yielded path produced no rows")
	assert(rows2[0].name == "b", "first row of re-scan = %q, want b", rows2[0].name)
}
