// paths_test.go - path-list parser tests
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
	"reflect"
	"testing"
)

func TestParseRoots(t *testing.T) {
	assert := newAsserter(t)

	cases := []struct {
		in  string
		out []string
	}{
		{"", []string{"/"}},
		{"   ", []string{"/"}},
		{"/tmp/t", []string{"/tmp/t"}},
		{"/tmp/t/a, /tmp/t/b", []string{"/tmp/t/a", "/tmp/t/b"}},
		{"/a,,/b", []string{"/a", "/b"}},
		{"/a,", []string{"/a"}},
		{",/a", []string{"/a"}},
		{"  /a  ,  /b  ", []string{"/a", "/b"}},
		{",,", []string{"/"}},
	}

	for _, c := range cases {
		got := ParseRoots(c.in)
		assert(reflect.DeepEqual(got, c.out), "ParseRoots(%q): exp %v, saw %v", c.in, c.out, got)
	}
}
