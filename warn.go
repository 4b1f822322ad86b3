// warn.go - structured warning sink for per-directory failures
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
	"fmt"
	"os"

	"github.com/opencoff/go-logger"
)

// WarnFunc is called once per entry the traversal skips: a directory
// that failed to open, or an entry that could not be lstat'd. The scan is never aborted by such a failure; the warning
// is purely informational. The default implementation logs through
// go-logger; tests typically supply a closure that records calls in a
// slice for assertions.
type WarnFunc func(path string, err error)

// defaultWarnFunc builds a WarnFunc that writes to stderr through a
// go-logger instance at LOG_WARNING. It never fails to construct: if
// the logger can't be built for some reason, it falls back to a bare
// fmt.Fprintf so a broken logger never turns a warning into a crash.
func defaultWarnFunc() WarnFunc {
	log, err := logger.NewLogger("STDERR", logger.LOG_WARNING, "fsvtab", logger.Ldate|logger.Ltime)
	if err != nil {
		return func(path string, err error) {
			fmt.Fprintf(os.Stderr, "fsvtab: %s: %s\n", path, err)
		}
	}

	return func(path string, err error) {
		log.Warn("skipping %s: %s", path, err)
	}
}
