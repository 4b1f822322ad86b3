// main.go - fsvtabctl: a small CLI harness for the filesystem virtual
// table
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

package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"path"
	"strings"

	flag "github.com/opencoff/pflag"
	"github.com/opencoff/shlex"

	"github.com/opencoff/go-fsvtab/vtab"
)

var z = path.Base(os.Args[0])

func main() {
	var help bool
	var query string
	var dbpath string

	fs := flag.NewFlagSet(z, flag.ExitOnError)
	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.StringVarP(&query, "query", "q", "", "Run `Q` as a one-shot query and exit")
	fs.StringVarP(&dbpath, "db", "d", ":memory:", "Open sqlite database at `P` [:memory:]")
	fs.SetOutput(os.Stdout)

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}
	if help {
		usage(fs)
	}

	vtab.Register()

	db, err := sql.Open(vtab.DriverName, dbpath)
	if err != nil {
		die("open %s: %s", dbpath, err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE VIRTUAL TABLE fs USING ` + vtab.VirtualTableName); err != nil {
		die("create virtual table: %s", err)
	}

	if len(query) > 0 {
		if err := runQuery(db, query); err != nil {
			die("%s", err)
		}
		return
	}

	if err := repl(db); err != nil {
		die("%s", err)
	}
}

// repl reads shlex-tokenized lines from stdin; the first token picks
// a ".quit"/".exit" directive, and any other line is run as a query
// exactly as typed, since SQL needs its own quoting that a naive
// token-by-token pass would mangle.
func repl(db *sql.DB) error {
	fmt.Printf("%s> ", z)
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) > 0 {
			args, err := shlex.Split(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", z, err)
			} else if len(args) > 0 {
				switch args[0] {
				case ".quit", ".exit":
					return nil
				default:
					if err := runQuery(db, line); err != nil {
						fmt.Fprintf(os.Stderr, "%s: %s\n", z, err)
					}
				}
			}
		}
		fmt.Printf("%s> ", z)
	}
	fmt.Println()
	return sc.Err()
}

func runQuery(db *sql.DB, q string) error {
	rows, err := db.Query(q)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	vals := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	fmt.Println(strings.Join(cols, "\t"))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = fmt.Sprintf("%v", v)
		}
		fmt.Println(strings.Join(parts, "\t"))
	}
	return rows.Err()
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, z, z)
	fs.PrintDefaults()
	os.Exit(1)
}

func die(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", z, fmt.Sprintf(msg, args...))
	os.Exit(1)
}

var usageStr = `%s - query the file system with SQL.

Usage: %s [options] [-q query]

With no -q, starts an interactive REPL over the "fs" virtual table.
Type ".quit" or ".exit" to leave the REPL.

Options:
`
