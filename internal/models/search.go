package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SQLite's LIKE only ignores case for ASCII. casefold() gives queries
// the Unicode case folding names and comments in Cyrillic need.
func init() {
	go_sqlite.MustRegisterDeterministicScalarFunction("casefold", 1, func(_ *go_sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case nil:
			return nil, nil
		case string:
			return foldCase(v), nil
		case []byte:
			return foldCase(string(v)), nil
		default:
			return nil, fmt.Errorf("casefold: unsupported argument type %T", v)
		}
	})
}

func foldCase(s string) string {
	return norm.NFC.String(cases.Fold().String(s))
}

// ContainsFold returns a condition and its argument that match rows where
// the column contains the search term, ignoring case. Wildcards in the
// term match literally.
func ContainsFold(column, search string) (string, string) {
	return fmt.Sprintf("casefold(%s) LIKE ? ESCAPE '\\'", column), "%" + escapeLike(foldCase(search)) + "%"
}

// escapeLike escapes the wildcard characters of LIKE patterns.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
