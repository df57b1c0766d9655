package common

import (
	"fmt"
	"regexp"
	"sort"
)

// validIdentifier matches unquoted table and column names.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Row maps column names to values for a single statement.
type Row map[string]interface{}

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// ValidateIdentifiers fails on the first name that is not a plain identifier.
func ValidateIdentifiers(names ...string) error {
	for _, name := range names {
		if !IsValidIdentifier(name) {
			return fmt.Errorf("invalid identifier: %q", name)
		}
	}
	return nil
}

// Columns returns the row's column names sorted, so statements built from
// the same row shape are byte-identical.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for col := range r {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// Values returns the row's values in the order of cols.
func (r Row) Values(cols []string) []interface{} {
	vals := make([]interface{}, len(cols))
	for i, col := range cols {
		vals[i] = r[col]
	}
	return vals
}

// Error marks a failure that happened while talking to the database, as
// opposed to a failure while generating data.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
