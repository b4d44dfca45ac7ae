// Package cli implements the command-line subcommands. Each command is a
// struct with ParseFlags and Run, dispatched from main. Results are printed
// as plain key/value lines.
package cli

import (
	"github.com/mkoval/agenda/internal/database"
)

// Command is the shape main dispatches on.
type Command interface {
	ParseFlags(args []string) error
	Run() error
}

// openDatabase opens the store at the given path, creating the schema when
// it does not exist yet.
func openDatabase(path string) (*database.Database, error) {
	return database.NewDatabase(path)
}

// optString renders an optional column for key/value output.
func optString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// optArg turns an optional flag value into a nullable column value.
func optArg(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// optID turns an optional numeric flag into a nullable reference.
func optID(value uint) *uint {
	if value == 0 {
		return nil
	}
	return &value
}
