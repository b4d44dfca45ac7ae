package database

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrDuplicate marks uniqueness violations (duplicate student number,
// double-enrollment in the same offering) so that callers can map them to a
// client-correctable error instead of a server failure.
var ErrDuplicate = errors.New("record already exists")

// TranslateError converts the SQLite driver's typed constraint errors into
// ErrDuplicate and leaves everything else untouched.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return ErrDuplicate
		}
	}
	return err
}

// IsNotFound reports whether err is GORM's missing-record sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
