package mmdb

import "github.com/juju/errors"

var (
	// ErrDatabaseIsNotReadyYet is returned if reader was closed or has not
	// opened its database yet.
	ErrDatabaseIsNotReadyYet = errors.New("database is not initialized yet")

	// ErrUnexpectedDatabaseType is returned if a file is a valid MaxMind
	// database but contains data of another table.
	ErrUnexpectedDatabaseType = errors.New("unexpected database type")
)
