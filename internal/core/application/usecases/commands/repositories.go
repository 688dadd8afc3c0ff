// Package commands contains the operations that modify registry state.
// Every command is a value built by a validating constructor and executed by a
// handler that owns the repository it writes to.
package commands

import "time"

// now is the time source for every handler. Timestamps are kept in UTC so
// they serialize with a Z suffix.
func now() time.Time {
	return time.Now().UTC()
}
