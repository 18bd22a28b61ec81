package contract

import "errors"

// Shared repository error values. Repositories wrap these with context so
// callers can classify failures with errors.Is without depending on the
// storage driver.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)
