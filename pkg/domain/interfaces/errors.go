package interfaces

import "errors"

// Sentinel errors shared by all repository backends. Callers match them
// with errors.Is to tell rule rejections apart from transport failures.
var (
	ErrNotFound = errors.New("record not found")

	// ErrPermissionDenied marks a rejection by the backing store's own
	// rules. It must never be swallowed as a generic failure.
	ErrPermissionDenied = errors.New("permission denied by store")
)
