package storage

import "errors"

// Common client storage errors
var (
	// ErrChangeNotFound indicates that change record was not found
	ErrChangeNotFound = errors.New("change record not found")

	// ErrEntityNotFound indicates that entity was not found in the local data store
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDeviceNotFound indicates that device was not found
	ErrDeviceNotFound = errors.New("device not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
