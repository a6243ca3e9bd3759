package apperrors

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything not listed here is treated as an unexpected error.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("wrong password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")

	ErrItemNotFound         = errors.New("item not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrItemLocationNotFound = errors.New("item location not found")

	// A (item, location) pair may have at most one quantity record.
	ErrDuplicateAssignment = errors.New("item is already assigned to this location")

	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// Parent links within one owner's locations must stay acyclic.
	ErrLocationCycle       = errors.New("location parent would create a cycle")
	ErrLocationHasChildren = errors.New("cannot delete location with child locations")

	// Stale optimistic-concurrency token; the caller should re-read and retry.
	ErrConcurrentModification = errors.New("record was modified by another request")
)
