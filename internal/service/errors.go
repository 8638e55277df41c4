package service

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a unique name constraint would
	// be violated.
	ErrDuplicateName = errors.New("name already exists")

	// ErrVendorInactive is returned when a write references a vendor
	// that has been deactivated.
	ErrVendorInactive = errors.New("vendor is inactive")
)
