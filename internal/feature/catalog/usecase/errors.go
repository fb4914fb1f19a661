// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrProductNotFound is returned when no document matches the given ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidID is returned when an identifier string is not a valid
	// 12-byte object ID in hex form.
	ErrInvalidID = errors.New("invalid product id")

	// ErrEmptyPatch is returned when an update request carries no fields.
	ErrEmptyPatch = errors.New("empty update patch")

	// ErrInvalidReleasedDate is returned when the released_date field of an
	// update patch cannot be parsed as a date.
	ErrInvalidReleasedDate = errors.New("invalid released_date format")
)
