// Package entity defines the domain types for the catalog feature.
package entity

import "go.mongodb.org/mongo-driver/bson"

// Product is a schema-flexible catalog document. The store accepts
// caller-defined fields verbatim; only a few well-known fields carry
// conventions (see the Field* constants).
type Product = bson.M

// Well-known product field names.
const (
	// FieldID is the store-generated document identifier.
	FieldID = "_id"

	// FieldTitle is matched case-insensitively by the list search filter.
	FieldTitle = "title"

	// FieldCategory is matched exactly by the list category filter.
	FieldCategory = "category"

	// FieldReleasedDate is coerced from its external string form to a
	// structured date value on update.
	FieldReleasedDate = "released_date"
)
