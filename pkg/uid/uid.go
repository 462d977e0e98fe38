// Package uid binds typedid to github.com/google/uuid for the common case
// where identifiers are UUIDs: tagged aliases, time-ordered generation, and
// parsing helpers that keep uuid's own errors intact.
package uid

import (
	"fmt"

	"github.com/google/uuid"

	typedid "github.com/goliatone/go-typedid"
)

// ID is a UUID-backed tagged identifier.
type ID[Tag any] = typedid.ID[uuid.UUID, Tag]

// New generates a time-ordered (v7) identifier for the given owner.
func New[Tag any]() (ID[Tag], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return ID[Tag]{}, fmt.Errorf("uid: generate v7: %w", err)
	}
	return typedid.New[Tag](u), nil
}

// MustNew is New for contexts where generator failure is fatal.
func MustNew[Tag any]() ID[Tag] {
	id, err := New[Tag]()
	if err != nil {
		panic(err)
	}
	return id
}

// Parse converts a canonical UUID string into a tagged identifier. Parse
// failures are uuid.Parse's own and are returned unchanged.
func Parse[Tag any](s string) (ID[Tag], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[Tag]{}, err
	}
	return typedid.New[Tag](u), nil
}

// MustParse is Parse for constants and tests.
func MustParse[Tag any](s string) ID[Tag] {
	id, err := Parse[Tag](s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsNil reports whether id holds the nil UUID.
func IsNil[Tag any](id ID[Tag]) bool {
	return id.Value() == uuid.Nil
}
