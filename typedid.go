package typedid

// ID wraps a raw identifier of type I and scopes it to the owner Tag. Tag is
// never stored; it appears only in the type parameter list, so the wrapper
// has exactly the layout of I while ID[uint32, Customer] and
// ID[uint32, Order] remain distinct, incompatible types.
//
// I must be comparable so the wrapper itself supports == and map-key use
// with the same semantics as the raw value.
type ID[I comparable, Tag any] struct {
	value I
}

// New wraps a raw identifier. No validation is performed; any value of I is
// accepted. Tag leads the type parameter list so call sites name only the
// owner and let I be inferred from the argument:
//
//	id := typedid.New[Customer]("cus_81h2")
func New[Tag any, I comparable](raw I) ID[I, Tag] {
	return ID[I, Tag]{value: raw}
}

// Value returns the raw identifier.
func (id ID[I, Tag]) Value() I {
	return id.value
}

// IsZero reports whether the wrapped identifier is I's zero value.
func (id ID[I, Tag]) IsZero() bool {
	var zero I
	return id.value == zero
}

// Retag moves a raw identifier to a different owner. The destination tag
// must be named at the call site; no implicit conversion between
// instantiations exists anywhere in this package, so this is the only way an
// identifier crosses tags:
//
//	oid := typedid.Retag[Order](customerID)
//
// The remaining type parameters are inferred from the argument.
func Retag[Tag2, Tag any, I comparable](id ID[I, Tag]) ID[I, Tag2] {
	return ID[I, Tag2]{value: id.value}
}
