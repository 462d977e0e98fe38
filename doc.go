// Package typedid provides a zero-overhead, compile-time tagged wrapper for
// identifier values, so ids that belong to different entities cannot be mixed
// up even when they share the same underlying representation.
//
// ID[I, Tag] stores exactly one value of I; Tag is a phantom type parameter
// that never appears in a field, so the wrapper has the memory layout of I
// alone. Two instantiations with different tags are distinct types and the
// compiler rejects any attempt to compare, assign, or pass one where the
// other is expected.
//
// Declaring id types is a pair of type aliases:
//
//	type Customer struct{}
//	type Order struct{}
//
//	type CustomerID = typedid.ID[uint32, Customer]
//	type OrderID = typedid.ID[uint32, Order]
//
// Construction, transparent reads, and the single sanctioned cross-tag path:
//
//	id := typedid.New[Customer, uint32](42) // wrap a raw value
//	raw := id.Value()                       // read it back
//	oid := typedid.Retag[Order](id)         // explicit, destination named
//
// Same-tag ids compare with ==, order via Compare/Less, and work as map keys
// with the same behavior as the raw I. JSON encoding is byte-identical to
// encoding the raw I, including when ids key a map, so data written before
// the wrapper existed stays compatible.
//
// The tag costs nothing at runtime and is never inspected, stored, or
// serialized; everything this package offers is enforcement by the type
// checker.
package typedid
