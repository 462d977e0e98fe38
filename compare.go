package typedid

import "cmp"

// Compare orders two same-tag identifiers by their raw values, following
// cmp.Compare. Cross-tag comparisons do not compile: both operands share a
// single Tag parameter.
func Compare[I cmp.Ordered, Tag any](a, b ID[I, Tag]) int {
	return cmp.Compare(a.value, b.value)
}

// Less reports whether a orders before b, following cmp.Less.
func Less[I cmp.Ordered, Tag any](a, b ID[I, Tag]) bool {
	return cmp.Less(a.value, b.value)
}
