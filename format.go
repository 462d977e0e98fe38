package typedid

import "fmt"

// String renders exactly as the raw identifier renders; the tag never
// appears in display output.
func (id ID[I, Tag]) String() string {
	return fmt.Sprint(id.value)
}

// GoString renders the wrapper-named debug form, e.g. TypedID(42), so %#v
// output cannot be mistaken for the raw identifier's display form. The form
// is the stable debug contract of this package; it is not valid Go syntax,
// deviating from the usual GoStringer convention.
func (id ID[I, Tag]) GoString() string {
	return fmt.Sprintf("TypedID(%v)", id.value)
}
