package params

// Arguments is implemented by every generated Regular type.
type Arguments interface {
	Schema() *Schema
	// Args returns the field values in declaration order.
	Args() []any
}

// Overlay is implemented by every generated WithDefaults type W whose Regular
// type is R.
type Overlay[R any] interface {
	Schema() *Schema
	Combine(fallback R) R
}

// Stack applies layers on top of base in order, so a field present in a later
// layer wins over earlier layers and base.
func Stack[R any, W Overlay[R]](base R, layers ...W) R {
	out := base
	for _, l := range layers {
		out = l.Combine(out)
	}
	return out
}

// Must returns r, panicking if err is non-nil. It wraps CombineDefaults at
// call sites that treat a missing field as a programming error.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}
