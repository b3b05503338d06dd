// Package params is the runtime half of paramkit. It models parameter
// schemas, defines the errors generated code reports, and dispatches a
// parameter struct's fields to a function or method as positional arguments.
//
// The struct pairs themselves are produced by cmd/paramgen. For a schema
// S(int x, float64 y) the generator emits
//
//	type S struct {
//		X int
//		Y float64
//	}
//
//	type SWithDefaults struct {
//		X opt.Value[int]
//		Y opt.Value[float64]
//	}
//
// together with SWithDefaults.Combine, which fills absent fields from an S,
// SWithDefaults.CombineDefaults, which fills them from another SWithDefaults
// and reports an *IncompleteError when a field is absent from both, and CallS,
// which passes the fields of an S to a typed function in declaration order.
//
// Call and CallMethod cover targets only known at run time. They check the
// target's signature against the schema before invoking it and report a
// *DispatchError rather than letting reflect panic.
package params
