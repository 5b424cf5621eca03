// Package optional provides Value, a strict container holding exactly one
// value or nothing.
//
// A present Value never wraps nil: constructors that accept a possibly-nil
// source (From, FromPtr, Cast) map nil to an empty Value, and Of rejects nil
// outright. Pointers, interfaces, channels and funcs count as nil-able; nil
// slices and maps are ordinary empty values in Go and stay present.
//
// # Usage
//
//	name := optional.FromPtr(req.Name).
//	    Filter(func(s string) bool { return s != "" }).
//	    Or(func() optional.Value[string] { return lookupDefault(ctx) }).
//	    GetOrDefault("anonymous")
//
//	n := optional.Map(optional.Of("42"), func(s string) int { return len(s) })
//
// Map and FlatMap are package functions because Go methods cannot introduce
// type parameters.
package optional
