// Package util provides small structural helpers shared by the commons
// packages.
//
// It includes a two-field Pair with structural equality, Zip for pairing up
// equally long slices, and the Debuggable capability for types that render
// an unambiguous debugging representation.
package util
