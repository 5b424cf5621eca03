package util

import "fmt"

// Debuggable is implemented by types that render themselves for debugging.
// Unlike fmt.Stringer, Debug has no other purpose than that.
type Debuggable interface {
	Debug() string
}

// Debug renders v with its Debug method when it has one, and with %v otherwise.
func Debug(v any) string {
	if d, ok := v.(Debuggable); ok {
		return d.Debug()
	}
	return fmt.Sprintf("%v", v)
}
