//go:build charlsdebug

package charls

import "fmt"

// assert panics with msg if cond is false. Only compiled in when the
// charlsdebug build tag is set, so debug assertions never change observable
// behavior in a release build. Release builds get the no-op assert in
// assert_release.go instead.
func assert(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("charls: assertion failed: "+msg, args...))
	}
}
