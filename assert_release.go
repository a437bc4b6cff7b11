//go:build !charlsdebug

package charls

// assert is a no-op in release builds; see assert_debug.go.
func assert(cond bool, msg string, args ...any) {
	_ = cond
	_ = msg
	_ = args
}
