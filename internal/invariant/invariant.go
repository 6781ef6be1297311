// Package invariant enforces the handful of conditions whose violation means
// a programming error rather than bad input: placing a piece on an occupied
// square, removing a piece from an empty one, an unmake call with no move on
// the undo stack, or constructing a Square from an out-of-range file/rank
// pair. These are always checked, in release builds too - unlike the
// diagnostic checks in assert, which compile away. UnmakeMove takes no move
// argument, so there is no check that the move being unmade is the last move
// played.
package invariant

import "fmt"

// Require panics with a formatted message if cond is false. Callers use it
// only for the fatal, always-on invariants; everything else goes through
// assert.Assert instead.
func Require(cond bool, format string, a ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, a...))
	}
}
