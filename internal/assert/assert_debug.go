// +build debug

package assert

import "fmt"

// DEBUG reports whether assertions are compiled in for this build.
const DEBUG = true

// Assert panics with the formatted message when test is false.
func Assert(test bool, format string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(format, a...))
	}
}
