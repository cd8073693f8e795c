// Package geoassert holds the panic-on-precondition-violation helper shared
// by gridfield and influence. Preconditions here are programmer
// bugs, not recoverable errors.
package geoassert

func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
