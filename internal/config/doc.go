// Package config resolves CLI arguments and the optional YAML defaults file
// into an immutable Config.
//
// Every failure in this package is an *Error: a fatal, pre-dispatch
// configuration problem. Resolution runs to completion before any worker is
// started, so a bad template, thread count, or flag combination never results
// in a partial dispatch.
package config
