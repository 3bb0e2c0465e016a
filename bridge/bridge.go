// Package bridge hands the greeting to a managed runtime.
//
// It knows nothing about cgo. The caller supplies the conversion from a Go
// string to the runtime's string type, which keeps the package testable on
// the host. See the app package for the JNI side.
package bridge

import "github.com/goldberg/googletest/greeting"

// StringFromJNI returns the welcome greeting converted by newString.
//
// env and obj mirror the arguments of a JNI native method. obj is not used.
// env is passed through to newString untouched. A failed conversion (for
// example NewStringUTF returning NULL under memory pressure) is returned
// as-is; the JVM throws the pending exception once the call returns.
func StringFromJNI[E, O, S any](env E, obj O, newString func(E, string) S) S {
	return newString(env, greeting.CreateWelcomingString())
}
