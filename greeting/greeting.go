// Package greeting provides the string shown by the app's main activity.
package greeting

// Welcome is the greeting returned to the Java side.
const Welcome = "Hello from C++"

// CreateWelcomingString returns the welcome greeting.
// It has no side effects and is safe to call from any thread.
func CreateWelcomingString() string {
	return Welcome
}
