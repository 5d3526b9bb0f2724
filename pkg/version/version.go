// Package version holds the edugram version string, overridable at
// build time with -ldflags "-X .../pkg/version.Version=v1.2.3".
package version

// Version is the current edugram version.
var Version = "v0.3.0"
