// Package version holds the embedgen version string.
package version

// Version is the current embedgen release version.
var Version = "0.2.0"
