// Package buildinfo carries the tool's identity for the version command.
package buildinfo

// Name is the binary name.
const Name = "luckyprint"

// Version is bumped on release.
const Version = "0.3.0"

// String returns the "name version" form the version command prints.
func String() string {
	return Name + " " + Version
}
