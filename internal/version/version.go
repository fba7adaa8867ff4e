// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Observatory console TUI, sidereal clock, tagged-string registry
// 0.1.0 - Initial release: smart angle values, frame derivations, convert mode
