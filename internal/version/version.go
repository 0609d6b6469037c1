// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - JSON snapshot export, clock watch mode
// 0.2.0 - State vector view, epoch converter tool
// 0.1.0 - Initial release: TLE parsing, orbital elements, TUI
