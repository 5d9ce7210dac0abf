// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Scripted travel camera, journey event log, collision-aware zoom
// 0.2.0 - Orbital camera controller, surface-to-surface travel geometry
// 0.1.0 - Initial release: Keplerian position engine, ephemeris table, TUI orrery
