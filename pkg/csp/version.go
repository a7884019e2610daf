// Package csp provides a finite-domain constraint satisfaction solver over
// binary constraints expressed as explicit allowed-pair relations.
//
// Version: 0.3.0
//
// Variables are integer indices 0..n-1 and values are positive integers.
// A Model is built once by an encoder (see pkg/mapcolor and pkg/board),
// then solved with chronological backtracking, optionally assisted by the
// MRV, degree, and LCV heuristics and AC-3 arc consistency.
package csp

// Version represents the current version of the arcsat solver.
const Version = "0.3.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
	}
}
