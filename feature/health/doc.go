// Package health exposes liveness and readiness probes.
//
// Readiness covers the optional dependencies: the capture session table
// (its columns are compared against what the capture store writes) and the
// object storage bucket. A dependency that is not configured reports
// "disabled" and does not fail readiness.
package health
