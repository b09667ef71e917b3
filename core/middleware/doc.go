// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: Tags every request with a RayID (context locals + X-Ray-ID header).
//   - auth: API key validation for the capture endpoints.
//   - httpsredirect: Upgrades plain HTTP from non-local hosts to https.
package middleware
