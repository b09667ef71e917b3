// Package simulation keeps the parameter document exchanged between the
// simulator form and the Unity WebGL client.
//
// The form posts the whole document to /set-data; the game fetches it back
// from /get-data. Only the latest document is kept.
package simulation
