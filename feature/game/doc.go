// Package game streams the exported Unity WebGL build.
//
// Only files matching the configured doublestar allowlist are served, and request
// paths are cleaned so they cannot leave the build directory. Pre-compressed Unity
// assets (.br, .gz, .unityweb) are sent with Content-Encoding and the content type
// of the inner extension so browsers decode them natively.
//
// The build directory is indexed at startup; when watching is enabled a poller
// re-indexes it whenever a new build is exported. The index is exposed at
// GET /game/manifest.
package game
