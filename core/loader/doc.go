// Package loader provides the plugin-like feature loading system.
//
// Each feature (capture, simulation, game, pages, health) implements the Feature
// interface and is registered with a Manager in cmd/start.go.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
//   - Register adds a feature to the registry.
//   - LoadAll loads enabled features in registration order and stops at the first error.
package loader
