package pages

import (
	"simulation-server/feature/simulation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler   *Handler
	staticDir string
}

// NewFeature creates the pages feature.
func NewFeature(templatesDir, staticDir string, params *simulation.Store, logger *zap.Logger) *Feature {
	return &Feature{
		handler:   NewHandler(NewRenderer(templatesDir), params, logger),
		staticDir: staticDir,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pages"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.handler.params != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	if f.staticDir != "" {
		app.Static("/static", f.staticDir)
	}
	return nil
}
