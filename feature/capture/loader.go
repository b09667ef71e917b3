package capture

import (
	"simulation-server/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	apiKey  string
}

// NewFeature creates the capture feature; apiKey guards its routes when set.
func NewFeature(service *Service, apiKey string) *Feature {
	return &Feature{service: service, handler: NewHandler(service), apiKey: apiKey}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "capture"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, auth.New(auth.Config{ApiKey: f.apiKey}))
	return nil
}
