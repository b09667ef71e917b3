package pages

import (
	"errors"

	"simulation-server/core/logger"
	"simulation-server/feature/simulation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTML pages.
type Handler struct {
	renderer *Renderer
	params   *simulation.Store
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(renderer *Renderer, params *simulation.Store, logger *zap.Logger) *Handler {
	return &Handler{renderer: renderer, params: params, logger: logger}
}

// RegisterRoutes registers the page routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.page("index.html", nil))
	app.Get("/simulator", h.page("simulator.html", nil))
	app.Get("/simulator_form", h.page("simulator-form.html", func() any {
		return fiber.Map{"Params": FormFields(h.params.Params())}
	}))
	app.Get("/test", h.HandleTest)
}

// HandleTest is a plain liveness page.
func (h *Handler) HandleTest(c *fiber.Ctx) error {
	return c.SendString("Test route is working!")
}

func (h *Handler) page(name string, data func() any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.logger, c)

		var d any
		if data != nil {
			d = data()
		}
		out, err := h.renderer.Render(name, d)
		if errors.Is(err, ErrTemplateNotFound) {
			l.Error("Page template missing", zap.String("template", name))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			l.Error("Failed to render page", zap.String("template", name), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		l.Info("Page served", zap.String("path", c.Path()))
		c.Type("html", "utf-8")
		return c.Send(out)
	}
}
