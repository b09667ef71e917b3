package simulation

import (
	"errors"

	"simulation-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for simulation parameters.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the parameter routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/set-data", h.HandleSet)
	app.Get("/get-data", h.HandleGet)
}

// HandleSet replaces the simulation parameters.
// @Summary Set Simulation Parameters
// @Description Stores the submitted parameter document for the Unity client.
// @Tags simulation
// @Accept json
// @Produce json
// @Param body body object true "Parameter document"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /set-data [post]
func (h *Handler) HandleSet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.store.Set(c.Body()); err != nil {
		if errors.Is(err, ErrInvalidJSON) {
			l.Warn("Rejected simulation parameters", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Received simulation parameters", zap.ByteString("data", c.Body()))
	return c.JSON(fiber.Map{"message": "Data received!", "redirect_url": "/game"})
}

// HandleGet returns the stored parameters.
// @Summary Get Simulation Parameters
// @Tags simulation
// @Produce json
// @Success 200 {object} object
// @Router /get-data [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(h.store.Get())
}
