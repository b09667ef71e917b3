package health

import (
	"simulation-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles health probes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", h.HandleLive)
	app.Get("/healthz/ready", h.HandleReady)
}

// HandleLive reports that the process is serving.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) HandleLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// HandleReady checks the database and object storage.
// @Summary Readiness
// @Tags health
// @Produce json
// @Success 200 {object} health.Report
// @Failure 503 {object} health.Report
// @Router /healthz/ready [get]
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	report := h.service.Check(c.Context())
	if !report.Ready() {
		logger.WithRayID(h.service.logger, c).Warn("Readiness check failed",
			zap.String("database", report.Database.Status),
			zap.String("storage", report.Storage.Status))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
