package capture

import (
	"errors"

	"simulation-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for screenshot capture.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the capture routes behind guard.
func (h *Handler) RegisterRoutes(app fiber.Router, guard fiber.Handler) {
	app.Post("/start-capture", guard, h.HandleStart)
	app.Post("/stop-capture", guard, h.HandleStop)
	app.Get("/download-screenshots", guard, h.HandleDownload)

	group := app.Group("/capture", guard)
	group.Get("/status", h.HandleStatus)
	group.Get("/sessions", h.HandleSessions)
}

// HandleStart starts periodic screenshot capture.
// @Summary Start Capture
// @Description Takes a screenshot immediately and then one per interval until stopped.
// @Tags capture
// @Produce json
// @Success 200 {object} capture.StartResult
// @Router /start-capture [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	res := h.service.Start(c.Context())
	l.Info("Capture start requested", zap.String("status", res.Status))
	return c.JSON(res)
}

// HandleStop stops periodic screenshot capture.
// @Summary Stop Capture
// @Description Stops the recurring capture and takes a final screenshot.
// @Tags capture
// @Produce json
// @Success 200 {object} capture.StopResult
// @Router /stop-capture [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	res := h.service.Stop(c.Context())
	l.Info("Capture stop requested", zap.Int("screenshot_count", res.ScreenshotCount))
	return c.JSON(res)
}

// HandleDownload streams the session's screenshots as a zip.
// @Summary Download Screenshots
// @Description Returns every screenshot taken since the last start as a zip archive.
// @Tags capture
// @Produce application/zip
// @Success 200 {file} file "Screenshot archive"
// @Failure 400 {object} map[string]string "No screenshots available"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /download-screenshots [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	archive, err := h.service.Archive()
	if errors.Is(err, ErrNoScreenshots) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No screenshots available"})
	}
	if err != nil {
		l.Error("Failed to build screenshot archive", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Serving screenshot archive", zap.String("file", archive.Filename), zap.Int("count", archive.Count))
	c.Attachment(archive.Filename)
	return c.Send(archive.Data)
}

// HandleStatus reports the capture session state.
// @Summary Capture Status
// @Tags capture
// @Produce json
// @Success 200 {object} capture.StatusReport
// @Router /capture/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleSessions lists recent capture sessions.
// @Summary Capture Sessions
// @Tags capture
// @Produce json
// @Param limit query int false "Maximum number of sessions" default(20)
// @Success 200 {array} capture.Session
// @Failure 503 {object} map[string]string "History disabled"
// @Router /capture/sessions [get]
func (h *Handler) HandleSessions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sessions, err := h.service.Sessions(c.Context(), c.QueryInt("limit", 20))
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to list capture sessions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sessions)
}
