package game

import (
	"os"
	"path/filepath"

	"simulation-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the Unity WebGL build.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the game routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/game", h.HandleIndex)
	app.Get("/game/manifest", h.HandleManifest)
	app.Get("/game/*", h.HandleAsset)
}

// HandleIndex serves the build's index.html.
// @Summary Game Page
// @Tags game
// @Produce html
// @Success 200 {string} string "index.html"
// @Failure 404 {object} map[string]string
// @Router /game [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	file := filepath.Join(h.service.index.Root(), "index.html")
	if !isFile(file) {
		l.Error("Game index missing", zap.String("file", file))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game build not found"})
	}
	return sendFile(c, file)
}

// HandleManifest lists the indexed build assets.
// @Summary Game Manifest
// @Tags game
// @Produce json
// @Success 200 {object} game.Manifest
// @Router /game/manifest [get]
func (h *Handler) HandleManifest(c *fiber.Ctx) error {
	return c.JSON(h.service.index.Manifest())
}

// HandleAsset serves one allowlisted file of the build.
// @Summary Game Asset
// @Tags game
// @Param path path string true "Asset path"
// @Success 200 {file} file
// @Failure 404 {string} string ""
// @Router /game/{path} [get]
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	rel := c.Params("*")

	file, err := h.service.index.Resolve(rel)
	if err != nil || !isFile(file) {
		l.Debug("Game asset not served", zap.String("path", rel))
		return c.SendStatus(fiber.StatusNotFound)
	}

	l.Debug("Serving game asset", zap.String("path", rel))
	if err := sendFile(c, file); err != nil {
		return err
	}
	if enc, ok := EncodingFor(file); ok {
		c.Set(fiber.HeaderContentEncoding, enc.ContentEncoding)
		c.Set(fiber.HeaderContentType, enc.ContentType)
	}
	return nil
}

func sendFile(c *fiber.Ctx, file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	return c.SendFile(abs)
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
