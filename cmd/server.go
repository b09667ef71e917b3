package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"simulation-server/core/config"
	"simulation-server/core/loader"
	"simulation-server/core/logger"
	"simulation-server/core/middleware/httpsredirect"
	"simulation-server/core/middleware/rayid"
	"simulation-server/core/storage"
	"simulation-server/feature/capture"
	"simulation-server/feature/game"
	"simulation-server/feature/health"
	"simulation-server/feature/pages"
	"simulation-server/feature/simulation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "simulation-server/docs/swagger"
)

// appServer is the assembled HTTP application and the services that need shutdown.
type appServer struct {
	app     *fiber.App
	capture *capture.Service
	game    *game.Service
}

// newServer wires middleware and features. db and store may be nil.
func newServer(cfg *config.Config, logg *zap.Logger, db *gorm.DB, store storage.Client) (*appServer, error) {
	if cfg.Server.ApiKey != "" && cfg.Capture.PersistToDisk && cfg.Server.StaticDir != "" {
		inside, err := isWithin(cfg.Server.StaticDir, cfg.Capture.Dir)
		if err != nil {
			return nil, err
		}
		if inside {
			return nil, fmt.Errorf("capture dir %q is served under /static and would bypass the API key", cfg.Capture.Dir)
		}
	}

	captureSvc, err := capture.NewService(cfg.Capture, capture.Dependencies{
		Logger:  logg.Named("capture"),
		Storage: store,
		Bucket:  cfg.Storage.Bucket,
		DB:      db,
	})
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	gameSvc, err := game.NewService(cfg.Game, logg.Named("game"))
	if err != nil {
		captureSvc.Close()
		return nil, fmt.Errorf("game: %w", err)
	}

	params := simulation.NewStore()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	app.Use(fiberrecover.New())

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.Origins(),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-API-Key",
	}))

	if cfg.Server.ForceHTTPS {
		app.Use(httpsredirect.New())
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager(logg)
	mgr.Register(health.NewFeature(health.NewService(db, store, cfg.Storage.Bucket, logg.Named("health"))))
	mgr.Register(pages.NewFeature(cfg.Server.TemplatesDir, cfg.Server.StaticDir, params, logg.Named("pages")))
	mgr.Register(simulation.NewFeature(params, logg.Named("simulation")))
	mgr.Register(game.NewFeature(gameSvc))
	mgr.Register(capture.NewFeature(captureSvc, cfg.Server.ApiKey))

	if err := mgr.LoadAll(app); err != nil {
		captureSvc.Close()
		gameSvc.Close()
		return nil, err
	}

	return &appServer{app: app, capture: captureSvc, game: gameSvc}, nil
}

// Close shuts the HTTP server down and stops background work.
func (s *appServer) Close() error {
	err := s.app.Shutdown()
	s.capture.Close()
	s.game.Close()
	return err
}

// isWithin reports whether target is base or a path below it.
func isWithin(base, target string) (bool, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return false, err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}
