package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simulation-server/core/config"
	"simulation-server/core/database"
	"simulation-server/core/logger"
	"simulation-server/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Simulation Server API
// @version 1.0
// @description Simulation pages, Unity WebGL build and screenshot capture.
// @host localhost:5001
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the simulation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Session history database (optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to session database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Object storage mirror (optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
			cancel()
			if err != nil {
				logg.Fatal("Failed to prepare storage bucket", zap.Error(err))
			}
			store = client
		}

		// 5. Assemble the app
		srv, err := newServer(cfg, logg, db, store)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := srv.app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := srv.Close(); err != nil {
			logg.Warn("Shutdown error", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
