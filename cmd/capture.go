package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simulation-server/core/config"
	"simulation-server/core/logger"
	"simulation-server/feature/capture"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	captureDuration time.Duration
	captureInterval time.Duration
	captureOut      string
	captureBackend  string
)

// captureCmd runs one capture session without the HTTP server.
var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record screenshots for a fixed duration",
	Long: `Starts a capture session, waits for --duration (or Ctrl+C), stops it and writes
every screenshot of the session into a zip archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer logg.Sync()

		capCfg := cfg.Capture
		capCfg.PersistToDisk = false
		capCfg.MirrorToStorage = false
		if captureBackend != "" {
			capCfg.Backend = captureBackend
		}
		if captureInterval > 0 {
			capCfg.IntervalSeconds = max(1, int(captureInterval.Round(time.Second)/time.Second))
		}

		svc, err := capture.NewService(capCfg, capture.Dependencies{Logger: logg})
		if err != nil {
			return err
		}
		defer svc.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		color.Cyan.Printf("Capturing every %ds for %s (Ctrl+C to stop early)\n", capCfg.IntervalSeconds, captureDuration)
		svc.Start(ctx)

		timer := time.NewTimer(captureDuration)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		timer.Stop()

		res := svc.Stop(context.Background())
		archive, err := svc.Archive()
		if errors.Is(err, capture.ErrNoScreenshots) {
			color.Red.Println("No screenshots were captured")
			return err
		}
		if err != nil {
			return err
		}

		out := captureOut
		if out == "" {
			out = archive.Filename
		}
		if err := os.WriteFile(out, archive.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		printCaptureSummary(res.ScreenshotCount, out, len(archive.Data))
		return nil
	},
}

func printCaptureSummary(count int, out string, size int) {
	color.Bold.Println("Capture summary")
	fmt.Printf("  %s %d\n", color.Gray.Sprint("screenshots:"), count)
	fmt.Printf("  %s %s\n", color.Gray.Sprint("archive:    "), color.Green.Sprint(out))
	fmt.Printf("  %s %d bytes\n", color.Gray.Sprint("size:       "), size)
}

func init() {
	captureCmd.Flags().DurationVar(&captureDuration, "duration", time.Minute, "how long to capture")
	captureCmd.Flags().DurationVar(&captureInterval, "interval", 0, "capture interval (default from CAPTURE_INTERVAL_SECONDS)")
	captureCmd.Flags().StringVar(&captureOut, "out", "", "archive path (default simulation_screenshots_<timestamp>.zip)")
	captureCmd.Flags().StringVar(&captureBackend, "backend", "", "grabber backend: screen or synthetic")
	RootCmd.AddCommand(captureCmd)
}
