package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/app"
	"portfolio/internal/lib/logger/sl"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		log := setupLogger(cfg.Env)
		log.Info("starting portfolio", slog.String("env", cfg.Env))

		startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		application, err := app.New(startCtx, log, cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		application.HTTPServer.BuildRouters()

		go func() {
			application.HTTPServer.MustRun()
		}()

		// Graceful shutdown
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

		<-stop

		if err := application.HTTPServer.Stop(); err != nil {
			log.Error("failed to stop http server", sl.Err(err))
		}

		log.Info("Gracefully stopped")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
