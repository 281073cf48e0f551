package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evandrarf/mathplay-be/database"
	"github.com/evandrarf/mathplay-be/internal/config"
	"github.com/evandrarf/mathplay-be/internal/pkg/validate"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig := config.NewViper()

		log := config.NewLogger(viperConfig)
		db := database.New(viperConfig)
		validator := validate.NewValidator()
		api := config.NewAPI(viperConfig, log)

		if err := migrate(db, log); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		services := config.Bootstrap(&config.BootstrapConfig{
			Config:    viperConfig,
			Log:       log,
			Api:       api,
			Validator: validator,
			DB:        db,
		})

		go services.Game.RunJanitor(ctx, viperConfig.GetDuration("game.janitor_interval"))

		listenAddr := fmt.Sprintf(":%d", viperConfig.GetInt("api.port"))

		go func() {
			if err := api.Listen(listenAddr); err != nil {
				log.Fatalf("Failed to start API server: %v", err)
			}
		}()

		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := api.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("API shutdown error: %v", err)
		}
		// wait for queued score saves
		if err := services.Game.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Game shutdown error: %v", err)
		}

		return nil
	},
}
