package main

import (
	"fmt"

	"github.com/evandrarf/mathplay-be/database"
	"github.com/evandrarf/mathplay-be/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the tables and seed the topic catalog, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig := config.NewViper()
		log := config.NewLogger(viperConfig)

		db, err := database.Open(viperConfig)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		return migrate(db, log)
	},
}

func migrate(db *gorm.DB, log *logrus.Logger) error {
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations completed successfully")

	if err := database.SeedTopics(db, log); err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}
	log.Info("Seeders completed successfully")
	return nil
}
