package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper reads config.yaml (config.prod.yaml when ENV=production) from the
// working directory. A .env file and plain environment variables override
// file values, e.g. DATABASE_DRIVER for database.driver.
func NewViper() *viper.Viper {
	// .env is optional
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	SetDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "Mathplay Backend")

	config.SetDefault("api.port", 8080)
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", "*")

	config.SetDefault("database.driver", "postgres")
	config.SetDefault("database.host", "localhost")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.username", "postgres")
	config.SetDefault("database.password", "")
	config.SetDefault("database.dbname", "mathplay")
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("game.correct_delay", "2s")
	config.SetDefault("game.incorrect_delay", "1s")
	config.SetDefault("game.session_ttl", "30m")
	config.SetDefault("game.janitor_interval", "1m")

	config.SetDefault("persist.retries", 2)

	config.SetDefault("llm.provider", "openai")
	config.SetDefault("llm.disable", false)
}
