package database

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New opens the database named by database.driver. It panics when the
// connection can't be established.
func New(config *viper.Viper) *gorm.DB {
	db, err := Open(config)
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}
	return db
}

func Open(config *viper.Viper) (*gorm.DB, error) {
	driver := strings.ToLower(config.GetString("database.driver"))
	switch driver {
	case "", DriverPostgres:
		return gorm.Open(postgres.Open(postgresDSN(config)), &gorm.Config{})
	case DriverSQLite:
		dsn := config.GetString("database.dsn")
		if dsn == "" {
			dsn = "mathplay.db"
		}
		return OpenSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// OpenSQLite opens a sqlite database. The pool is pinned to one connection
// so ":memory:" databases stay a single database.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func postgresDSN(config *viper.Viper) string {
	if dsn := config.GetString("database.dsn"); dsn != "" {
		return dsn
	}

	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.GetString("database.host"),
		config.GetString("database.username"),
		config.GetString("database.password"),
		config.GetString("database.dbname"),
		config.GetInt("database.port"),
		sslmode,
		timezone,
	)
}
