package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Connection pool settings
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// Connection retry settings: 5 attempts with exponential backoff
const maxConnectAttempts = 5

var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}

// Connect opens the database described by cfg and verifies it with a ping.
// It supports PostgreSQL and SQLite drivers and retries transient connection
// failures with exponential backoff before giving up.
func Connect(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_config": cfg.String(),
	}).Info("Initializing database connection")

	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxConnectAttempts,
		}).Debug("Attempting database connection")

		db, err := open(driver, cfg)
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				err = pingErr
			} else {
				configureConnectionPool(sqlDB)
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}
		lastErr = err

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxConnectAttempts {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectAttempts, lastErr)
}

// open selects the gorm driver based on configuration
func open(driver string, cfg DatabaseConfig) (*gorm.DB, error) {
	switch driver {
	case "postgres", "postgresql":
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// configureConnectionPool sets up connection pool parameters for optimal performance
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpenConns,
		"max_idle_conns":    maxIdleConns,
		"conn_max_lifetime": connMaxLifetime.String(),
	}).Debug("Connection pool configured")
}
