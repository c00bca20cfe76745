package database

import (
	"fmt"
	"time"

	"github.com/catspotter/cat-tracker/infrastructure/config"
	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var dbClient *gorm.DB

const (
	connectAttempts = 10
	connectDelay    = 2 * time.Second
)

// InitDb opens the Postgres connection pool with retry; container startup
// ordering means the database is often a beat behind the API.
func InitDb(cfg *config.Config, zapLogger *zap.Logger) error {
	dsn := cfg.GetPostgresConnectionString()

	var lastErr error
	for i := 1; i <= connectAttempts; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.NewGormLogger(zapLogger),
		})
		if err == nil {
			if err := configurePool(db, cfg); err != nil {
				return err
			}
			dbClient = db
			return nil
		}

		lastErr = err
		zapLogger.Warn("postgres not ready, retrying",
			zap.Int("attempt", i),
			zap.Error(err),
		)
		time.Sleep(connectDelay)
	}

	return fmt.Errorf("db connect failed after %d attempts: %w", connectAttempts, lastErr)
}

func configurePool(db *gorm.DB, cfg *config.Config) error {
	sqlDb, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDb.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDb.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDb.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	return nil
}

func GetDb() *gorm.DB {
	return dbClient
}

// SetDb swaps the shared handle; tests use it to point the repositories
// at a containerized database.
func SetDb(db *gorm.DB) {
	dbClient = db
}

func CloseDb() error {
	if dbClient == nil {
		return nil
	}
	sqlDb, err := dbClient.DB()
	if err != nil {
		return err
	}
	return sqlDb.Close()
}

// Ping verifies connectivity on the pooled connection; the /db-test probe
// surfaces its error directly.
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database is not initialized")
	}
	sqlDb, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDb.Ping()
}
