// Package db opens the PostgreSQL connection pool shared by all repositories.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "coffee_backend/internal/feature/auth/adapters"
	"coffee_backend/internal/feature/auth/domain/entity"
	menuentity "coffee_backend/internal/feature/menu/domain/entity"
	orderadapters "coffee_backend/internal/feature/order/adapters"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Config holds PostgreSQL connection settings.
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string // Cloud SQL instance; takes precedence over Host/Port
}

// Opener opens a gorm connection for a DSN. Swappable in tests.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv reads DB_* variables.
func LoadConfigFromEnv() Config {
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		SSLMode:      sslMode,
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// Validate reports which required settings are missing.
func (c Config) Validate() error {
	if c.User == "" || c.Name == "" {
		return fmt.Errorf("DB_USER and DB_NAME must be set")
	}
	if c.InstanceName == "" && (c.Host == "" || c.Port == "") {
		return fmt.Errorf("DB_HOST and DB_PORT must be set when INSTANCE_CONNECTION_NAME is empty")
	}
	return nil
}

// BuildDSN renders a libpq key/value DSN for the pgx driver.
func BuildDSN(c Config) string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	if c.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.InstanceName, c.User, c.Password, c.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// PostgresOpener is the production Opener.
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry keeps calling open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects to PostgreSQL and tunes the pool.
func Open(cfg Config) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, PostgresOpener)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&authadapters.PasswordResetModel{},
		&menuentity.MenuItem{},
		&orderadapters.OrderModel{},
		&orderadapters.OrderItemModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
