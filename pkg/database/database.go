// Package database owns the physical SQLite connection used by the rest of
// the application. It exposes the connection only through *gorm.DB, never as
// a raw handle, and keeps a process-wide default connection that is
// initialized once and reused for the process lifetime.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Fanaperana/ekan/pkg/models"
)

// Config holds configuration for the database connection.
type Config struct {
	// Path is the SQLite database file path. ":memory:" opens an in-memory
	// database, useful for tests.
	Path string

	// BusyTimeout bounds how long a statement waits on a locked database
	// before failing (default: 5 seconds).
	BusyTimeout time.Duration
}

// Connect opens the SQLite database at cfg.Path, enables foreign key
// enforcement, and migrates the schema. Cascade deletes depend on the
// foreign_keys pragma being on for every connection, so it is part of the
// DSN rather than a separate statement.
func Connect(cfg Config, log hclog.Logger) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	busyTimeout := cfg.BusyTimeout
	if busyTimeout == 0 {
		busyTimeout = 5 * time.Second
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_fk=1&_busy_timeout=%d",
		cfg.Path, busyTimeout.Milliseconds())

	gormConfig := &gorm.Config{}
	if log != nil {
		gormConfig.Logger = NewGormLogger(log.Named("gorm"))
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports a single writer; more connections just contend on the
	// file lock.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.ModelsToAutoMigrate()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if log != nil {
		log.Info("connected to database", "path", cfg.Path)
	}

	return db, nil
}

var (
	defaultDB   *gorm.DB
	defaultErr  error
	defaultOnce sync.Once
)

// Default returns the process-wide shared connection, opening it on first
// use. Later calls return the same connection and ignore their arguments.
// An initialization failure is sticky: every caller sees the original error
// and no reconnect is attempted.
func Default(cfg Config, log hclog.Logger) (*gorm.DB, error) {
	defaultOnce.Do(func() {
		defaultDB, defaultErr = Connect(cfg, log)
	})
	if defaultErr != nil {
		return nil, fmt.Errorf("database initialization failed: %w", defaultErr)
	}
	return defaultDB, nil
}
