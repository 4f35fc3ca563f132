package db

import (
	"fmt"                           // Error wrapping
	"music_library/internal/config" // Database settings
	"strings"                       // DSN parameter handling
	"time"                          // Pool lifetimes

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM query logger
)

// Open connects to the database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
	default:
		dialector = mysql.Open(cfg.DSN())
	}
	db, err := gorm.Open(dialector, GormConfig(cfg.IsDevelopment()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access DB pool: %w", err)
	}
	if cfg.DBDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1) // SQLite allows a single writer
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// GormConfig returns the settings shared by every connection. TranslateError
// turns unique violations into gorm.ErrDuplicatedKey for all dialects.
func GormConfig(verbose bool) *gorm.Config {
	level := logger.Silent
	if verbose {
		level = logger.Warn
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// SQLiteDSN enables foreign key enforcement, which cascading deletes depend on
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// Close releases the connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
